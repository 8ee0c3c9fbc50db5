package config

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		fps  int
		want int
	}{
		{"1000ms", 60, 60},
		{"500ms", 60, 30},
		{"2s", 60, 120},
		{"1.5s", 30, 45},
		{"1ms", 60, 1},
		{"0ms", 60, 0},
		{"0", 60, 0},
		{"250", 60, 15},
		{"8ms", 60, 1},
		{"50ms", 60, 3},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDuration(tt.in, tt.fps)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDuration_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "5parsecs"} {
		_, err := ParseDuration(in, 60)
		assert.ErrorIs(t, err, ErrInvalidValue, in)
	}
}

func TestHasDurationUnit(t *testing.T) {
	assert.True(t, HasDurationUnit("10ms"))
	assert.True(t, HasDurationUnit("2s"))
	assert.False(t, HasDurationUnit("10"))
	assert.False(t, HasDurationUnit(""))
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("10, 20, 30")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, c)

	c, err = ParseColor("0,0,0,200")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 0, 200}, c)

	c, err = ParseColor("300,-5,0,0")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 0}, c)

	_, err = ParseColor("1,2")
	assert.Error(t, err)
	_, err = ParseColor("a,b,c")
	assert.Error(t, err)
}

func TestPopFirst(t *testing.T) {
	first, rest := PopFirst("bg.png, 1")
	assert.Equal(t, "bg.png", first)
	assert.Equal(t, "1", rest)

	first, rest = PopFirst("only")
	assert.Equal(t, "only", first)
	assert.Equal(t, "", rest)
}

func TestParseBool(t *testing.T) {
	assert.True(t, ParseBool("true"))
	assert.True(t, ParseBool(" Yes "))
	assert.True(t, ParseBool("1"))
	assert.False(t, ParseBool("false"))
	assert.False(t, ParseBool(""))
}
