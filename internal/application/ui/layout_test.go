package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}

	assert.True(t, r.Contains(10, 20))
	assert.True(t, r.Contains(39, 59))
	assert.False(t, r.Contains(40, 30), "right edge is exclusive")
	assert.False(t, r.Contains(15, 60), "bottom edge is exclusive")
	assert.Equal(t, 60, r.Bottom())
}

func TestAlignToScreen(t *testing.T) {
	assert.Equal(t, Rect{X: 270, Y: 190, W: 100, H: 100}, AlignToScreen(AlignCenter, 100, 100, 640, 480))
	assert.Equal(t, Rect{X: 540, Y: 0, W: 100, H: 50}, AlignToScreen(AlignTopRight, 100, 50, 640, 480))
	assert.Equal(t, Rect{X: 270, Y: 430, W: 100, H: 50}, AlignToScreen(AlignBottom, 100, 50, 640, 480))
}

func TestFitToScreen(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		crop bool
		want Rect
	}{
		{"same aspect", 800, 600, false, Rect{X: 0, Y: 0, W: 640, H: 480}},
		{"fit height crops wide art", 1000, 500, true, Rect{X: -160, Y: 0, W: 960, H: 480}},
		{"fit screen shrinks wide art", 1000, 500, false, Rect{X: 0, Y: 80, W: 640, H: 320}},
		{"tall art is pillarboxed", 240, 480, false, Rect{X: 200, Y: 0, W: 240, H: 480}},
		{"small art is upscaled", 320, 240, true, Rect{X: 0, Y: 0, W: 640, H: 480}},
		{"empty art", 0, 0, false, Rect{X: 320, Y: 240}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FitToScreen(tt.w, tt.h, tt.crop, 640, 480))
		})
	}
}
