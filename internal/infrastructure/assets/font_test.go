package assets

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFont(t *testing.T) *Font {
	t.Helper()
	f, err := DefaultFont(16)
	require.NoError(t, err)
	return f
}

func TestFont_Metrics(t *testing.T) {
	f := testFont(t)

	assert.Greater(t, f.LineHeight(), 0)
	assert.Greater(t, f.Advance("hello"), f.Advance("hi"))
	assert.Equal(t, 0, f.Advance(""))

	w, h := f.Measure("hello")
	assert.Equal(t, f.Advance("hello"), w)
	assert.Greater(t, h, 0)
}

func TestFont_Wrap(t *testing.T) {
	f := testFont(t)
	s := "the quick brown fox jumps over the lazy dog"

	lines := f.Wrap(s, 0)
	assert.Equal(t, []string{s}, lines, "zero width disables wrapping")

	width := f.Advance("the quick brown")
	lines = f.Wrap(s, width)
	require.Greater(t, len(lines), 1)
	for _, l := range lines {
		assert.LessOrEqual(t, f.Advance(l), width, l)
	}
	assert.Equal(t, "the quick brown", lines[0])
}

func TestFont_WrapKeepsNewlinesAndLongWords(t *testing.T) {
	f := testFont(t)

	lines := f.Wrap("first\n\nsecond", 1000)
	assert.Equal(t, []string{"first", "", "second"}, lines)

	width := f.Advance("ok")
	lines = f.Wrap("supercalifragilistic ok", width)
	require.Greater(t, len(lines), 2, "the long word is broken")
	assert.Equal(t, "ok", lines[len(lines)-1])
	assert.Equal(t, "supercalifragilistic", strings.Join(lines[:len(lines)-1], ""))
	for _, l := range lines {
		assert.LessOrEqual(t, f.Advance(l), width, l)
	}
}

func TestFont_WrapBreaksTextWithoutSpaces(t *testing.T) {
	f := testFont(t)
	s := strings.Repeat("abcdefgh", 10)
	width := f.Advance("abcdefghabc")

	lines := f.Wrap(s, width)
	require.Greater(t, len(lines), 1)
	assert.Equal(t, s, strings.Join(lines, ""))
	for _, l := range lines {
		assert.LessOrEqual(t, f.Advance(l), width, l)
	}

	lines = f.Wrap("abc", 1)
	assert.Equal(t, []string{"a", "b", "c"}, lines, "a rune wider than the line still gets its own line")
}

func TestFont_MeasureWrapped(t *testing.T) {
	f := testFont(t)

	lines, w, h := f.MeasureWrapped("one two", f.Advance("one"))
	assert.Equal(t, []string{"one", "two"}, lines)
	assert.Equal(t, max(f.Advance("one"), f.Advance("two")), w)
	assert.Equal(t, 2*f.LineHeight(), h)
}

func TestLoadFont_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"fonts/bad.ttf": {Data: []byte("nope")},
	}

	_, err := LoadFont(fsys, "fonts/missing.ttf", 12)
	assert.Error(t, err)

	_, err = LoadFont(fsys, "fonts/bad.ttf", 12)
	assert.Error(t, err)
}
