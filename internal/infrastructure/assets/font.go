package assets

import (
	"bytes"
	"fmt"
	"io/fs"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font measures, wraps and identifies the face used to draw text
type Font struct {
	face *text.GoTextFace
}

// DefaultFont returns the built-in Go Regular face at the given size
func DefaultFont(size float64) (*Font, error) {
	return newFont(goregular.TTF, size)
}

// LoadFont loads a TrueType/OpenType font from fsys
func LoadFont(fsys fs.FS, path string, size float64) (*Font, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", path, err)
	}
	f, err := newFont(data, size)
	if err != nil {
		return nil, fmt.Errorf("failed to load font %s: %w", path, err)
	}
	return f, nil
}

func newFont(data []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}
	return &Font{
		face: &text.GoTextFace{
			Source:    source,
			Size:      size,
			Direction: text.DirectionLeftToRight,
		},
	}, nil
}

// Face returns the face for text.Draw
func (f *Font) Face() text.Face {
	return f.face
}

// LineHeight returns the distance between two baselines in pixels
func (f *Font) LineHeight() int {
	m := f.face.Metrics()
	return int(math.Ceil(m.HAscent + m.HDescent + m.HLineGap))
}

// Advance returns the width of a single line of text
func (f *Font) Advance(s string) int {
	return int(math.Ceil(text.Advance(s, f.face)))
}

// Measure returns the size of s laid out without wrapping
func (f *Font) Measure(s string) (w, h int) {
	mw, mh := text.Measure(s, f.face, float64(f.LineHeight()))
	return int(math.Ceil(mw)), int(math.Ceil(mh))
}

// Wrap breaks s into lines no wider than width. Explicit newlines are kept.
// Lines break between words; a word wider than width, such as text without
// spaces, is broken between runes.
func (f *Font) Wrap(s string, width int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := ""
		for _, w := range words {
			if width > 0 && f.Advance(w) > width {
				if line != "" {
					lines = append(lines, line)
				}
				pieces := f.breakWord(w, width)
				lines = append(lines, pieces[:len(pieces)-1]...)
				line = pieces[len(pieces)-1]
				continue
			}
			if line == "" {
				line = w
				continue
			}
			candidate := line + " " + w
			if width > 0 && f.Advance(candidate) > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}

// breakWord splits w into pieces no wider than width. A single rune wider
// than width still gets a piece of its own.
func (f *Font) breakWord(w string, width int) []string {
	var pieces []string
	cur := ""
	for _, r := range w {
		next := cur + string(r)
		if cur != "" && f.Advance(next) > width {
			pieces = append(pieces, cur)
			next = string(r)
		}
		cur = next
	}
	return append(pieces, cur)
}

// MeasureWrapped returns the lines of s wrapped to width and their bounding size
func (f *Font) MeasureWrapped(s string, width int) (lines []string, w, h int) {
	lines = f.Wrap(s, width)
	for _, l := range lines {
		w = max(w, f.Advance(l))
	}
	return lines, w, len(lines) * f.LineHeight()
}
