package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/cutscene/internal/infrastructure/assets"
)

// Label is a single line of text centered on its x position
type Label struct {
	font  *assets.Font
	text  string
	x, y  int
	w, h  int
	color color.Color
}

// NewLabel creates a white label. An empty label still takes one line.
func NewLabel(font *assets.Font, s string) *Label {
	l := &Label{font: font, text: s, color: color.White}
	l.w, l.h = font.Measure(s)
	if l.h < font.LineHeight() {
		l.h = font.LineHeight()
	}
	return l
}

// Text returns the label text
func (l *Label) Text() string {
	return l.text
}

// SetPos sets the horizontal center and the top of the label
func (l *Label) SetPos(x, y int) {
	l.x, l.y = x, y
}

// Bounds returns the screen rectangle covered by the label
func (l *Label) Bounds() Rect {
	return Rect{X: l.x - l.w/2, Y: l.y, W: l.w, H: l.h}
}

// Draw renders the label
func (l *Label) Draw(screen *ebiten.Image) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(l.x), float64(l.y))
	op.PrimaryAlign = text.AlignCenter
	op.LineSpacing = float64(l.font.LineHeight())
	op.ColorScale.ScaleWithColor(l.color)
	text.Draw(screen, l.text, l.font.Face(), op)
}
