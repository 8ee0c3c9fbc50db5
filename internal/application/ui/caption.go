package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/cutscene/internal/infrastructure/assets"
)

var shadowColor = color.RGBA{0, 0, 0, 255}

// CaptionBox is a filled box anchored to the bottom of the screen holding
// wrapped, centered, shadowed caption text.
type CaptionBox struct {
	font    *assets.Font
	bg      color.RGBA
	text    string
	lines   []string
	padding int
	rect    Rect

	canvas *ebiten.Image
	dirty  bool
}

// NewCaptionBox creates an empty caption box
func NewCaptionBox(font *assets.Font, bg color.RGBA) *CaptionBox {
	return &CaptionBox{font: font, bg: bg}
}

// Layout wraps s to the screen width minus the horizontal margins on both
// sides and places the box marginY of the screen height above the bottom.
func (c *CaptionBox) Layout(s string, marginX, marginY float64, viewW, viewH int) {
	width := viewW - int(float64(viewW)*marginX*2)
	c.padding = c.font.LineHeight() / 4

	lines, w, h := c.font.MeasureWrapped(s, width)
	w += c.padding * 2
	h += c.padding * 2

	r := AlignToScreen(AlignBottom, w, h, viewW, viewH)
	r.Y -= int(float64(viewH) * marginY)

	c.text = s
	c.lines = lines
	c.rect = r
	c.dirty = true
}

// Text returns the caption being shown
func (c *CaptionBox) Text() string {
	return c.text
}

// Bounds returns the box rectangle
func (c *CaptionBox) Bounds() Rect {
	return c.rect
}

// Draw renders the box. The text is rendered into an offscreen canvas the
// first time it is drawn after a layout change.
func (c *CaptionBox) Draw(screen *ebiten.Image) {
	if c.text == "" || c.rect.W <= 0 || c.rect.H <= 0 {
		return
	}
	if c.dirty {
		c.render()
		c.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(c.rect.X), float64(c.rect.Y))
	screen.DrawImage(c.canvas, op)
}

func (c *CaptionBox) render() {
	if c.canvas != nil {
		b := c.canvas.Bounds()
		if b.Dx() != c.rect.W || b.Dy() != c.rect.H {
			c.canvas.Deallocate()
			c.canvas = nil
		}
	}
	if c.canvas == nil {
		c.canvas = ebiten.NewImage(c.rect.W, c.rect.H)
	}
	c.canvas.Fill(c.bg)

	lineH := c.font.LineHeight()
	cx := float64(c.rect.W) / 2
	for i, line := range c.lines {
		y := float64(c.padding + i*lineH)
		c.drawLine(line, cx+1, y+1, shadowColor)
		c.drawLine(line, cx, y, color.White)
	}
}

func (c *CaptionBox) drawLine(s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.canvas, s, c.font.Face(), op)
}

// Dispose releases the offscreen canvas
func (c *CaptionBox) Dispose() {
	if c.canvas != nil {
		c.canvas.Deallocate()
		c.canvas = nil
	}
}
