package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/cutscene/internal/application/system"
	"github.com/younwookim/cutscene/internal/infrastructure/assets"
)

// Glyph is the shape drawn by a button that has no image
type Glyph int

const (
	GlyphNext Glyph = iota
	GlyphClose
)

const defaultButtonSize = 32

var (
	buttonFill   = color.RGBA{40, 40, 40, 200}
	buttonBorder = color.RGBA{200, 200, 200, 255}
	buttonDown   = color.RGBA{90, 90, 90, 220}
)

// Button is a push button clicked with the primary pointer button.
// A click fires on release when the press started on the button and the
// pointer is still over it.
type Button struct {
	image   *assets.Image
	glyph   Glyph
	rect    Rect
	pressed bool
}

// NewButton creates a button. A nil image draws the fallback glyph.
func NewButton(img *assets.Image, glyph Glyph) *Button {
	b := &Button{image: img, glyph: glyph}
	b.rect.W, b.rect.H = defaultButtonSize, defaultButtonSize
	if img != nil {
		if w, h := img.Size(); w > 0 && h > 0 {
			b.rect.W, b.rect.H = w, h
		}
	}
	return b
}

// PinTopRight places the button half its size away from the top-right corner
func (b *Button) PinTopRight(viewW int) {
	b.rect.X = viewW - b.rect.W - b.rect.W/2
	b.rect.Y = b.rect.H / 2
}

// Bounds returns the button rectangle
func (b *Button) Bounds() Rect {
	return b.rect
}

// Pressed reports whether a press that started on the button is still held
func (b *Button) Pressed() bool {
	return b.pressed
}

// Update feeds one tick of input to the button and reports a click
func (b *Button) Update(in system.InputState) bool {
	over := b.rect.Contains(in.MouseX, in.MouseY)

	if in.JustPressed(system.ActionMain1) && over {
		b.pressed = true
		return false
	}

	if b.pressed && !in.IsHeld(system.ActionMain1) {
		b.pressed = false
		return over
	}

	return false
}

// Draw renders the button
func (b *Button) Draw(screen *ebiten.Image) {
	if b.image != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(b.rect.X), float64(b.rect.Y))
		if b.pressed {
			op.ColorScale.Scale(0.7, 0.7, 0.7, 1)
		}
		screen.DrawImage(b.image.Texture(), op)
		return
	}

	x, y := float32(b.rect.X), float32(b.rect.Y)
	w, h := float32(b.rect.W), float32(b.rect.H)
	fill := buttonFill
	if b.pressed {
		fill = buttonDown
	}
	vector.DrawFilledRect(screen, x, y, w, h, fill, false)
	vector.StrokeRect(screen, x, y, w, h, 2, buttonBorder, false)

	inset := w / 4
	switch b.glyph {
	case GlyphClose:
		vector.StrokeLine(screen, x+inset, y+inset, x+w-inset, y+h-inset, 3, buttonBorder, true)
		vector.StrokeLine(screen, x+w-inset, y+inset, x+inset, y+h-inset, 3, buttonBorder, true)
	default:
		vector.StrokeLine(screen, x+inset, y+inset, x+w-inset, y+h/2, 3, buttonBorder, true)
		vector.StrokeLine(screen, x+w-inset, y+h/2, x+inset, y+h-inset, 3, buttonBorder, true)
	}
}
