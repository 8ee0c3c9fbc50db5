// Package ui provides the small widget set used by cutscene playback:
// push buttons, the caption box and centered text labels.
package ui

// Rect is an integer screen rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Bottom returns the y coordinate just below the rectangle
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Align names a screen anchor
type Align int

const (
	AlignCenter Align = iota
	AlignTopRight
	AlignBottom
)

// AlignToScreen places a w x h box against the screen edge named by a
func AlignToScreen(a Align, w, h, viewW, viewH int) Rect {
	r := Rect{W: w, H: h}
	switch a {
	case AlignTopRight:
		r.X = viewW - w
	case AlignBottom:
		r.X = (viewW - w) / 2
		r.Y = viewH - h
	default:
		r.X = (viewW - w) / 2
		r.Y = (viewH - h) / 2
	}
	return r
}

// FitToScreen scales a w x h box to the screen height keeping its aspect
// ratio, then centers it. Unless crop is set, a box that ends up wider than
// the screen is fitted to the screen width instead.
func FitToScreen(w, h int, crop bool, viewW, viewH int) Rect {
	if w <= 0 || h <= 0 {
		return AlignToScreen(AlignCenter, 0, 0, viewW, viewH)
	}

	ratio := float64(viewH) / float64(h)
	fw, fh := int(float64(w)*ratio), viewH
	if !crop && fw > viewW {
		ratio = float64(viewW) / float64(w)
		fw, fh = viewW, int(float64(h)*ratio)
	}
	return AlignToScreen(AlignCenter, fw, fh, viewW, viewH)
}
