// Package assets loads and prepares the images and fonts used by cutscenes.
package assets

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// Image is a decoded image. The GPU texture is created on first use so that
// layout code can work with image sizes without a running game loop.
type Image struct {
	src image.Image
	tex *ebiten.Image
}

// NewImage wraps a decoded image
func NewImage(src image.Image) *Image {
	return &Image{src: src}
}

// Size returns the native dimensions of the image
func (i *Image) Size() (w, h int) {
	b := i.src.Bounds()
	return b.Dx(), b.Dy()
}

// Texture returns the ebiten image, creating it on first call
func (i *Image) Texture() *ebiten.Image {
	if i.tex == nil {
		i.tex = ebiten.NewImageFromImage(i.src)
	}
	return i.tex
}

// Resize returns a new image scaled to w x h. The receiver is left untouched
// and keeps ownership of its own texture. Returns nil for an empty target.
func (i *Image) Resize(w, h int) *Image {
	if w <= 0 || h <= 0 {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), i.src, i.src.Bounds(), draw.Over, nil)
	return &Image{src: dst}
}

// Dispose releases the GPU texture. The image can still be measured and
// resized afterwards; Texture recreates it when needed.
func (i *Image) Dispose() {
	if i == nil || i.tex == nil {
		return
	}
	i.tex.Deallocate()
	i.tex = nil
}

// ImageLoader decodes images from a filesystem
type ImageLoader struct {
	fsys fs.FS
}

// NewImageLoader creates a loader reading from fsys
func NewImageLoader(fsys fs.FS) *ImageLoader {
	return &ImageLoader{fsys: fsys}
}

// LoadImage opens and decodes an image. Every call returns a new Image owned
// by the caller.
func (l *ImageLoader) LoadImage(path string) (*Image, error) {
	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	return NewImage(img), nil
}
