package paint

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/gogpu/gg"
)

// Image is a read-only raster image that can be drawn or used as a texture.
type Image struct {
	buf *gg.ImageBuf
}

// LoadImage decodes an image file (PNG, JPEG or WebP).
func LoadImage(path string) (*Image, error) {
	buf, err := gg.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("loading image %q: %w", path, err)
	}
	return &Image{buf: buf}, nil
}

// ImageFromStd copies a standard library image.
func ImageFromStd(img image.Image) *Image {
	return &Image{buf: gg.ImageBufFromImage(img)}
}

// Width returns the width in pixels.
func (i *Image) Width() int {
	return i.buf.Width()
}

// Height returns the height in pixels.
func (i *Image) Height() int {
	return i.buf.Height()
}

// Std returns the image as a standard library image.
func (i *Image) Std() image.Image {
	return i.buf.ToStdImage()
}

// Bitmap is a writable pixel buffer that a Paint draws into.
type Bitmap struct {
	pm *gg.Pixmap
}

// NewBitmap creates a transparent bitmap of the given size.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{pm: gg.NewPixmap(width, height)}
}

// Width returns the width in pixels.
func (b *Bitmap) Width() int {
	return b.pm.Width()
}

// Height returns the height in pixels.
func (b *Bitmap) Height() int {
	return b.pm.Height()
}

// At returns the color of the pixel at (x, y).
func (b *Bitmap) At(x, y int) color.Color {
	return b.pm.At(x, y)
}

// Image snapshots the bitmap so it can be drawn by another Paint.
func (b *Bitmap) Image() *Image {
	return ImageFromStd(b.pm.ToImage())
}

// Std returns a copy of the bitmap as a standard library image.
func (b *Bitmap) Std() *image.RGBA {
	return b.pm.ToImage()
}

// SavePNG writes the bitmap to a PNG file.
func (b *Bitmap) SavePNG(path string) error {
	return b.pm.SavePNG(path)
}

// EncodePNG writes the bitmap as PNG to w.
func (b *Bitmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, b.pm.ToImage())
}
