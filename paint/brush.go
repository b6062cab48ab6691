package paint

import (
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// Brush is what shapes are filled with.
// This is a sealed interface; only types in this package implement it.
type Brush interface {
	// apply installs the brush as the current fill source of dc.
	apply(dc *gg.Context)
}

// SolidBrush fills with a single color.
type SolidBrush struct {
	color color.Color
}

// NewSolidBrush creates a SolidBrush. A nil color means opaque black.
func NewSolidBrush(c color.Color) *SolidBrush {
	if c == nil {
		c = color.Black
	}
	return &SolidBrush{color: c}
}

// Color returns the brush color as 8-bit non-premultiplied RGBA.
func (b *SolidBrush) Color() color.NRGBA {
	return color.NRGBAModel.Convert(b.color).(color.NRGBA)
}

// SetColor changes the brush color.
func (b *SolidBrush) SetColor(c color.Color) {
	if c == nil {
		c = color.Black
	}
	b.color = c
}

func (b *SolidBrush) apply(dc *gg.Context) {
	dc.SetFillBrush(gg.Solid(gg.FromColor(b.color)))
}

// TextureBrush fills by tiling a region of an image.
type TextureBrush struct {
	image *Image
	src   Rect
}

// NewTextureBrush creates a brush that tiles the src region of img.
// An empty src uses the whole image.
func NewTextureBrush(img *Image, src Rect) *TextureBrush {
	return &TextureBrush{image: img, src: src}
}

// Image returns the texture image.
func (b *TextureBrush) Image() *Image {
	return b.image
}

// Source returns the tiled region of the image.
func (b *TextureBrush) Source() Rect {
	return b.src
}

func (b *TextureBrush) apply(dc *gg.Context) {
	x, y, w, h := 0, 0, 0, 0
	if !b.src.IsEmpty() {
		x = int(math.Floor(b.src.From.X))
		y = int(math.Floor(b.src.From.Y))
		w = int(math.Ceil(b.src.Width()))
		h = int(math.Ceil(b.src.Height()))
	}
	dc.SetFillPattern(dc.CreateImagePattern(b.image.buf, x, y, w, h))
}
