package paint

import "github.com/gogpu/gg"

// Pen outlines shapes with a brush at a line width in pixels.
type Pen struct {
	brush Brush
	width float64
}

// NewPen creates a Pen. A width of zero or less is raised to one pixel.
func NewPen(brush Brush, width float64) *Pen {
	p := &Pen{brush: brush}
	p.SetWidth(width)
	return p
}

// Brush returns the brush the pen strokes with.
func (p *Pen) Brush() Brush {
	return p.brush
}

// SetBrush changes the brush the pen strokes with.
func (p *Pen) SetBrush(b Brush) {
	p.brush = b
}

// Width returns the line width in pixels.
func (p *Pen) Width() float64 {
	return p.width
}

// SetWidth changes the line width in pixels.
func (p *Pen) SetWidth(width float64) {
	if width <= 0 {
		width = 1
	}
	p.width = width
}

func (p *Pen) apply(dc *gg.Context) {
	if p.brush != nil {
		p.brush.apply(dc)
	}
	dc.SetLineWidth(p.width)
}
