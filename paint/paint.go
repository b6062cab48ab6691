package paint

import (
	"errors"
	"image/color"
	"math"
	"strings"

	"github.com/gogpu/gg"
)

// ErrNotInitialized is returned by drawing calls on a closed or zero Paint.
var ErrNotInitialized = errors.New("paint: not initialized")

// DefaultTension is the curve tension used by DrawCurve when given zero.
const DefaultTension = 0.5

// Paint draws into a Bitmap. It is not safe for concurrent use.
type Paint struct {
	dc        *gg.Context
	target    *Bitmap
	clip      *Rect
	smoothing bool
}

// New creates a Paint drawing into target.
func New(target *Bitmap) *Paint {
	return &Paint{
		dc:        gg.NewContext(target.Width(), target.Height(), gg.WithPixmap(target.pm)),
		target:    target,
		smoothing: true,
	}
}

// Close releases the drawing context. Further drawing calls return
// ErrNotInitialized. Close is idempotent.
func (p *Paint) Close() error {
	if p.dc == nil {
		return nil
	}
	err := p.dc.Close()
	p.dc = nil
	p.clip = nil
	return err
}

// IsInitialized reports whether the paint can draw.
func (p *Paint) IsInitialized() bool {
	return p != nil && p.dc != nil
}

// Target returns the bitmap being drawn into.
func (p *Paint) Target() *Bitmap {
	return p.target
}

// SetSmoothing toggles anti-aliased geometry. With smoothing off, shape
// coordinates are snapped to whole pixels so axis-aligned edges stay crisp.
func (p *Paint) SetSmoothing(smoothing bool) {
	p.smoothing = smoothing
}

// Smoothing reports whether smoothing is on.
func (p *Paint) Smoothing() bool {
	return p.smoothing
}

// Clear fills the whole bitmap with c, ignoring clip and transform.
func (p *Paint) Clear(c color.Color) error {
	if !p.IsInitialized() {
		return ErrNotInitialized
	}
	p.dc.ClearWithColor(gg.FromColor(c))
	return nil
}

// SetTransform sets the affine world transform. The arguments follow the
// row-vector convention:
//
//	x' = m11*x + m21*y + m31
//	y' = m12*x + m22*y + m32
func (p *Paint) SetTransform(m11, m12, m21, m22, m31, m32 float64) error {
	if !p.IsInitialized() {
		return ErrNotInitialized
	}
	p.dc.SetTransform(gg.Matrix{
		A: m11, B: m21, C: m31,
		D: m12, E: m22, F: m32,
	})
	return nil
}

// ClearTransform resets the world transform to identity.
func (p *Paint) ClearTransform() error {
	if !p.IsInitialized() {
		return ErrNotInitialized
	}
	p.dc.Identity()
	return nil
}

// SetClip restricts drawing to r, replacing any previous clip.
func (p *Paint) SetClip(r Rect) error {
	if !p.IsInitialized() {
		return ErrNotInitialized
	}
	r = r.Canon()
	p.dc.ResetClip()
	p.dc.ClipRect(r.From.X, r.From.Y, r.Width(), r.Height())
	p.clip = &r
	return nil
}

// ClearClip removes the clip.
func (p *Paint) ClearClip() error {
	if !p.IsInitialized() {
		return ErrNotInitialized
	}
	p.dc.ResetClip()
	p.clip = nil
	return nil
}

// Clip returns the current clip and whether one is set.
func (p *Paint) Clip() (Rect, bool) {
	if p.clip == nil {
		return Rect{}, false
	}
	return *p.clip, true
}

// MeasureWrite returns the size text would occupy when written with font,
// as a Rect anchored at the origin. Lines are separated by '\n'.
func (p *Paint) MeasureWrite(s string, font *Font) Rect {
	if !font.IsValid() || s == "" {
		return Rect{}
	}
	lines := strings.Split(s, "\n")
	var w float64
	for _, line := range lines {
		w = max(w, font.face.Advance(line))
	}
	return R(0, 0, w, font.LineHeight()*float64(len(lines)))
}

// Write draws text starting at the top-left corner of r, one line per '\n'.
// Text color comes from brush; non-solid brushes write in black. Glyphs are
// rasterized straight into the bitmap and are not clipped.
func (p *Paint) Write(s string, font *Font, brush Brush, r Rect) error {
	if !p.IsInitialized() {
		return ErrNotInitialized
	}
	if !font.IsValid() || s == "" {
		return nil
	}
	r = r.Canon()

	if sb, ok := brush.(*SolidBrush); ok {
		p.dc.SetColor(sb.color)
	} else {
		p.dc.SetColor(color.Black)
	}
	p.dc.SetFont(font.face)

	metrics := font.face.Metrics()
	lineHeight := metrics.LineHeight()
	baseline := r.From.Y + metrics.Ascent
	for _, line := range strings.Split(s, "\n") {
		p.dc.DrawString(line, r.From.X, baseline)

		if font.style&(Underline|Strikeout) != 0 {
			width := font.face.Advance(line)
			thickness := max(1, font.size/14)
			p.dc.SetLineWidth(thickness)
			if font.style&Underline != 0 {
				y := baseline + metrics.Descent/2
				p.dc.DrawLine(r.From.X, y, r.From.X+width, y)
			}
			if font.style&Strikeout != 0 {
				y := baseline - metrics.XHeight/2
				p.dc.DrawLine(r.From.X, y, r.From.X+width, y)
			}
			if err := p.dc.Stroke(); err != nil {
				return err
			}
		}
		baseline += lineHeight
	}
	return nil
}

// DrawImage draws img scaled into r.
func (p *Paint) DrawImage(img *Image, r Rect) error {
	if !p.IsInitialized() {
		return ErrNotInitialized
	}
	r = p.snapRect(r.Canon())
	p.dc.DrawImageEx(img.buf, gg.DrawImageOptions{
		X:         r.From.X,
		Y:         r.From.Y,
		DstWidth:  r.Width(),
		DstHeight: r.Height(),
	})
	return nil
}

// DrawRect outlines r with pen.
func (p *Paint) DrawRect(pen *Pen, r Rect) error {
	return p.stroke(pen, func() {
		r = p.snapRect(r.Canon())
		p.dc.DrawRectangle(r.From.X, r.From.Y, r.Width(), r.Height())
	})
}

// FillRect fills r with brush.
func (p *Paint) FillRect(brush Brush, r Rect) error {
	return p.fill(brush, func() {
		r = p.snapRect(r.Canon())
		p.dc.DrawRectangle(r.From.X, r.From.Y, r.Width(), r.Height())
	})
}

// DrawEllipse outlines the ellipse inscribed in r with pen.
func (p *Paint) DrawEllipse(pen *Pen, r Rect) error {
	return p.stroke(pen, func() {
		p.ellipse(r)
	})
}

// FillEllipse fills the ellipse inscribed in r with brush.
func (p *Paint) FillEllipse(brush Brush, r Rect) error {
	return p.fill(brush, func() {
		p.ellipse(r)
	})
}

// DrawLine strokes the segment from a to b with pen.
func (p *Paint) DrawLine(pen *Pen, a, b Point) error {
	return p.stroke(pen, func() {
		a, b = p.snap(a), p.snap(b)
		p.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	})
}

// DrawArc strokes part of the ellipse inscribed in r. Angles are in degrees,
// measured clockwise from the positive x axis; sweep may be negative.
func (p *Paint) DrawArc(pen *Pen, r Rect, start, sweep float64) error {
	return p.stroke(pen, func() {
		p.arc(r, start, sweep, false)
	})
}

// FillArc fills the pie slice of the ellipse inscribed in r.
func (p *Paint) FillArc(brush Brush, r Rect, start, sweep float64) error {
	return p.fill(brush, func() {
		p.arc(r, start, sweep, true)
		p.dc.ClosePath()
	})
}

// DrawPoly outlines the closed polygon through pts.
func (p *Paint) DrawPoly(pen *Pen, pts []Point) error {
	if len(pts) < 2 {
		return nil
	}
	return p.stroke(pen, func() {
		p.poly(pts)
	})
}

// FillPoly fills the closed polygon through pts.
func (p *Paint) FillPoly(brush Brush, pts []Point) error {
	if len(pts) < 3 {
		return nil
	}
	return p.fill(brush, func() {
		p.poly(pts)
	})
}

// DrawCurve strokes an open cardinal spline through pts. A tension of zero
// uses DefaultTension.
func (p *Paint) DrawCurve(pen *Pen, pts []Point, tension float64) error {
	if len(pts) < 2 {
		return nil
	}
	if tension == 0 {
		tension = DefaultTension
	}
	return p.stroke(pen, func() {
		first := p.snap(pts[0])
		p.dc.MoveTo(first.X, first.Y)
		for _, seg := range cardinalSegments(pts, tension) {
			c1, c2, end := p.snap(seg[0]), p.snap(seg[1]), p.snap(seg[2])
			p.dc.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
		}
	})
}

// DrawBezier strokes the cubic Bézier curve from p0 to p3 with control
// points p1 and p2.
func (p *Paint) DrawBezier(pen *Pen, p0, p1, p2, p3 Point) error {
	return p.stroke(pen, func() {
		p0, p1, p2, p3 = p.snap(p0), p.snap(p1), p.snap(p2), p.snap(p3)
		p.dc.MoveTo(p0.X, p0.Y)
		p.dc.CubicTo(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
	})
}

func (p *Paint) stroke(pen *Pen, build func()) error {
	if !p.IsInitialized() {
		return ErrNotInitialized
	}
	if pen == nil {
		return nil
	}
	p.dc.ClearPath()
	pen.apply(p.dc)
	build()
	return p.dc.Stroke()
}

func (p *Paint) fill(brush Brush, build func()) error {
	if !p.IsInitialized() {
		return ErrNotInitialized
	}
	if brush == nil {
		return nil
	}
	p.dc.ClearPath()
	brush.apply(p.dc)
	build()
	return p.dc.Fill()
}

func (p *Paint) ellipse(r Rect) {
	r = p.snapRect(r.Canon())
	c := Pt(r.From.X+r.Width()/2, r.From.Y+r.Height()/2)
	p.dc.DrawEllipse(c.X, c.Y, r.Width()/2, r.Height()/2)
}

func (p *Paint) poly(pts []Point) {
	first := p.snap(pts[0])
	p.dc.MoveTo(first.X, first.Y)
	for _, pt := range pts[1:] {
		pt = p.snap(pt)
		p.dc.LineTo(pt.X, pt.Y)
	}
	p.dc.ClosePath()
}

// arc appends an elliptical arc to the path, split into segments of at most
// 90 degrees, each approximated by one cubic. With pie set the path starts
// at the ellipse center.
func (p *Paint) arc(r Rect, start, sweep float64, pie bool) {
	r = p.snapRect(r.Canon())
	cx, cy := r.From.X+r.Width()/2, r.From.Y+r.Height()/2
	rx, ry := r.Width()/2, r.Height()/2

	a1 := start * math.Pi / 180
	total := sweep * math.Pi / 180
	n := max(1, int(math.Ceil(math.Abs(total)/(math.Pi/2))))
	step := total / float64(n)

	startX, startY := cx+rx*math.Cos(a1), cy+ry*math.Sin(a1)
	if pie {
		p.dc.MoveTo(cx, cy)
		p.dc.LineTo(startX, startY)
	} else {
		p.dc.MoveTo(startX, startY)
	}

	k := 4.0 / 3.0 * math.Tan(step/4)
	for i := 0; i < n; i++ {
		t1 := a1 + float64(i)*step
		t2 := t1 + step
		cos1, sin1 := math.Cos(t1), math.Sin(t1)
		cos2, sin2 := math.Cos(t2), math.Sin(t2)
		p.dc.CubicTo(
			cx+rx*(cos1-k*sin1), cy+ry*(sin1+k*cos1),
			cx+rx*(cos2+k*sin2), cy+ry*(sin2-k*cos2),
			cx+rx*cos2, cy+ry*sin2,
		)
	}
}

// cardinalSegments converts a cardinal spline through pts into cubic Bézier
// segments, each given as {control1, control2, end}.
func cardinalSegments(pts []Point, tension float64) [][3]Point {
	segs := make([][3]Point, 0, len(pts)-1)
	at := func(i int) Point {
		return pts[min(max(i, 0), len(pts)-1)]
	}
	s := tension / 3
	for i := 0; i < len(pts)-1; i++ {
		p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)
		c1 := p1.Add(p2.Sub(p0).Scale(s))
		c2 := p2.Sub(p3.Sub(p1).Scale(s))
		segs = append(segs, [3]Point{c1, c2, p2})
	}
	return segs
}

func (p *Paint) snap(pt Point) Point {
	if p.smoothing {
		return pt
	}
	return Pt(math.Round(pt.X), math.Round(pt.Y))
}

func (p *Paint) snapRect(r Rect) Rect {
	if p.smoothing {
		return r
	}
	return Rect{From: p.snap(r.From), To: p.snap(r.To)}
}
