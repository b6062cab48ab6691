package gui

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-gui/paint"
)

// Render emits Painting for c and then renders its children in order. Each
// control is clipped to its own bounds intersected with its ancestors'.
// Controls with no visible area are skipped along with their subtree.
func (c *Control) Render(p *paint.Paint) error {
	if !p.IsInitialized() {
		return paint.ErrNotInitialized
	}
	var errs []error
	c.render(p, &errs)
	return errors.Join(errs...)
}

func (c *Control) render(p *paint.Paint, errs *[]error) {
	if c.terminated {
		return
	}
	prev, hadClip := p.Clip()
	clip := paint.RectFromInt(c.bounds).Canon()
	if hadClip {
		clip = clip.Intersect(prev)
	}
	if clip.IsEmpty() {
		return
	}
	if err := p.SetClip(clip); err != nil {
		*errs = append(*errs, fmt.Errorf("clip %s: %w", c, err))
		return
	}

	c.Painting.Emit(PaintEvent{Sender: c, Paint: p, Bounds: c.bounds, errs: errs})
	for _, child := range append([]*Control(nil), c.children...) {
		child.render(p, errs)
	}

	if hadClip {
		_ = p.SetClip(prev)
	} else {
		_ = p.ClearClip()
	}
}
