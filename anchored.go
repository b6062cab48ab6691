package gui

import (
	"github.com/grindlemire/go-gui/internal/debug"
	"github.com/grindlemire/go-gui/internal/geom"
)

// CalculateBounds derives absolute bounds from a parent frame, an anchor and
// an offset. Each anchor-derived edge is rounded half away from zero before
// the integer offset is added:
//
//	left = round(frame.left + anchor.left*frame.width) + offset.left
//
// and likewise for the other edges. Degenerate or inverted inputs produce
// degenerate or inverted output.
func CalculateBounds(frame Bounds, anchor AnchorRect, offset OffsetRect) Bounds {
	p := anchorPoints(frame, anchor)
	return NewBounds(
		p.From.X+offset.From.X,
		p.From.Y+offset.From.Y,
		p.To.X+offset.To.X,
		p.To.Y+offset.To.Y,
	)
}

// BoundsToOffset is the inverse of CalculateBounds: the offset that places a
// control at b within frame under anchor. For integer frames and bounds
//
//	CalculateBounds(frame, anchor, BoundsToOffset(frame, anchor, b)) == b
//
// holds exactly.
func BoundsToOffset(frame Bounds, anchor AnchorRect, b Bounds) OffsetRect {
	p := anchorPoints(frame, anchor)
	return NewOffset(
		b.From.X-p.From.X,
		b.From.Y-p.From.Y,
		b.To.X-p.To.X,
		b.To.Y-p.To.Y,
	)
}

func anchorPoints(frame Bounds, anchor AnchorRect) Bounds {
	f := geom.Convert[float64](frame)
	w, h := f.Width(), f.Height()
	return geom.Round(geom.NewBounds(
		f.From.X+anchor.From.X*w,
		f.From.Y+anchor.From.Y*h,
		f.From.X+anchor.To.X*w,
		f.From.Y+anchor.To.Y*h,
	))
}

// MarginsToOffset converts inward margins to an offset.
func MarginsToOffset(m Margins) OffsetRect {
	return NewOffset(m.From.X, m.From.Y, -m.To.X, -m.To.Y)
}

// OffsetToMargins converts an offset to inward margins.
func OffsetToMargins(o OffsetRect) Margins {
	return NewMargins(o.From.X, o.From.Y, -o.To.X, -o.To.Y)
}

// AnchoredControl is a Control whose bounds follow its parent. Its position
// is stored as an anchor (fractions of the parent's size) plus a pixel
// offset, and recomputed whenever the parent is resized or replaced.
//
// While detached the anchor and offset are stored and applied on the next
// attach. Any bounds change not made by anchoring itself, through this value
// or through a plain *Control handle from the tree, re-solves the offset so
// the control keeps its place on the next parent resize. Anchoring never calls SetAnchor, SetOffset or SetMargins itself, so
// a type embedding *AnchoredControl can shadow them to validate input.
type AnchoredControl struct {
	*Control

	anchor AnchorRect
	offset OffsetRect

	parentSubs []Subscription
	ownSubs    []Subscription
	applying   bool
}

// AnchorOption configures an AnchoredControl.
type AnchorOption func(*AnchoredControl)

// NewAnchored creates an AnchoredControl with a zero anchor and offset.
// Options are applied in order; WithParent attaches and computes bounds.
func NewAnchored(opts ...AnchorOption) *AnchoredControl {
	a := &AnchoredControl{Control: NewControl()}
	a.ownSubs = []Subscription{
		a.SizeChanged.Subscribe(a.onSizeChanged),
		a.ParentChanged.Subscribe(a.onParentChanged),
		a.Terminating.Subscribe(a.onTerminating),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// WithAnchor sets the initial anchor.
func WithAnchor(anchor AnchorRect) AnchorOption {
	return func(a *AnchoredControl) {
		a.anchor = anchor
		a.RecalculateBounds()
	}
}

// WithPreset sets the initial anchor from a preset.
func WithPreset(p AnchorPreset) AnchorOption {
	return WithAnchor(p.Rect())
}

// WithOffset sets the initial offset.
func WithOffset(offset OffsetRect) AnchorOption {
	return func(a *AnchoredControl) {
		a.offset = offset
		a.RecalculateBounds()
	}
}

// WithMargins sets the initial offset from margins.
func WithMargins(m Margins) AnchorOption {
	return WithOffset(MarginsToOffset(m))
}

// WithParent attaches the control to p.
func WithParent(p Widget) AnchorOption {
	return func(a *AnchoredControl) {
		if p != nil {
			a.Control.SetParent(p.Base())
		}
	}
}

// WithControl applies Control options to the embedded control.
func WithControl(opts ...Option) AnchorOption {
	return func(a *AnchoredControl) {
		for _, opt := range opts {
			opt(a.Control)
		}
	}
}

// Anchor returns the anchor.
func (a *AnchoredControl) Anchor() AnchorRect {
	return a.anchor
}

// Offset returns the offset.
func (a *AnchoredControl) Offset() OffsetRect {
	return a.offset
}

// Margins returns the offset expressed as inward margins.
func (a *AnchoredControl) Margins() Margins {
	return OffsetToMargins(a.offset)
}

// SetAnchor stores the anchor and recomputes bounds.
func (a *AnchoredControl) SetAnchor(anchor AnchorRect) {
	a.anchor = anchor
	a.RecalculateBounds()
}

// SetAnchorPreset sets a named anchor, keeping the current offset.
func (a *AnchoredControl) SetAnchorPreset(p AnchorPreset) {
	a.anchor = p.Rect()
	a.RecalculateBounds()
}

// SetOffset stores the offset and recomputes bounds.
func (a *AnchoredControl) SetOffset(offset OffsetRect) {
	a.offset = offset
	a.RecalculateBounds()
}

// SetMargins stores margins as an offset and recomputes bounds.
func (a *AnchoredControl) SetMargins(m Margins) {
	a.offset = MarginsToOffset(m)
	a.RecalculateBounds()
}

// SetBounds places the control at b. The offset is re-solved against the
// parent frame, or the zero frame while detached.
func (a *AnchoredControl) SetBounds(b Bounds) {
	a.Control.SetBounds(b)
}

// RecalculateBounds recomputes bounds from the parent's current bounds. It
// does nothing while detached or terminated.
func (a *AnchoredControl) RecalculateBounds() {
	if !a.Attached() || a.IsTerminated() {
		return
	}
	a.commit(a.Parent().Bounds())
}

// Attached reports whether the control is following a parent.
func (a *AnchoredControl) Attached() bool {
	return len(a.parentSubs) > 0
}

func (a *AnchoredControl) commit(frame Bounds) {
	b := CalculateBounds(frame, a.anchor, a.offset)
	debug.Log("anchored %s: frame %s anchor %s offset %s -> %s", a.Control, frame, a.anchor, a.offset, b)
	prev := a.applying
	a.applying = true
	a.Control.SetBounds(b)
	a.applying = prev
}

// onSizeChanged keeps the offset in step with bounds set from outside.
func (a *AnchoredControl) onSizeChanged(e SizeEvent) {
	if a.applying {
		return
	}
	a.offset = BoundsToOffset(a.parentFrame(), a.anchor, e.Bounds)
}

func (a *AnchoredControl) parentFrame() Bounds {
	if p := a.Parent(); p != nil {
		return p.Bounds()
	}
	return Bounds{}
}

func (a *AnchoredControl) onParentChanged(e ParentChangedEvent) {
	a.release()
	if e.New == nil {
		return
	}
	a.parentSubs = []Subscription{
		e.New.Sizing.Subscribe(a.onParentSizing),
		e.New.SizeChanged.Subscribe(a.onParentSizeChanged),
		e.New.Terminating.Subscribe(a.onParentTerminating),
	}
	a.RecalculateBounds()
}

// onParentSizing tracks the proposal so children move with the parent.
// Handlers must not resize the parent from here.
func (a *AnchoredControl) onParentSizing(e *SizingEvent) {
	if a.IsTerminated() {
		return
	}
	a.commit(e.Proposed)
}

func (a *AnchoredControl) onParentSizeChanged(e SizeEvent) {
	if a.IsTerminated() {
		return
	}
	a.commit(e.Bounds)
}

func (a *AnchoredControl) onParentTerminating(*Control) {
	a.release()
}

func (a *AnchoredControl) onTerminating(*Control) {
	a.release()
	for _, s := range a.ownSubs {
		s.Unsubscribe()
	}
	a.ownSubs = nil
}

func (a *AnchoredControl) release() {
	for _, s := range a.parentSubs {
		s.Unsubscribe()
	}
	a.parentSubs = nil
}
