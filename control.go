package gui

import (
	"fmt"

	"github.com/grindlemire/go-gui/internal/debug"
	"github.com/grindlemire/go-gui/paint"
)

// SizeEvent is emitted after a control's bounds have been committed.
type SizeEvent struct {
	Sender *Control
	Bounds Bounds
}

// SizingEvent is emitted before a control's bounds change. Handlers may
// replace Proposed or set Cancel to veto the change.
type SizingEvent struct {
	Sender   *Control
	Current  Bounds
	Proposed Bounds
	Cancel   bool
}

// ParentChangedEvent is emitted on a control after it moved between parents.
// Either side may be nil.
type ParentChangedEvent struct {
	Sender *Control
	Old    *Control
	New    *Control
}

// PaintEvent is emitted while a control tree renders. Bounds are absolute and
// the paint is already clipped to them.
type PaintEvent struct {
	Sender *Control
	Paint  *paint.Paint
	Bounds Bounds

	errs *[]error
}

// Rect returns the event bounds in paint coordinates.
func (e PaintEvent) Rect() paint.Rect {
	return paint.RectFromInt(e.Bounds)
}

// Report records a drawing error. Render returns every reported error.
func (e PaintEvent) Report(err error) {
	if err != nil && e.errs != nil {
		*e.errs = append(*e.errs, err)
	}
}

// Widget is anything that embeds a Control and can join a control tree.
type Widget interface {
	Base() *Control
}

// Control is a node in a retained tree of rectangles. It owns its absolute
// bounds, a parent back-reference, an ordered child list and the events other
// code uses to follow it.
//
// A control tree is not safe for concurrent use.
type Control struct {
	name       string
	bounds     Bounds
	parent     *Control
	children   []*Control
	terminated bool
	terminates bool

	// SizeChanged fires after new bounds are committed. A vetoed resize also
	// ends with SizeChanged carrying the unchanged bounds, so observers that
	// tracked the proposal can restore themselves.
	SizeChanged Event[SizeEvent]
	// Sizing fires before new bounds are committed.
	Sizing Event[*SizingEvent]
	// ParentChanged fires on this control after reparenting.
	ParentChanged Event[ParentChangedEvent]
	// Terminating fires once, before children are terminated.
	Terminating Event[*Control]
	// Painting fires for each Render of this control.
	Painting Event[PaintEvent]
}

// NewControl creates a detached Control.
func NewControl(opts ...Option) *Control {
	c := &Control{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Base returns c. It makes *Control a Widget.
func (c *Control) Base() *Control {
	return c
}

// Name returns the control name, which may be empty.
func (c *Control) Name() string {
	return c.name
}

// SetName sets the name used in logs and lookups.
func (c *Control) SetName(name string) {
	c.name = name
}

// Bounds returns the absolute bounds.
func (c *Control) Bounds() Bounds {
	return c.bounds
}

// SetBounds proposes new bounds. Sizing observers may adjust or veto the
// proposal before it is committed and SizeChanged is emitted. Setting the
// current bounds, or any bounds on a terminated control, does nothing.
func (c *Control) SetBounds(b Bounds) {
	if c.terminated || b == c.bounds {
		return
	}
	old := c.bounds
	ev := &SizingEvent{Sender: c, Current: old, Proposed: b}
	c.Sizing.Emit(ev)
	if c.terminated {
		return
	}
	if ev.Cancel {
		debug.Log("control %s: resize to %s vetoed", c, b)
		c.SizeChanged.Emit(SizeEvent{Sender: c, Bounds: c.bounds})
		return
	}
	c.bounds = ev.Proposed
	debug.Log("control %s: resized from %s", c, old)
	c.SizeChanged.Emit(SizeEvent{Sender: c, Bounds: c.bounds})
}

// IsTerminated reports whether Terminate has been called.
func (c *Control) IsTerminated() bool {
	return c.terminated
}

// Terminate tears the control down. Terminating fires once, children are
// terminated depth first, the control leaves its parent and then every event
// is closed. Calling Terminate again does nothing.
func (c *Control) Terminate() {
	if c.terminated || c.terminates {
		return
	}
	c.terminates = true
	debug.Log("control %s: terminating", c)
	c.Terminating.Emit(c)

	for _, child := range append([]*Control(nil), c.children...) {
		child.Terminate()
	}
	c.SetParent(nil)

	c.terminated = true
	c.SizeChanged.Close()
	c.Sizing.Close()
	c.ParentChanged.Close()
	c.Terminating.Close()
	c.Painting.Close()
}

// String returns a short debug form.
func (c *Control) String() string {
	if c == nil {
		return "<nil>"
	}
	if c.name != "" {
		return fmt.Sprintf("%s(%s)", c.name, c.bounds)
	}
	return fmt.Sprintf("control@%p(%s)", c, c.bounds)
}
