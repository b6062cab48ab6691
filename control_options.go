package gui

// Option configures a Control.
type Option func(*Control)

// WithName sets the control name.
func WithName(name string) Option {
	return func(c *Control) {
		c.name = name
	}
}

// WithBounds sets the initial bounds without emitting events.
func WithBounds(b Bounds) Option {
	return func(c *Control) {
		c.bounds = b
	}
}

// WithOnPaint subscribes fn to the control's Painting event.
func WithOnPaint(fn func(PaintEvent)) Option {
	return func(c *Control) {
		c.Painting.Subscribe(fn)
	}
}

// WithChildren appends children to the control.
func WithChildren(children ...Widget) Option {
	return func(c *Control) {
		c.AddChild(children...)
	}
}
