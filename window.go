package gui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/grindlemire/go-gui/internal/debug"
	"github.com/grindlemire/go-gui/paint"
)

// ErrInvalidSize is returned for window sizes that are not positive.
var ErrInvalidSize = errors.New("gui: window size must be positive")

// Window is the root of a control tree. Its bounds start at the origin and
// it renders the tree into an offscreen bitmap.
type Window struct {
	*Control

	title      string
	background color.Color
	font       *paint.Font
	bitmap     *paint.Bitmap
}

// NewWindow creates a width x height window.
func NewWindow(width, height int, opts ...WindowOption) (*Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new window %dx%d: %w", width, height, ErrInvalidSize)
	}
	w := &Window{
		Control:    NewControl(WithName("window"), WithBounds(NewBounds(0, 0, width, height))),
		background: color.White,
	}
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}
	if w.font == nil {
		f, err := paint.NewFont(paint.FamilyGo, 12, paint.Normal)
		if err != nil {
			return nil, fmt.Errorf("default font: %w", err)
		}
		w.font = f
	}
	return w, nil
}

// Title returns the window title.
func (w *Window) Title() string {
	return w.title
}

// Background returns the clear color.
func (w *Window) Background() color.Color {
	return w.background
}

// Font returns the window's default font.
func (w *Window) Font() *paint.Font {
	return w.font
}

// Size returns the window's width and height.
func (w *Window) Size() (int, int) {
	b := w.Bounds()
	return b.Width(), b.Height()
}

// Resize changes the window size. Anchored descendants follow.
func (w *Window) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("resize %dx%d: %w", width, height, ErrInvalidSize)
	}
	w.SetBounds(NewBounds(0, 0, width, height))
	return nil
}

// Render draws the tree into the window's bitmap and returns it. The bitmap
// is reused between calls while the size is unchanged.
func (w *Window) Render() (*paint.Bitmap, error) {
	if w.IsTerminated() {
		return nil, errors.New("gui: render of closed window")
	}
	width, height := w.Size()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render %dx%d: %w", width, height, ErrInvalidSize)
	}
	if w.bitmap == nil || w.bitmap.Width() != width || w.bitmap.Height() != height {
		w.bitmap = paint.NewBitmap(width, height)
	}

	p := paint.New(w.bitmap)
	defer p.Close()
	if err := p.Clear(w.background); err != nil {
		return nil, err
	}
	if err := w.Control.Render(p); err != nil {
		return nil, fmt.Errorf("render %s: %w", w.title, err)
	}
	debug.Log("window %q: rendered %dx%d", w.title, width, height)
	return w.bitmap, nil
}

// Close terminates the control tree.
func (w *Window) Close() {
	w.Terminate()
}
