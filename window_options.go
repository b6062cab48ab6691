package gui

import (
	"errors"
	"image/color"

	"github.com/grindlemire/go-gui/paint"
)

// WindowOption is a functional option for configuring a Window.
type WindowOption func(*Window) error

// WithTitle sets the window title.
func WithTitle(title string) WindowOption {
	return func(w *Window) error {
		w.title = title
		return nil
	}
}

// WithBackground sets the color the window is cleared to before rendering.
func WithBackground(c color.Color) WindowOption {
	return func(w *Window) error {
		if c == nil {
			return errors.New("background color must not be nil")
		}
		w.background = c
		return nil
	}
}

// WithFont sets the window's default font.
func WithFont(f *paint.Font) WindowOption {
	return func(w *Window) error {
		if !f.IsValid() {
			return errors.New("font is not valid")
		}
		w.font = f
		return nil
	}
}
