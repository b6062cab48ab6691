package layoutfile

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-gui"
	"github.com/grindlemire/go-gui/paint"
)

// Validate checks the layout without building it. Every problem found is
// reported; each wraps ErrInvalid.
func (f *File) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
	}

	w := f.Window
	if w.Width <= 0 || w.Height <= 0 {
		fail("window size %dx%d must be positive", w.Width, w.Height)
	}
	if w.FontSize < 0 {
		fail("window font_size %g must not be negative", w.FontSize)
	}
	if w.Background != "" {
		if _, err := paint.ParseColor(w.Background); err != nil {
			fail("window background: %v", err)
		}
	}

	names := map[string]bool{}
	var walk func(path string, cs []Control)
	walk = func(path string, cs []Control) {
		for i, c := range cs {
			id := fmt.Sprintf("%s[%d]", path, i)
			if c.Name != "" {
				id = fmt.Sprintf("control %q", c.Name)
				if names[c.Name] {
					fail("%s: duplicate name", id)
				}
				names[c.Name] = true
			}
			for _, err := range c.validate() {
				fail("%s: %v", id, err)
			}
			walk(id+".control", c.Controls)
		}
	}
	walk("control", f.Controls)

	return errors.Join(errs...)
}

func (c Control) validate() []error {
	var errs []error
	if c.Preset != "" && c.Anchor != nil {
		errs = append(errs, errors.New("preset and anchor are exclusive"))
	}
	if c.Preset != "" {
		if _, err := gui.ParseAnchorPreset(c.Preset); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Anchor != nil && len(c.Anchor) != 4 {
		errs = append(errs, fmt.Errorf("anchor has %d components, want 4", len(c.Anchor)))
	}
	if c.Offset != nil && c.Margins != nil {
		errs = append(errs, errors.New("offset and margins are exclusive"))
	}
	if c.Offset != nil && len(c.Offset) != 4 {
		errs = append(errs, fmt.Errorf("offset has %d components, want 4", len(c.Offset)))
	}
	if c.Margins != nil && len(c.Margins) != 4 {
		errs = append(errs, fmt.Errorf("margins has %d components, want 4", len(c.Margins)))
	}
	switch c.Shape {
	case "", "rect", "ellipse":
	default:
		errs = append(errs, fmt.Errorf("unknown shape %q", c.Shape))
	}
	switch c.TextAlign {
	case "", "left", "center", "right":
	default:
		errs = append(errs, fmt.Errorf("unknown text_align %q", c.TextAlign))
	}
	if c.BorderWidth < 0 {
		errs = append(errs, fmt.Errorf("border_width %g must not be negative", c.BorderWidth))
	}
	colors := []struct{ key, value string }{
		{"fill", c.Fill},
		{"border", c.Border},
		{"text_color", c.TextColor},
	}
	for _, col := range colors {
		if col.value == "" {
			continue
		}
		if _, err := paint.ParseColor(col.value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", col.key, err))
		}
	}
	return errs
}
