package layoutfile

import (
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/grindlemire/go-gui"
	"github.com/grindlemire/go-gui/paint"
)

const defaultFontSize = 12

// Build validates f and constructs its window and control tree. Named
// controls are returned by name.
func (f *File) Build() (*gui.Window, map[string]*gui.AnchoredControl, error) {
	return f.BuildSize(f.Window.Width, f.Window.Height)
}

// BuildSize is Build with the window size overridden. The tree is built at
// the declared size and then resized, so anchoring decides the final layout.
func (f *File) BuildSize(width, height int) (*gui.Window, map[string]*gui.AnchoredControl, error) {
	if err := f.Validate(); err != nil {
		return nil, nil, err
	}

	size := f.Window.FontSize
	if size == 0 {
		size = defaultFontSize
	}
	font, err := paint.NewFont(f.Window.Font, size, paint.Normal)
	if err != nil {
		return nil, nil, fmt.Errorf("window font: %w", err)
	}
	opts := []gui.WindowOption{gui.WithTitle(f.Window.Title), gui.WithFont(font)}
	if f.Window.Background != "" {
		bg, _ := paint.ParseColor(f.Window.Background)
		opts = append(opts, gui.WithBackground(bg))
	}
	w, err := gui.NewWindow(f.Window.Width, f.Window.Height, opts...)
	if err != nil {
		return nil, nil, err
	}

	named := map[string]*gui.AnchoredControl{}
	b := builder{dir: f.dir, font: font, named: named}
	for _, c := range f.Controls {
		if err := b.build(c, w); err != nil {
			w.Close()
			return nil, nil, err
		}
	}

	if width != f.Window.Width || height != f.Window.Height {
		if err := w.Resize(width, height); err != nil {
			w.Close()
			return nil, nil, err
		}
	}
	return w, named, nil
}

type builder struct {
	dir   string
	font  *paint.Font
	named map[string]*gui.AnchoredControl
}

func (b builder) build(c Control, parent gui.Widget) error {
	var opts []gui.AnchorOption
	switch {
	case c.Preset != "":
		p, _ := gui.ParseAnchorPreset(c.Preset)
		opts = append(opts, gui.WithPreset(p))
	case c.Anchor != nil:
		opts = append(opts, gui.WithAnchor(gui.NewAnchor(c.Anchor[0], c.Anchor[1], c.Anchor[2], c.Anchor[3])))
	}
	switch {
	case c.Offset != nil:
		opts = append(opts, gui.WithOffset(gui.NewOffset(c.Offset[0], c.Offset[1], c.Offset[2], c.Offset[3])))
	case c.Margins != nil:
		opts = append(opts, gui.WithMargins(gui.NewMargins(c.Margins[0], c.Margins[1], c.Margins[2], c.Margins[3])))
	}

	painter, err := b.painter(c)
	if err != nil {
		if c.Name != "" {
			return fmt.Errorf("control %q: %w", c.Name, err)
		}
		return err
	}
	opts = append(opts,
		gui.WithControl(gui.WithName(c.Name), gui.WithOnPaint(painter)),
		gui.WithParent(parent),
	)

	a := gui.NewAnchored(opts...)
	if c.Name != "" {
		b.named[c.Name] = a
	}
	for _, child := range c.Controls {
		if err := b.build(child, a); err != nil {
			return err
		}
	}
	return nil
}

// painter returns the Painting handler that draws c's decorations in order:
// fill, image, border, text.
func (b builder) painter(c Control) (func(gui.PaintEvent), error) {
	var (
		fill, textBrush *paint.SolidBrush
		border          *paint.Pen
		img             *paint.Image
	)
	if c.Fill != "" {
		col, _ := paint.ParseColor(c.Fill)
		fill = paint.NewSolidBrush(col)
	}
	if c.Border != "" {
		col, _ := paint.ParseColor(c.Border)
		width := c.BorderWidth
		if width == 0 {
			width = 1
		}
		border = paint.NewPen(paint.NewSolidBrush(col), width)
	}
	if c.Image != "" {
		path := c.Image
		if !filepath.IsAbs(path) && b.dir != "" {
			path = filepath.Join(b.dir, path)
		}
		var err error
		if img, err = paint.LoadImage(path); err != nil {
			return nil, err
		}
	}
	if c.Text != "" {
		var col color.Color = color.Black
		if c.TextColor != "" {
			col, _ = paint.ParseColor(c.TextColor)
		}
		textBrush = paint.NewSolidBrush(col)
	}
	ellipse := c.Shape == "ellipse"
	font := b.font

	return func(e gui.PaintEvent) {
		p, r := e.Paint, e.Rect()
		if fill != nil {
			if ellipse {
				e.Report(p.FillEllipse(fill, r))
			} else {
				e.Report(p.FillRect(fill, r))
			}
		}
		if img != nil {
			e.Report(p.DrawImage(img, r))
		}
		if border != nil {
			inset := border.Width() / 2
			br := paint.R(r.From.X+inset, r.From.Y+inset, r.To.X-inset, r.To.Y-inset)
			if ellipse {
				e.Report(p.DrawEllipse(border, br))
			} else {
				e.Report(p.DrawRect(border, br))
			}
		}
		if textBrush != nil {
			e.Report(p.Write(c.Text, font, textBrush, alignText(p.MeasureWrite(c.Text, font), r, c.TextAlign)))
		}
	}, nil
}

const textPadding = 4

// alignText places a measured text box inside r, vertically centered.
func alignText(size, r paint.Rect, align string) paint.Rect {
	w, h := size.Width(), size.Height()
	y := r.From.Y + (r.Height()-h)/2
	var x float64
	switch align {
	case "left":
		x = r.From.X + textPadding
	case "right":
		x = r.To.X - textPadding - w
	default:
		x = r.From.X + (r.Width()-w)/2
	}
	return paint.R(x, y, x+w, y+h)
}
