package layoutfile

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid layout")

// File is a decoded layout file.
type File struct {
	Window   Window    `toml:"window"`
	Controls []Control `toml:"control"`

	// dir resolves relative image paths. Empty means the working directory.
	dir string
}

// Window describes the root window.
type Window struct {
	Title      string  `toml:"title"`
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Background string  `toml:"background,omitempty"`
	Font       string  `toml:"font,omitempty"`
	FontSize   float64 `toml:"font_size,omitempty"`
}

// Control describes one anchored control and its children.
type Control struct {
	Name        string    `toml:"name,omitempty"`
	Preset      string    `toml:"preset,omitempty"`
	Anchor      []float64 `toml:"anchor,omitempty"`
	Offset      []int     `toml:"offset,omitempty"`
	Margins     []int     `toml:"margins,omitempty"`
	Shape       string    `toml:"shape,omitempty"`
	Fill        string    `toml:"fill,omitempty"`
	Border      string    `toml:"border,omitempty"`
	BorderWidth float64   `toml:"border_width,omitempty"`
	Image       string    `toml:"image,omitempty"`
	Text        string    `toml:"text,omitempty"`
	TextColor   string    `toml:"text_color,omitempty"`
	TextAlign   string    `toml:"text_align,omitempty"`
	Controls    []Control `toml:"control,omitempty"`
}

// Parse decodes a layout from r. Unknown keys are an error.
func Parse(r io.Reader) (*File, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load decodes the layout file at path. Image paths in it are resolved
// relative to the file's directory.
func Load(path string) (*File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("decode layout %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.dir = filepath.Dir(path)
	return &f, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(names, ", "))
}

// Encode writes f as TOML.
func (f *File) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(f)
}

// SetDir sets the directory relative image paths are resolved against.
func (f *File) SetDir(dir string) {
	f.dir = dir
}

// Example returns a small layout showing the common anchoring patterns.
func Example() *File {
	return &File{
		Window: Window{Title: "example", Width: 400, Height: 300, Background: "#202428", Font: "go", FontSize: 12},
		Controls: []Control{
			{
				Name: "toolbar", Preset: "top_wide", Offset: []int{0, 0, 0, 32},
				Fill: "#3050a0", Text: "Toolbar", TextColor: "white", TextAlign: "left",
				Controls: []Control{
					{Name: "close", Preset: "top_right", Offset: []int{-28, 4, -4, 28}, Fill: "#c04040", Shape: "ellipse"},
				},
			},
			{
				Name: "content", Preset: "fill", Margins: []int{8, 40, 8, 32},
				Fill: "#f0f0f0", Border: "#808080", BorderWidth: 1, Text: "Content",
			},
			{
				Name: "status", Preset: "bottom_wide", Offset: []int{0, -24, 0, 0},
				Fill: "#303030", Text: "Ready", TextColor: "#c0c0c0", TextAlign: "right",
			},
		},
	}
}
