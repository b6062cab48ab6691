package paint

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/grindlemire/go-gui/internal/debug"
)

// FontStyle is a bit set of font style flags.
type FontStyle uint8

// Normal is the plain style.
const Normal FontStyle = 0

const (
	// Bold selects the bold variant of the family.
	Bold FontStyle = 1 << iota
	// Italic selects the italic variant of the family.
	Italic
	// Underline draws a line below the baseline when writing.
	Underline
	// Strikeout draws a line through the middle of lowercase glyphs when writing.
	Strikeout
)

// Built-in family names. Any other family is treated as a font file path.
const (
	FamilyGo     = "go"
	FamilyGoMono = "gomono"
)

func (s FontStyle) String() string {
	if s == Normal {
		return "normal"
	}
	var parts []string
	for _, f := range []struct {
		flag FontStyle
		name string
	}{{Bold, "bold"}, {Italic, "italic"}, {Underline, "underline"}, {Strikeout, "strikeout"}} {
		if s&f.flag != 0 {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}

// Font is a face of a font family at a given point size.
type Font struct {
	family string
	size   float64
	style  FontStyle
	face   text.Face
}

// sources caches parsed font sources by family and variant. FontSource is
// heavyweight and safe for concurrent use, so one is shared per key.
var (
	sourcesMu sync.Mutex
	sources   = map[string]*text.FontSource{}
)

// NewFont creates a font of the given family, size in points, and style.
// An empty family means FamilyGo.
func NewFont(family string, size float64, style FontStyle) (*Font, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %v", size)
	}
	if family == "" {
		family = FamilyGo
	}

	src, err := loadSource(family, style&(Bold|Italic))
	if err != nil {
		return nil, err
	}

	return &Font{
		family: family,
		size:   size,
		style:  style,
		face:   src.Face(size),
	}, nil
}

func loadSource(family string, variant FontStyle) (*text.FontSource, error) {
	key := family + "/" + variant.String()

	sourcesMu.Lock()
	defer sourcesMu.Unlock()

	if src, ok := sources[key]; ok {
		return src, nil
	}

	var (
		src *text.FontSource
		err error
	)
	switch family {
	case FamilyGo, FamilyGoMono:
		src, err = text.NewFontSource(builtinTTF(family, variant))
	default:
		// font files carry their own weight; variant flags only affect decorations
		src, err = text.NewFontSourceFromFile(family)
	}
	if err != nil {
		return nil, fmt.Errorf("loading font %q: %w", family, err)
	}

	debug.Log("paint: loaded font source %s", key)
	sources[key] = src
	return src, nil
}

func builtinTTF(family string, variant FontStyle) []byte {
	mono := family == FamilyGoMono
	switch variant {
	case Bold:
		if mono {
			return gomonobold.TTF
		}
		return gobold.TTF
	case Italic:
		if mono {
			return gomonoitalic.TTF
		}
		return goitalic.TTF
	case Bold | Italic:
		if mono {
			return gomonobolditalic.TTF
		}
		return gobolditalic.TTF
	default:
		if mono {
			return gomono.TTF
		}
		return goregular.TTF
	}
}

// IsValid reports whether the font has a usable face.
func (f *Font) IsValid() bool {
	return f != nil && f.face != nil
}

// Family returns the family name or font file path.
func (f *Font) Family() string {
	return f.family
}

// Size returns the size in points.
func (f *Font) Size() float64 {
	return f.size
}

// Style returns the style flags the font was created with.
func (f *Font) Style() FontStyle {
	return f.style
}

// LineHeight returns the distance between consecutive baselines.
func (f *Font) LineHeight() float64 {
	return f.face.Metrics().LineHeight()
}

// Ascent returns the distance from the top of a line to its baseline.
func (f *Font) Ascent() float64 {
	return f.face.Metrics().Ascent
}
