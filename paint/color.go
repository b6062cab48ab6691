package paint

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Transparent is the fully transparent color, accepted by ParseColor as
// "transparent".
var Transparent = color.NRGBA{}

// ParseColor parses an SVG color name or a hex string.
// Supported hex formats: "#RGB", "#RGBA", "#RRGGBB" and "#RRGGBBAA".
func ParseColor(s string) (color.NRGBA, error) {
	name := strings.ToLower(s)
	if name == "transparent" {
		return Transparent, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
	}
	hex := s[1:]

	var parts []uint8
	switch len(hex) {
	case 3, 4:
		// #RGB -> expand each nibble to a byte: 0xF -> 0xFF
		for i := 0; i < len(hex); i++ {
			n, err := parseHexNibble(hex[i])
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
			}
			parts = append(parts, n<<4|n)
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			b, err := parseHexByte(hex[i : i+2])
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
			}
			parts = append(parts, b)
		}
	default:
		return color.NRGBA{}, fmt.Errorf("color %q: expected #RGB, #RGBA, #RRGGBB or #RRGGBBAA", s)
	}
	if len(parts) == 3 {
		parts = append(parts, 255)
	}
	return color.NRGBA{R: parts[0], G: parts[1], B: parts[2], A: parts[3]}, nil
}

// parseHexByte parses a two-character hex string into a byte.
func parseHexByte(s string) (uint8, error) {
	high, err := parseHexNibble(s[0])
	if err != nil {
		return 0, err
	}
	low, err := parseHexNibble(s[1])
	if err != nil {
		return 0, err
	}
	return high<<4 | low, nil
}

// parseHexNibble parses a single hex character into a nibble (0-15).
func parseHexNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, errors.New("invalid hex character")
	}
}
