package gui

import "github.com/grindlemire/go-gui/internal/geom"

// Re-export geometry types so callers don't import internal/geom.

// Bounds is an axis-aligned rectangle in absolute pixel coordinates.
type Bounds = geom.Bounds[int]

// Point is a pixel coordinate.
type Point = geom.Vector2[int]

// AnchorRect holds fractional (left, top, right, bottom) positions within a
// parent's bounds. Components are not clamped and may be inverted.
type AnchorRect = geom.Bounds[float64]

// OffsetRect holds pixel deltas added to the anchor-derived edges.
type OffsetRect = geom.Bounds[int]

// Margins holds inward distances from each anchor edge.
// Offset and margins relate as offset = (left, top, -right, -bottom).
type Margins = geom.Bounds[int]

// NewBounds returns the Bounds with corners (x0, y0) and (x1, y1).
func NewBounds(x0, y0, x1, y1 int) Bounds {
	return geom.NewBounds(x0, y0, x1, y1)
}

// NewAnchor returns an AnchorRect.
func NewAnchor(left, top, right, bottom float64) AnchorRect {
	return geom.NewBounds(left, top, right, bottom)
}

// NewOffset returns an OffsetRect.
func NewOffset(left, top, right, bottom int) OffsetRect {
	return geom.NewBounds(left, top, right, bottom)
}

// NewMargins returns Margins.
func NewMargins(left, top, right, bottom int) Margins {
	return geom.NewBounds(left, top, right, bottom)
}
