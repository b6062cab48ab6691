package paint

import "github.com/grindlemire/go-gui/internal/geom"

// Rect is a rectangle in pixel space with fractional coordinates.
type Rect = geom.Bounds[float64]

// Point is a fractional pixel coordinate.
type Point = geom.Vector2[float64]

// R returns the Rect with corners (x0, y0) and (x1, y1).
func R(x0, y0, x1, y1 float64) Rect {
	return geom.NewBounds(x0, y0, x1, y1)
}

// Pt returns the Point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// RectFromInt converts integer control bounds to a Rect.
func RectFromInt(b geom.Bounds[int]) Rect {
	return geom.Convert[float64](b)
}
