// Package geom implements the value types shared by the control tree and the
// paint backend: generic vectors and axis-aligned bounds.
//
// Bounds are stored as two corners (From, To) rather than origin and size so
// that fractional anchor rectangles and pixel rectangles share one shape.
// Types are re-exported through the root gui package for public consumption.
package geom
