package geom

import (
	"fmt"
	"math"
)

// Bounds is an axis-aligned rectangle described by its From (top-left) and
// To (bottom-right) corners. Nothing forces From <= To; inverted bounds are
// valid values and simply report a negative Width or Height.
type Bounds[T Number] struct {
	From, To Vector2[T]
}

// NewBounds creates Bounds from the corner coordinates (x0, y0) and (x1, y1).
func NewBounds[T Number](x0, y0, x1, y1 T) Bounds[T] {
	return Bounds[T]{From: Vector2[T]{X: x0, Y: y0}, To: Vector2[T]{X: x1, Y: y1}}
}

// Left returns From.X.
func (b Bounds[T]) Left() T { return b.From.X }

// Top returns From.Y.
func (b Bounds[T]) Top() T { return b.From.Y }

// Right returns To.X.
func (b Bounds[T]) Right() T { return b.To.X }

// Bottom returns To.Y.
func (b Bounds[T]) Bottom() T { return b.To.Y }

// Width returns To.X - From.X, which is negative for inverted bounds.
func (b Bounds[T]) Width() T {
	return b.To.X - b.From.X
}

// Height returns To.Y - From.Y, which is negative for inverted bounds.
func (b Bounds[T]) Height() T {
	return b.To.Y - b.From.Y
}

// Size returns (Width, Height) as a vector.
func (b Bounds[T]) Size() Vector2[T] {
	return b.To.Sub(b.From)
}

// IsEmpty returns true if the bounds have zero or negative area.
func (b Bounds[T]) IsEmpty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// Contains returns true if p is inside the bounds.
// Points on the From edges are inside; points on the To edges are outside.
func (b Bounds[T]) Contains(p Vector2[T]) bool {
	return p.X >= b.From.X && p.X < b.To.X && p.Y >= b.From.Y && p.Y < b.To.Y
}

// Translate returns the bounds moved by d.
func (b Bounds[T]) Translate(d Vector2[T]) Bounds[T] {
	return Bounds[T]{From: b.From.Add(d), To: b.To.Add(d)}
}

// Canon returns the bounds with From and To swapped per axis where needed so
// that From <= To.
func (b Bounds[T]) Canon() Bounds[T] {
	if b.From.X > b.To.X {
		b.From.X, b.To.X = b.To.X, b.From.X
	}
	if b.From.Y > b.To.Y {
		b.From.Y, b.To.Y = b.To.Y, b.From.Y
	}
	return b
}

// Intersect returns the overlap of two bounds.
// If they don't overlap, returns the zero Bounds.
func (b Bounds[T]) Intersect(other Bounds[T]) Bounds[T] {
	r := Bounds[T]{
		From: Vector2[T]{X: max(b.From.X, other.From.X), Y: max(b.From.Y, other.From.Y)},
		To:   Vector2[T]{X: min(b.To.X, other.To.X), Y: min(b.To.Y, other.To.Y)},
	}
	if r.IsEmpty() {
		return Bounds[T]{}
	}
	return r
}

// Union returns the smallest bounds that contain both.
// If either is empty, returns the other.
func (b Bounds[T]) Union(other Bounds[T]) Bounds[T] {
	if b.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return b
	}
	return Bounds[T]{
		From: Vector2[T]{X: min(b.From.X, other.From.X), Y: min(b.From.Y, other.From.Y)},
		To:   Vector2[T]{X: max(b.To.X, other.To.X), Y: max(b.To.Y, other.To.Y)},
	}
}

func (b Bounds[T]) String() string {
	return fmt.Sprintf("%v -> %v", b.From, b.To)
}

// Convert changes the component type of b with plain Go conversion, which
// truncates toward zero when going from float to integer.
func Convert[U, T Number](b Bounds[T]) Bounds[U] {
	return NewBounds(U(b.From.X), U(b.From.Y), U(b.To.X), U(b.To.Y))
}

// Round converts fractional bounds to pixel bounds, rounding each coordinate
// half away from zero.
func Round(b Bounds[float64]) Bounds[int] {
	return NewBounds(
		int(math.Round(b.From.X)),
		int(math.Round(b.From.Y)),
		int(math.Round(b.To.X)),
		int(math.Round(b.To.Y)),
	)
}
