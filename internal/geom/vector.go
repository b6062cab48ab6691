package geom

import "fmt"

// Number is the set of component types vectors and bounds are generic over.
// Integers are used for pixel space, floats for fractional space.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Vector2 is an (X, Y) pair.
type Vector2[T Number] struct {
	X, Y T
}

// Vec2 is shorthand for Vector2{X: x, Y: y}.
func Vec2[T Number](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

// Add returns a new Vector2 offset by other.
func (v Vector2[T]) Add(other Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns a new Vector2 with other subtracted.
func (v Vector2[T]) Sub(other Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale multiplies both components by s.
func (v Vector2[T]) Scale(s T) Vector2[T] {
	return Vector2[T]{X: v.X * s, Y: v.Y * s}
}

// In reports whether the point lies inside b (half-open on the To edges).
func (v Vector2[T]) In(b Bounds[T]) bool {
	return b.Contains(v)
}

func (v Vector2[T]) String() string {
	return fmt.Sprintf("%v, %v", v.X, v.Y)
}

// Vector3 is an (X, Y, Z) triple.
type Vector3[T Number] struct {
	X, Y, Z T
}

// Add returns a new Vector3 offset by other.
func (v Vector3[T]) Add(other Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns a new Vector3 with other subtracted.
func (v Vector3[T]) Sub(other Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

func (v Vector3[T]) String() string {
	return fmt.Sprintf("%v, %v, %v", v.X, v.Y, v.Z)
}

// Vector4 is an (X, Y, Z, W) quadruple.
type Vector4[T Number] struct {
	X, Y, Z, W T
}

// Add returns a new Vector4 offset by other.
func (v Vector4[T]) Add(other Vector4[T]) Vector4[T] {
	return Vector4[T]{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z, W: v.W + other.W}
}

// Sub returns a new Vector4 with other subtracted.
func (v Vector4[T]) Sub(other Vector4[T]) Vector4[T] {
	return Vector4[T]{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z, W: v.W - other.W}
}

func (v Vector4[T]) String() string {
	return fmt.Sprintf("%v, %v, %v, %v", v.X, v.Y, v.Z, v.W)
}
