package geom

import "testing"

func TestVector_String(t *testing.T) {
	type tc struct {
		v        interface{ String() string }
		expected string
	}

	tests := map[string]tc{
		"vector2 int":     {v: Vector2[int]{X: 1, Y: -2}, expected: "1, -2"},
		"vector2 float":   {v: Vector2[float64]{X: 0.5, Y: 1}, expected: "0.5, 1"},
		"vector3":         {v: Vector3[int]{X: 1, Y: 2, Z: 3}, expected: "1, 2, 3"},
		"vector4":         {v: Vector4[float32]{X: 1, Y: 2, Z: 3, W: 0.25}, expected: "1, 2, 3, 0.25"},
		"bounds":          {v: NewBounds(0, 0, 10, 20), expected: "0, 0 -> 10, 20"},
		"fraction bounds": {v: NewBounds(0.0, 0.5, 1.0, 1.0), expected: "0, 0.5 -> 1, 1"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestVector2_Arithmetic(t *testing.T) {
	a := Vec2(3, 4)
	b := Vec2(1, 2)

	if got := a.Add(b); got != Vec2(4, 6) {
		t.Errorf("Add() = %v, want 4, 6", got)
	}
	if got := a.Sub(b); got != Vec2(2, 2) {
		t.Errorf("Sub() = %v, want 2, 2", got)
	}
	if got := a.Scale(2); got != Vec2(6, 8) {
		t.Errorf("Scale() = %v, want 6, 8", got)
	}
}

func TestVector3_Vector4_Arithmetic(t *testing.T) {
	v3 := Vector3[int]{X: 1, Y: 2, Z: 3}
	if got := v3.Add(v3).Sub(v3); got != v3 {
		t.Errorf("Vector3 Add/Sub = %v, want %v", got, v3)
	}

	v4 := Vector4[int]{X: 1, Y: 2, Z: 3, W: 4}
	want := Vector4[int]{X: 2, Y: 4, Z: 6, W: 8}
	if got := v4.Add(v4); got != want {
		t.Errorf("Vector4 Add = %v, want %v", got, want)
	}
	if got := want.Sub(v4); got != v4 {
		t.Errorf("Vector4 Sub = %v, want %v", got, v4)
	}
}
