package core

import (
	"math"
	"testing"
)

func TestVec3_Algebra(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const tolerance = 1e-9
			if tt.result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if dot := a.Dot(b); dot != 12 {
		t.Errorf("Expected dot product 12, got %f", dot)
	}

	if length := NewVec3(3, 4, 0).Length(); math.Abs(length-5) > 1e-9 {
		t.Errorf("Expected length 5, got %f", length)
	}

	if lsq := a.LengthSquared(); lsq != 14 {
		t.Errorf("Expected squared length 14, got %f", lsq)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	expected := NewVec3(0.6, 0.8, 0)

	const tolerance = 1e-9
	if v.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected %v, got %v", expected, v)
	}

	if length := v.Length(); math.Abs(length-1) > tolerance {
		t.Errorf("Expected unit length, got %f", length)
	}
}

func TestVec3_Normalize_ZeroVector(t *testing.T) {
	v := NewVec3(0, 0, 0).Normalize()

	if v.X != 0 || v.Y != 0 || v.Z != 0 {
		t.Errorf("Expected zero vector, got %v", v)
	}
	if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z) {
		t.Errorf("Zero-length normalization produced NaN: %v", v)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 0, -1), 10, 1.0)
	point := ray.At(2.5)
	expected := NewVec3(1, 0, -2.5)

	if point.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, point)
	}
}
