package core

import (
	"math"
	"testing"
)

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		vector Vec3
	}{
		{"axis vector", NewVec3(3, 0, 0)},
		{"arbitrary vector", NewVec3(1, -2, 3)},
		{"small vector", NewVec3(1e-3, 2e-3, -1e-3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Normalize()

			const tolerance = 1e-12
			if math.Abs(result.Length()-1.0) > tolerance {
				t.Errorf("Expected unit length, got %g", result.Length())
			}

			// Direction is preserved
			if result.Dot(tt.vector) <= 0 {
				t.Errorf("Normalized vector %v does not point along %v", result, tt.vector)
			}
		})
	}
}

func TestVec3_Normalize_Zero(t *testing.T) {
	result := NewVec3(0, 0, 0).Normalize()
	if result != (Vec3{0, 0, 0}) {
		t.Errorf("Expected zero vector, got %v", result)
	}
}

func TestVec3_Lerp(t *testing.T) {
	white := NewVec3(1, 1, 1)
	skyBlue := NewVec3(0.5, 0.7, 1.0)

	tests := []struct {
		name     string
		t        float64
		expected Vec3
	}{
		{"start", 0.0, white},
		{"end", 1.0, skyBlue},
		{"midpoint", 0.5, NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := white.Lerp(skyBlue, tt.t)

			if result.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	v := NewVec3(1, 2, 3)

	if got := v.Dot(v); math.Abs(got-14) > 1e-12 {
		t.Errorf("Expected v.Dot(v)=14, got %g", got)
	}
	if got := v.LengthSquared(); math.Abs(got-14) > 1e-12 {
		t.Errorf("Expected LengthSquared=14, got %g", got)
	}
	if got := v.Length(); math.Abs(got-math.Sqrt(14)) > 1e-12 {
		t.Errorf("Expected Length=sqrt(14), got %g", got)
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5)
	result := v.Clamp(0.0, 1.0)
	expected := NewVec3(0.0, 0.5, 1.0)

	if result != expected {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}
