package material

import (
	"testing"

	"github.com/tmurray/go-whitted-raytracer/pkg/core"
)

func TestFlatColor_ColorAt_IgnoresPosition(t *testing.T) {
	m := NewFlatColor(core.NewColor(0.8, 0.2, 0.4), 32, 0.5, NotRefractive)

	points := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(100, -50, 3),
		core.NewVec3(-7.5, 0.1, 9999),
	}

	for _, p := range points {
		color := m.ColorAt(p)
		if color != m.Color {
			t.Errorf("Expected %v at %v, got %v", m.Color, p, color)
		}
	}

	if m.Shininess() != 32 {
		t.Errorf("Expected shininess 32, got %f", m.Shininess())
	}
	if m.Reflectivity() != 0.5 {
		t.Errorf("Expected reflectivity 0.5, got %f", m.Reflectivity())
	}
	if m.RefractiveIndex() != NotRefractive {
		t.Errorf("Expected NotRefractive, got %f", m.RefractiveIndex())
	}
}

func TestCheckerboard_ColorAt_AlternatesByScale(t *testing.T) {
	color1 := core.NewColor(1, 1, 1)
	color2 := core.NewColor(0, 0, 0)
	m := NewCheckerboard(color1, color2, 2.0, NotShiny, NotReflective)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Color
	}{
		{"origin cell", core.NewVec3(0.5, 0.5, 0.5), color1},
		{"one scale unit along x", core.NewVec3(2.5, 0.5, 0.5), color2},
		{"one scale unit along y", core.NewVec3(0.5, 2.5, 0.5), color2},
		{"one scale unit along z", core.NewVec3(0.5, 0.5, 2.5), color2},
		{"two scale units along x", core.NewVec3(4.5, 0.5, 0.5), color1},
		{"diagonal neighbor matches", core.NewVec3(2.5, 2.5, 0.5), color1},
		{"negative cell alternates", core.NewVec3(-0.5, 0.5, 0.5), color2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color := m.ColorAt(tt.point)
			if color != tt.expected {
				t.Errorf("Expected %v at %v, got %v", tt.expected, tt.point, color)
			}
		})
	}
}

func TestCheckerboard_IsOpaque(t *testing.T) {
	m := NewCheckerboard(core.NewColor(1, 0, 0), core.NewColor(0, 0, 1), 1.0, 8, 0.25)

	if m.RefractiveIndex() != NotRefractive {
		t.Errorf("Expected NotRefractive, got %f", m.RefractiveIndex())
	}
}
