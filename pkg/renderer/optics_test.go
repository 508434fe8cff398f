package renderer

import (
	"math"
	"testing"

	"github.com/tmurray/go-whitted-raytracer/pkg/core"
)

func TestReflect(t *testing.T) {
	tests := []struct {
		name     string
		v        core.Vec3
		normal   core.Vec3
		expected core.Vec3
	}{
		{
			name:     "head on",
			v:        core.NewVec3(0, 1, 0),
			normal:   core.NewVec3(0, 1, 0),
			expected: core.NewVec3(0, 1, 0),
		},
		{
			name:     "45 degrees",
			v:        core.NewVec3(1, 1, 0).Normalize(),
			normal:   core.NewVec3(0, 1, 0),
			expected: core.NewVec3(-1, 1, 0).Normalize(),
		},
		{
			name:     "grazing",
			v:        core.NewVec3(1, 0, 0),
			normal:   core.NewVec3(0, 1, 0),
			expected: core.NewVec3(-1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Reflect(tt.v, tt.normal)
			if result.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestReflectance_Bounds(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)

	// Sweep incidence angles and index pairs; reflectance must stay in [0, 1]
	indexPairs := [][2]float64{{1.0, 1.5}, {1.5, 1.0}, {1.0, 2.4}, {1.33, 1.0}}
	for _, pair := range indexPairs {
		for angle := 0.0; angle < math.Pi/2; angle += 0.05 {
			incident := core.NewVec3(math.Sin(angle), -math.Cos(angle), 0)
			r := Reflectance(normal, incident, pair[0], pair[1])

			if r < 0 || r > 1 {
				t.Fatalf("Reflectance %f out of [0, 1] for n1=%f n2=%f angle=%f",
					r, pair[0], pair[1], angle)
			}
		}
	}
}

func TestReflectance_NormalIncidence(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)
	incident := core.NewVec3(0, -1, 0)

	// At normal incidence reflectance is ((n1-n2)/(n1+n2))²
	r := Reflectance(normal, incident, 1.0, 1.5)
	expected := math.Pow((1.0-1.5)/(1.0+1.5), 2)

	if math.Abs(r-expected) > 1e-9 {
		t.Errorf("Expected reflectance %f, got %f", expected, r)
	}
}

func TestReflectance_TotalInternalReflection(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)

	// Leaving glass at 60 degrees, well past the ~41.8 degree critical angle
	angle := math.Pi / 3
	incident := core.NewVec3(math.Sin(angle), -math.Cos(angle), 0)

	r := Reflectance(normal, incident, 1.5, 1.0)
	if r != 1.0 {
		t.Errorf("Expected exactly 1.0 under total internal reflection, got %f", r)
	}
}

func TestRefract_NormalIncidence(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)
	incident := core.NewVec3(0, -1, 0)

	refracted, ok := Refract(normal, incident, 1.0, 1.5)
	if !ok {
		t.Fatal("Expected refraction at normal incidence")
	}
	if refracted.Subtract(incident).Length() > 1e-9 {
		t.Errorf("Expected straight-through direction %v, got %v", incident, refracted)
	}
}

func TestRefract_SnellsLaw(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)

	angle := math.Pi / 4
	incident := core.NewVec3(math.Sin(angle), -math.Cos(angle), 0)

	refracted, ok := Refract(normal, incident, 1.0, 1.5)
	if !ok {
		t.Fatal("Expected refraction entering glass at 45 degrees")
	}

	if math.Abs(refracted.Length()-1) > 1e-9 {
		t.Errorf("Expected unit refracted direction, got length %f", refracted.Length())
	}

	// sin(T) = (n1/n2) * sin(I)
	expectedSinT := math.Sin(angle) / 1.5
	sinT := math.Abs(refracted.X)
	if math.Abs(sinT-expectedSinT) > 1e-9 {
		t.Errorf("Expected sin(T)=%f, got %f", expectedSinT, sinT)
	}
	if refracted.Y >= 0 {
		t.Errorf("Expected refracted ray to continue into the surface, got %v", refracted)
	}
}

func TestRefract_TotalInternalReflection(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)

	angle := math.Pi / 3
	incident := core.NewVec3(math.Sin(angle), -math.Cos(angle), 0)

	if _, ok := Refract(normal, incident, 1.5, 1.0); ok {
		t.Error("Expected no transmitted ray under total internal reflection")
	}
}
