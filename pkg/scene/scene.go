package scene

import (
	"fmt"
	"unicode"

	"github.com/tmurray/go-whitted-raytracer/pkg/core"
	"github.com/tmurray/go-whitted-raytracer/pkg/geometry"
	"github.com/tmurray/go-whitted-raytracer/pkg/lights"
	"github.com/tmurray/go-whitted-raytracer/pkg/material"
)

// Scene owns everything a single render reads: the shapes, the lights,
// the named-material registry and the camera/render directives parsed
// from a scene description.
type Scene struct {
	Shapes []geometry.Shape
	Lights []*lights.Light

	CameraPosition core.Vec3
	CameraLookAt   core.Vec3
	CameraUp       core.Vec3

	Dispersion     float64
	MaxReflections int
	ImageScale     float64

	materials map[string]material.Material
}

// NewScene creates an empty scene with default camera and render settings
func NewScene() *Scene {
	return &Scene{
		CameraPosition: core.NewVec3(0, 0, 100),
		CameraLookAt:   core.NewVec3(0, 0, 0),
		CameraUp:       core.NewVec3(0, 1, 0),
		Dispersion:     5.0,
		MaxReflections: 10,
		ImageScale:     1.0,
		materials:      make(map[string]material.Material),
	}
}

// AddShape appends a shape to the scene
func (s *Scene) AddShape(shape geometry.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// AddLight appends a light to the scene
func (s *Scene) AddLight(light *lights.Light) {
	s.Lights = append(s.Lights, light)
}

// AddMaterial registers a named material for reuse by later shapes.
// Names must be lowercase-only and unique.
func (s *Scene) AddMaterial(name string, mat material.Material) error {
	for _, r := range name {
		if unicode.IsUpper(r) {
			return fmt.Errorf("invalid material name: %s", name)
		}
	}

	if _, exists := s.materials[name]; exists {
		return fmt.Errorf("duplicate material name: %s", name)
	}

	s.materials[name] = mat
	return nil
}

// Material looks up a previously registered material by name
func (s *Scene) Material(name string) (material.Material, bool) {
	mat, ok := s.materials[name]
	return mat, ok
}
