package material

import (
	"github.com/tmurray/go-whitted-raytracer/pkg/core"
)

// FlatColor is a material with a single constant surface color
type FlatColor struct {
	Color   core.Color
	Shine   float64
	Reflect float64
	Refract float64
}

// NewFlatColor creates a new flat-color material
func NewFlatColor(color core.Color, shininess, reflectivity, refractiveIndex float64) *FlatColor {
	return &FlatColor{
		Color:   color,
		Shine:   shininess,
		Reflect: reflectivity,
		Refract: refractiveIndex,
	}
}

// ColorAt returns the constant surface color regardless of position
func (m *FlatColor) ColorAt(point core.Vec3) core.Color {
	return m.Color
}

// Shininess returns the Phong specular exponent
func (m *FlatColor) Shininess() float64 {
	return m.Shine
}

// Reflectivity returns the reflected fraction of incident light
func (m *FlatColor) Reflectivity() float64 {
	return m.Reflect
}

// RefractiveIndex returns the material's refractive index
func (m *FlatColor) RefractiveIndex() float64 {
	return m.Refract
}
