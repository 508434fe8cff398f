package material

import (
	"math"

	"github.com/tmurray/go-whitted-raytracer/pkg/core"
)

// Checkerboard is a material alternating between two colors in a
// world-space checker pattern quantized by Scale.
type Checkerboard struct {
	Color1  core.Color
	Color2  core.Color
	Scale   float64
	Shine   float64
	Reflect float64
}

// NewCheckerboard creates a new checkerboard material
func NewCheckerboard(color1, color2 core.Color, scale, shininess, reflectivity float64) *Checkerboard {
	return &Checkerboard{
		Color1:  color1,
		Color2:  color2,
		Scale:   scale,
		Shine:   shininess,
		Reflect: reflectivity,
	}
}

// ColorAt quantizes the world-space point into Scale-sized cells and
// alternates colors on cell parity.
func (m *Checkerboard) ColorAt(point core.Vec3) core.Color {
	sum := int(math.Floor(point.X/m.Scale)) +
		int(math.Floor(point.Y/m.Scale)) +
		int(math.Floor(point.Z/m.Scale))

	if sum%2 == 0 {
		return m.Color1
	}
	return m.Color2
}

// Shininess returns the Phong specular exponent
func (m *Checkerboard) Shininess() float64 {
	return m.Shine
}

// Reflectivity returns the reflected fraction of incident light
func (m *Checkerboard) Reflectivity() float64 {
	return m.Reflect
}

// RefractiveIndex returns NotRefractive; checkerboards are opaque
func (m *Checkerboard) RefractiveIndex() float64 {
	return NotRefractive
}
