package material

import (
	"github.com/tmurray/go-whitted-raytracer/pkg/core"
)

// Sentinel parameter values that disable the corresponding lighting
// contribution in the shading pipeline.
const (
	NotShiny      = 0.0
	NotReflective = 0.0
	NotRefractive = 0.0
)

// AirRefractiveIndex is the refractive index of the default medium
// that primary rays travel through.
const AirRefractiveIndex = 1.0

// Material describes the shading parameters of a surface
type Material interface {
	// ColorAt returns the surface color at a world-space point
	ColorAt(point core.Vec3) core.Color

	// Shininess returns the Phong specular exponent, or NotShiny
	Shininess() float64

	// Reflectivity returns the reflected fraction of incident light, or NotReflective
	Reflectivity() float64

	// RefractiveIndex returns the material's refractive index, or NotRefractive
	RefractiveIndex() float64
}
