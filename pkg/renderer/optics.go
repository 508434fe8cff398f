package renderer

import (
	"math"

	"github.com/tmurray/go-whitted-raytracer/pkg/core"
)

// Reflect mirrors a vector about a surface normal: 2(v·n)n - v.
// Both the input and the normal are expected to be unit length.
func Reflect(v, normal core.Vec3) core.Vec3 {
	return normal.Multiply(2 * v.Dot(normal)).Subtract(v)
}

// Reflectance computes the exact (unpolarized) Fresnel reflectance for
// light crossing from refractive index n1 into n2. Returns 1.0 under
// total internal reflection. The result is always within [0, 1].
func Reflectance(normal, incident core.Vec3, n1, n2 float64) float64 {
	n := n1 / n2
	cosI := -normal.Dot(incident)
	sinT2 := n * n * (1.0 - cosI*cosI)

	if sinT2 > 1.0 {
		// Total internal reflection
		return 1.0
	}

	cosT := math.Sqrt(1.0 - sinT2)
	rPerp := (n1*cosI - n2*cosT) / (n1*cosI + n2*cosT)
	rPar := (n2*cosI - n1*cosT) / (n2*cosI + n1*cosT)
	return (rPerp*rPerp + rPar*rPar) / 2.0
}

// Refract computes the transmitted direction for light crossing from
// refractive index n1 into n2 via Snell's law. ok is false under total
// internal reflection, in which case no transmitted ray exists and the
// caller must treat the boundary as fully reflective.
func Refract(normal, incident core.Vec3, n1, n2 float64) (refracted core.Vec3, ok bool) {
	n := n1 / n2
	cosI := -normal.Dot(incident)
	sinT2 := n * n * (1.0 - cosI*cosI)

	if sinT2 > 1.0 {
		return core.Vec3{}, false
	}

	cosT := math.Sqrt(1.0 - sinT2)
	return incident.Multiply(n).Add(normal.Multiply(n*cosI - cosT)), true
}
