package geometry

import (
	"math"

	"github.com/tmurray/go-whitted-raytracer/pkg/core"
	"github.com/tmurray/go-whitted-raytracer/pkg/material"
)

// hitEpsilon rejects intersections at the ray origin so shadow and
// reflection rays do not re-hit the surface they start on.
const hitEpsilon = 1e-6

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Intersect tests if a ray intersects the sphere, returning the
// nearest intersection with positive distance.
func (s *Sphere) Intersect(ray core.Ray) (Intersection, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return Intersection{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first, ignoring hits behind the origin
	root := (-halfB - sqrtD) / a
	if root < hitEpsilon {
		root = (-halfB + sqrtD) / a
		if root < hitEpsilon {
			return Intersection{}, false
		}
	}

	point := ray.At(root)

	return Intersection{
		Point:    point,
		Normal:   point.Subtract(s.Center).Multiply(1.0 / s.Radius),
		Distance: root,
		Material: s.Material,
		Ray:      ray,
	}, true
}
