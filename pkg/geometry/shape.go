package geometry

import (
	"github.com/tmurray/go-whitted-raytracer/pkg/core"
	"github.com/tmurray/go-whitted-raytracer/pkg/material"
)

// Intersection describes where a ray hit a shape. It is only valid
// when returned alongside ok == true from Shape.Intersect.
type Intersection struct {
	Point    core.Vec3         // Point of intersection
	Normal   core.Vec3         // Outward-facing unit surface normal
	Distance float64           // Parametric distance along the ray
	Material material.Material // Material of the hit shape
	Ray      core.Ray          // The ray that generated this intersection
}

// ColorAt returns the surface color at the intersection point
func (i *Intersection) ColorAt() core.Color {
	return i.Material.ColorAt(i.Point)
}

// Shape interface for primitives that can be hit by rays
type Shape interface {
	Intersect(ray core.Ray) (Intersection, bool)
}
