package core

// Ray represents a ray with an origin, direction and the tracing context
// it carries through the recursive shading pipeline: the remaining bounce
// budget and the refractive index of the medium it travels through.
type Ray struct {
	Origin          Vec3
	Direction       Vec3 // Expected to be unit length
	BouncesLeft     int  // Decremented on each reflective bounce
	RefractiveIndex float64
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3, bouncesLeft int, refractiveIndex float64) Ray {
	return Ray{
		Origin:          origin,
		Direction:       direction,
		BouncesLeft:     bouncesLeft,
		RefractiveIndex: refractiveIndex,
	}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
