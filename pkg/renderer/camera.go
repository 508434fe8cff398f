package renderer

import (
	"github.com/tmurray/go-whitted-raytracer/pkg/core"
)

// Camera holds the viewer position and derives the orthonormal basis
// used to place image-plane points. The basis is recomputed on every
// mutation so interactive controllers can move the camera freely.
//
// Degenerate input (up parallel to the view direction) is the caller's
// responsibility to avoid.
type Camera struct {
	position core.Vec3
	lookAt   core.Vec3
	up       core.Vec3

	u, v, w core.Vec3
}

// NewCamera creates a camera and derives its basis
func NewCamera(position, lookAt, up core.Vec3) *Camera {
	c := &Camera{position: position, lookAt: lookAt, up: up}
	c.computeBasis()
	return c
}

// computeBasis derives the orthonormal basis from position/look-at/up:
// w points from the position toward the look-at point, u spans the
// image plane horizontally and v vertically.
func (c *Camera) computeBasis() {
	c.w = c.lookAt.Subtract(c.position).Normalize()
	c.u = c.up.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)
}

// Position returns the camera position
func (c *Camera) Position() core.Vec3 { return c.position }

// LookAt returns the look-at point
func (c *Camera) LookAt() core.Vec3 { return c.lookAt }

// Up returns the raw up vector
func (c *Camera) Up() core.Vec3 { return c.up }

// U returns the horizontal image-plane basis vector
func (c *Camera) U() core.Vec3 { return c.u }

// V returns the vertical image-plane basis vector
func (c *Camera) V() core.Vec3 { return c.v }

// W returns the unit forward vector
func (c *Camera) W() core.Vec3 { return c.w }

// SetPosition moves the camera and recomputes the basis
func (c *Camera) SetPosition(position core.Vec3) {
	c.position = position
	c.computeBasis()
}

// SetLookAt retargets the camera and recomputes the basis
func (c *Camera) SetLookAt(lookAt core.Vec3) {
	c.lookAt = lookAt
	c.computeBasis()
}

// SetUp replaces the up vector and recomputes the basis
func (c *Camera) SetUp(up core.Vec3) {
	c.up = up
	c.computeBasis()
}

// MoveForward translates the camera and its look-at point along the
// forward vector. Negative distances move backward.
func (c *Camera) MoveForward(distance float64) {
	c.translate(c.w.Multiply(distance))
}

// Strafe translates the camera and its look-at point along the
// horizontal basis vector.
func (c *Camera) Strafe(distance float64) {
	c.translate(c.u.Multiply(distance))
}

// Elevate translates the camera and its look-at point along the
// vertical basis vector.
func (c *Camera) Elevate(distance float64) {
	c.translate(c.v.Multiply(distance))
}

func (c *Camera) translate(delta core.Vec3) {
	c.position = c.position.Add(delta)
	c.lookAt = c.lookAt.Add(delta)
	c.computeBasis()
}
