package scene

import (
	"github.com/tmurray/go-whitted-raytracer/pkg/core"
	"github.com/tmurray/go-whitted-raytracer/pkg/geometry"
	"github.com/tmurray/go-whitted-raytracer/pkg/lights"
	"github.com/tmurray/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates a built-in demo scene with a mirrored sphere,
// a shiny red sphere and a checkerboard floor sphere.
func NewDefaultScene() *Scene {
	s := NewScene()

	s.CameraPosition = core.NewVec3(0, 40, 300)
	s.CameraLookAt = core.NewVec3(0, 0, 0)
	s.CameraUp = core.NewVec3(0, 1, 0)
	s.Dispersion = -1 // No depth-of-field jitter by default
	s.MaxReflections = 10
	s.ImageScale = 1.0

	// Materials
	shinyRed := material.NewFlatColor(core.NewColor(0.9, 0.1, 0.1),
		32, 0.4, material.NotRefractive)
	mirror := material.NewFlatColor(core.NewColor(0.2, 0.2, 0.2),
		64, 0.9, material.NotRefractive)
	floor := material.NewCheckerboard(core.NewColor(0.9, 0.9, 0.9),
		core.NewColor(0.1, 0.1, 0.1), 40, material.NotShiny, 0.1)

	// A huge sphere below the visible spheres stands in for a ground plane
	s.AddShape(geometry.NewSphere(core.NewVec3(0, -10050, 0), 10000, floor))
	s.AddShape(geometry.NewSphere(core.NewVec3(-60, 0, 0), 50, shinyRed))
	s.AddShape(geometry.NewSphere(core.NewVec3(60, 0, 0), 50, mirror))

	s.AddLight(lights.NewLight(core.NewVec3(0, 300, 200), 1.0))
	s.AddLight(lights.NewLight(core.NewVec3(-200, 100, 100), 0.4))

	return s
}
