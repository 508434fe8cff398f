package renderer

import (
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/tmurray/go-whitted-raytracer/pkg/core"
	"github.com/tmurray/go-whitted-raytracer/pkg/geometry"
	"github.com/tmurray/go-whitted-raytracer/pkg/lights"
	"github.com/tmurray/go-whitted-raytracer/pkg/material"
	"github.com/tmurray/go-whitted-raytracer/pkg/scene"
)

// ambientCoefficient scales the surface color for the ambient term,
// a fixed stand-in for global illumination.
const ambientCoefficient = 0.2

// Config contains rendering configuration
type Config struct {
	Width           int // Image width in pixels
	Height          int // Image height in pixels
	SuperSamples    int // Square root of the per-pixel anti-aliasing sample count
	DepthComplexity int // Jittered sub-traces per sample for depth of field
	MaxReflections  int // Overrides the scene's reflection budget when > 0
	NumWorkers      int // Parallel column workers (0 = use CPU count)
	Seed            int64
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           1024,
		Height:          768,
		SuperSamples:    1,
		DepthComplexity: 1,
		Seed:            42, // Deterministic for testing
	}
}

// Raytracer renders a scene by recursive ray casting. The scene is
// treated as immutable for the duration of a render; the only mutable
// shared state is the diagnostic ray counter.
type Raytracer struct {
	scene  *scene.Scene
	camera *Camera
	config Config

	maxReflections int
	imageScale     float64
	dispersion     float64

	raysCast atomic.Int64
}

// NewRaytracer creates a raytracer for the given scene and config
func NewRaytracer(s *scene.Scene, config Config) *Raytracer {
	if config.SuperSamples < 1 {
		config.SuperSamples = 1
	}
	if config.DepthComplexity < 1 {
		config.DepthComplexity = 1
	}

	maxReflections := s.MaxReflections
	if config.MaxReflections > 0 {
		maxReflections = config.MaxReflections
	}

	// A negative dispersion disables depth of field entirely
	if s.Dispersion < 0 {
		config.DepthComplexity = 1
	}

	return &Raytracer{
		scene:          s,
		camera:         NewCamera(s.CameraPosition, s.CameraLookAt, s.CameraUp),
		config:         config,
		maxReflections: maxReflections,
		imageScale:     s.ImageScale,
		dispersion:     s.Dispersion,
	}
}

// Camera returns the render camera so interactive viewers can move it
// between renders.
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// RaysCast returns the number of rays traced so far (diagnostic only)
func (rt *Raytracer) RaysCast() int64 {
	return rt.raysCast.Load()
}

// CastRayForPixel computes the color of one pixel by averaging a
// SuperSamples × SuperSamples grid of sub-pixel samples.
func (rt *Raytracer) CastRayForPixel(x, y int, random *rand.Rand) core.Color {
	rayX := (float64(x) - float64(rt.config.Width)/2) / 2.0
	rayY := (float64(y) - float64(rt.config.Height)/2) / 2.0
	pixelWidth := rayX - (float64(x+1)-float64(rt.config.Width)/2)/2.0

	superSamples := rt.config.SuperSamples
	sampleWidth := pixelWidth / float64(superSamples)
	sampleStartX := rayX - pixelWidth/2.0
	sampleStartY := rayY - pixelWidth/2.0
	sampleWeight := 1.0 / float64(superSamples*superSamples)

	var color core.Color
	for i := 0; i < superSamples; i++ {
		for j := 0; j < superSamples; j++ {
			target := rt.camera.LookAt().
				Subtract(rt.camera.U().Multiply((sampleStartX + float64(i)*sampleWidth) * rt.imageScale)).
				Add(rt.camera.V().Multiply((sampleStartY + float64(j)*sampleWidth) * rt.imageScale))

			color = color.Add(rt.castRayAtPoint(target, random).Scale(sampleWeight))
		}
	}

	return color
}

// castRayAtPoint traces DepthComplexity primary rays aimed at the same
// image-plane point, each from an origin jittered by the dispersion
// amount, and averages the results. With DepthComplexity of 1 the
// single ray starts exactly at the camera position.
func (rt *Raytracer) castRayAtPoint(target core.Vec3, random *rand.Rand) core.Color {
	depthComplexity := rt.config.DepthComplexity

	var color core.Color
	for i := 0; i < depthComplexity; i++ {
		origin := rt.camera.Position()

		if depthComplexity > 1 {
			disturbance := core.NewVec3(
				random.Float64()*rt.dispersion,
				random.Float64()*rt.dispersion,
				0)
			origin = origin.Add(disturbance)
		}

		direction := target.Subtract(origin).Normalize()
		ray := core.NewRay(origin, direction, rt.maxReflections, material.AirRefractiveIndex)

		color = color.Add(rt.CastRay(ray).Scale(1.0 / float64(depthComplexity)))
	}

	return color
}

// CastRay traces a single ray through the scene and returns its color.
// A miss returns the zero background color.
func (rt *Raytracer) CastRay(ray core.Ray) core.Color {
	rt.raysCast.Add(1)

	hit, ok := rt.closestIntersection(ray)
	if !ok {
		return core.Color{}
	}
	return rt.performLighting(hit)
}

// closestIntersection linearly scans all shapes for the intersection
// with the smallest positive distance. Ties go to the first shape.
func (rt *Raytracer) closestIntersection(ray core.Ray) (geometry.Intersection, bool) {
	closest := geometry.Intersection{Distance: math.MaxFloat64}
	found := false

	for _, shape := range rt.scene.Shapes {
		if hit, ok := shape.Intersect(ray); ok && hit.Distance < closest.Distance {
			closest = hit
			found = true
		}
	}

	return closest, found
}

// isInShadow reports whether any shape blocks the ray before the light.
// It short-circuits on the first occluder instead of finding the
// closest one.
func (rt *Raytracer) isInShadow(ray core.Ray, lightDistance float64) bool {
	for _, shape := range rt.scene.Shapes {
		if hit, ok := shape.Intersect(ray); ok && hit.Distance < lightDistance {
			return true
		}
	}
	return false
}

// performLighting composes the ambient, per-light diffuse/specular and
// reflective contributions at an intersection.
func (rt *Raytracer) performLighting(hit geometry.Intersection) core.Color {
	surfaceColor := hit.ColorAt()

	ambient := surfaceColor.Scale(ambientCoefficient)
	diffuseAndSpecular := rt.diffuseAndSpecularLighting(hit, surfaceColor)
	reflected := rt.reflectiveRefractiveLighting(hit)

	return ambient.Add(diffuseAndSpecular).Add(reflected)
}

// diffuseAndSpecularLighting accumulates the shadowed Lambert and Phong
// terms over every light in the scene.
func (rt *Raytracer) diffuseAndSpecularLighting(hit geometry.Intersection, surfaceColor core.Color) core.Color {
	var diffuse, specular core.Color

	for _, light := range rt.scene.Lights {
		lightOffset := light.Position.Subtract(hit.Point)
		lightDistance := lightOffset.Length()
		lightDirection := lightOffset.Normalize()

		dot := hit.Normal.Dot(lightDirection)
		if dot < 0 {
			// Surface faces away from this light
			continue
		}

		shadowRay := core.NewRay(hit.Point, lightDirection, 1, hit.Ray.RefractiveIndex)
		if rt.isInShadow(shadowRay, lightDistance) {
			continue
		}

		diffuse = diffuse.Add(surfaceColor.Scale(dot * light.Intensity))
		specular = specular.Add(rt.specularLighting(hit, light))
	}

	return diffuse.Add(specular)
}

// specularLighting computes the monochrome Phong highlight for one light
func (rt *Raytracer) specularLighting(hit geometry.Intersection, light *lights.Light) core.Color {
	shininess := hit.Material.Shininess()
	if shininess == material.NotShiny {
		return core.Color{}
	}

	view := hit.Ray.Origin.Subtract(hit.Point).Normalize()
	lightDirection := light.Position.Subtract(hit.Point).Normalize()
	reflected := Reflect(lightDirection, hit.Normal)

	dot := view.Dot(reflected)
	if dot <= 0 {
		return core.Color{}
	}

	amount := math.Pow(dot, shininess) * light.Intensity
	return core.NewColor(amount, amount, amount)
}

// reflectiveRefractiveLighting casts the recursive reflection ray. When
// the material is refractive the reflected fraction comes from the
// Fresnel reflectance; the transmitted fraction is dropped rather than
// traced (see the repository docs for this deliberate incompleteness).
func (rt *Raytracer) reflectiveRefractiveLighting(hit geometry.Intersection) core.Color {
	reflectivity := hit.Material.Reflectivity()
	refractiveIndex := hit.Material.RefractiveIndex()

	if hit.Ray.BouncesLeft <= 0 ||
		(reflectivity == material.NotReflective && refractiveIndex == material.NotRefractive) {
		return core.Color{}
	}

	reflectiveFraction := reflectivity
	if refractiveIndex != material.NotRefractive {
		// The refractive index overrides the fixed reflectivity
		reflectiveFraction = Reflectance(hit.Normal, hit.Ray.Direction,
			material.AirRefractiveIndex, refractiveIndex)
	}

	if reflectiveFraction <= 0 {
		return core.Color{}
	}

	view := hit.Ray.Origin.Subtract(hit.Point).Normalize()
	reflected := Reflect(view, hit.Normal)
	reflectedRay := core.NewRay(hit.Point, reflected, hit.Ray.BouncesLeft-1, hit.Ray.RefractiveIndex)

	return rt.CastRay(reflectedRay).Scale(reflectiveFraction)
}
