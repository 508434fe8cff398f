package renderer

import (
	"fmt"
	"image"
	"math/rand"
	"sync/atomic"

	"github.com/tmurray/go-whitted-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Render traces every pixel of the image, parallelized across columns,
// and reports percentage progress through the logger. A render always
// runs to completion; there is no cancellation.
func (rt *Raytracer) Render(logger core.Logger) (*image.RGBA, RenderStats) {
	width, height := rt.config.Width, rt.config.Height
	framebuffer := make([]core.Color, width*height)

	var columnsCompleted atomic.Int64

	pool := NewWorkerPool(width, rt.config.NumWorkers)
	pool.Start(rt.config.Seed, func(x int, random *rand.Rand) {
		for y := 0; y < height; y++ {
			framebuffer[y*width+x] = rt.CastRayForPixel(x, y, random)
		}

		completed := columnsCompleted.Add(1)
		percentage := int(float64(completed) / float64(width) * 100)
		logger.Printf("\r%d%%", percentage)
	})

	for x := 0; x < width; x++ {
		pool.Submit(x)
	}
	pool.Stop()

	logger.Printf("\rDone!\n")
	logger.Printf("Rays cast: %d\n", rt.RaysCast())

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, framebuffer[y*width+x].ToRGBA())
		}
	}

	return img, NewRenderStats(rt.RaysCast(), width, height, framebuffer)
}
