package renderer

import (
	"gonum.org/v1/gonum/stat"

	"github.com/tmurray/go-whitted-raytracer/pkg/core"
)

// RenderStats contains diagnostics about a completed render
type RenderStats struct {
	RaysCast        int64   // Total rays traced, including recursive bounces
	TotalPixels     int     // Total number of pixels rendered
	MeanLuminance   float64 // Mean pixel luminance before clamping
	StdDevLuminance float64 // Spread of pixel luminance before clamping
}

// NewRenderStats summarizes a framebuffer after rendering
func NewRenderStats(raysCast int64, width, height int, framebuffer []core.Color) RenderStats {
	luminances := make([]float64, len(framebuffer))
	for i, color := range framebuffer {
		luminances[i] = color.Luminance()
	}

	return RenderStats{
		RaysCast:        raysCast,
		TotalPixels:     width * height,
		MeanLuminance:   stat.Mean(luminances, nil),
		StdDevLuminance: stat.StdDev(luminances, nil),
	}
}
