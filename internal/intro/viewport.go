package intro

import (
	"math"

	"github.com/iburimskiy/ink-intro/internal/config"
)

// Viewport is the logical drawing area and its pixel density.
type Viewport struct {
	Width   float64
	Height  float64
	Density float64
}

// ClampDensity limits a device pixel ratio to [MinDensity, MaxDensity].
// Non-positive or NaN ratios fall back to 1.
func ClampDensity(d float64) float64 {
	if math.IsNaN(d) || d < config.MinDensity {
		return config.MinDensity
	}
	if d > config.MaxDensity {
		return config.MaxDensity
	}
	return d
}

func (v Viewport) Center() (float64, float64) {
	return v.Width / 2, v.Height / 2
}

// Radius is the reference radius every renderer scales against.
func (v Viewport) Radius() float64 {
	return math.Min(v.Width, v.Height) * config.RadiusFraction
}

// BufferSize is the size of the backing pixel buffer in device pixels.
func (v Viewport) BufferSize() (int, int) {
	d := ClampDensity(v.Density)
	return int(math.Floor(v.Width * d)), int(math.Floor(v.Height * d))
}
