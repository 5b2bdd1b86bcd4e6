package game

import (
	"image/color"
	"time"

	"github.com/iburimskiy/ink-intro/internal/intro"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// vertexColor returns straight-alpha vertex components for c at opacity alpha.
func vertexColor(c color.Color, alpha float64) (r, g, b, a float32) {
	fr, fg, fb, fa := intro.StraightRGBA(c)
	return float32(fr), float32(fg), float32(fb), float32(fa * clamp01(alpha))
}

// withAlpha returns c as an 8-bit premultiplied color scaled by alpha.
func withAlpha(c color.Color, alpha float64) color.RGBA {
	r, g, b, a := intro.StraightRGBA(c)
	a *= clamp01(alpha)
	return color.RGBA{
		R: uint8(r*a*255 + 0.5),
		G: uint8(g*a*255 + 0.5),
		B: uint8(b*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// ratio is how far elapsed is through total, clamped to [0, 1].
func ratio(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	return clamp01(float64(elapsed) / float64(total))
}
