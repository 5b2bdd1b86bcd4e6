package intro

import (
	"math"

	"github.com/iburimskiy/ink-intro/internal/config"
)

const tau = 2 * math.Pi

// Hair is one converging scribble stroke.
type Hair struct {
	X, Y   float64
	Angle  float64
	Length float64
}

func newHairs(vp Viewport, rng Random) []Hair {
	cx, cy := vp.Center()
	hairs := make([]Hair, config.HairCount)
	for i := range hairs {
		hairs[i] = Hair{
			X:      cx,
			Y:      cy,
			Angle:  float64(i) / config.HairCount * tau,
			Length: config.HairMinLength + rng.Float64()*config.HairLengthRange,
		}
	}
	return hairs
}

// DrawScribbles advances every hair one step toward a ring whose radius grows
// with convergence k, then strokes it. Noise and jitter fade out as k reaches
// 1. opacity scales the stroke alpha and is 1 outside the crossfade.
func DrawScribbles(c Canvas, st *AnimationState, k, opacity float64) {
	k = clamp01(k)
	chaos := 1 - k
	cx, cy := st.Viewport.Center()
	radius := (config.HairInnerRadius + config.HairRadiusRange*k) * st.Viewport.Radius()
	follow := config.HairEaseBase + config.HairEaseGain*k

	c.SetLineWidth(lerp(config.HairBaseWidth+config.HairWidthGain, config.HairBaseWidth, k))
	c.SetLineCap(LineCapRound)
	c.SetColor(config.Ink)
	c.SetAlpha(config.HairAlpha * opacity)

	for i := range st.Hairs {
		h := &st.Hairs[i]
		h.Angle = math.Mod(h.Angle+config.HairAngleStep+float64(i)*config.HairAngleSpread, tau)

		n := snoise(h.X*config.HairNoiseScale, h.Y*config.HairNoiseScale+float64(i))
		ang := h.Angle + n*config.HairNoiseAmount*chaos
		tx := cx + radius*math.Cos(ang)
		ty := cy + radius*math.Sin(ang)

		h.X += (tx-h.X)*follow + (st.rng.Float64()-0.5)*config.HairJitter*chaos
		h.Y += (ty-h.Y)*follow + (st.rng.Float64()-0.5)*config.HairJitter*chaos

		c.BeginPath()
		c.MoveTo(h.X, h.Y)
		c.LineTo(h.X+math.Cos(ang)*h.Length, h.Y+math.Sin(ang)*h.Length)
		c.Stroke()
	}
	c.SetAlpha(1)
}
