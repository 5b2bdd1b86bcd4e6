package intro

import (
	"math"

	"github.com/iburimskiy/ink-intro/internal/config"
)

type ribbonLayer struct {
	offset float64
	alpha  float64
}

// ribbonLayers lists the dense core passes followed by the soft feather passes.
var ribbonLayers = func() []ribbonLayer {
	layers := make([]ribbonLayer, 0, config.RibbonCoreLayers+config.RibbonFeathers)
	for i := 0; i < config.RibbonCoreLayers; i++ {
		f := float64(i)/float64(config.RibbonCoreLayers-1) - 0.5
		layers = append(layers, ribbonLayer{offset: f * config.RibbonCoreSpread, alpha: config.RibbonCoreAlpha})
	}
	for i := 0; i < config.RibbonFeathers; i++ {
		layers = append(layers, ribbonLayer{
			offset: config.RibbonFeatherStart + float64(i)*config.RibbonFeatherStep,
			alpha:  config.RibbonFeatherAlpha * (1 - float64(i)*config.RibbonFeatherDecay),
		})
	}
	return layers
}()

// WidthAt is the full stroke width at arc parameter u in [0, 1]. It tapers in
// and out over the first and last RibbonTaper of the arc and narrows by up to
// RibbonDryAmount after RibbonDryStart.
func WidthAt(u float64) float64 {
	w := config.RibbonBaseWidth
	const e = config.RibbonTaper
	if u < e {
		w *= EaseInOutCubic(u / e)
	} else if u > 1-e {
		w *= EaseInOutCubic((1 - u) / e)
	}
	if u > config.RibbonDryStart {
		d := (u - config.RibbonDryStart) / (1 - config.RibbonDryStart)
		w *= 1 - d*config.RibbonDryAmount
	}
	return math.Max(w, 0)
}

// DrawRibbon fills the first progress fraction of the arc as a chain of
// quads, once per layer.
func DrawRibbon(c Canvas, vp Viewport, progress float64) {
	progress = clamp01(progress)
	maxStep := int(math.Floor(config.RibbonSteps * progress))
	cx, cy := vp.Center()
	r := vp.Radius()

	c.SetColor(config.Ink)
	for _, l := range ribbonLayers {
		c.SetAlpha(l.alpha)
		drawRibbonLayer(c, cx, cy, r+l.offset, maxStep)
	}
	c.SetAlpha(1)
}

func drawRibbonLayer(c Canvas, cx, cy, r float64, maxStep int) {
	start := config.RibbonStartDeg * math.Pi / 180
	sweep := config.RibbonArcFraction * tau
	var plx, ply, prx, pry float64

	for i := 0; i <= maxStep; i++ {
		u := float64(i) / config.RibbonSteps
		a := start + config.RibbonDirection*sweep*u
		sin, cos := math.Sincos(a)
		x, y := cx+r*cos, cy+r*sin
		// normal of the tangent (-sin, cos)
		nx, ny := -cos, -sin
		w := 0.5 * WidthAt(u)
		lx, ly := x+nx*w, y+ny*w
		rx, ry := x-nx*w, y-ny*w

		if i > 0 {
			c.BeginPath()
			c.MoveTo(plx, ply)
			c.LineTo(prx, pry)
			c.LineTo(rx, ry)
			c.LineTo(lx, ly)
			c.ClosePath()
			c.Fill()
		}
		plx, ply, prx, pry = lx, ly, rx, ry

		if i == maxStep && w > 0 {
			c.BeginPath()
			c.Arc(x, y, w*config.RibbonCapScale, 0, tau)
			c.Fill()
		}
	}
}
