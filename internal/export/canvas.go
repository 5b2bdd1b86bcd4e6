package export

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/iburimskiy/ink-intro/internal/intro"
)

// canvas implements intro.Canvas on a gg context. The transform is applied to
// coordinates here so the gg matrix stays at identity.
type canvas struct {
	dc        *gg.Context
	transform intro.Affine

	lineWidth float64
	lineCap   intro.LineCap
	color     color.Color
	alpha     float64
}

func newCanvas() *canvas {
	return &canvas{
		dc:        gg.NewContext(1, 1),
		transform: intro.Identity(),
		lineWidth: 1,
		color:     color.Black,
		alpha:     1,
	}
}

func (c *canvas) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if b := c.dc.Image().Bounds(); b.Dx() == width && b.Dy() == height {
		return
	}
	c.dc = gg.NewContext(width, height)
}

func (c *canvas) SetTransform(m intro.Affine) { c.transform = m }

func (c *canvas) Clear() {
	c.dc.ClearPath()
	c.dc.SetRGBA(0, 0, 0, 0)
	c.dc.Clear()
}

func (c *canvas) BeginPath() { c.dc.ClearPath() }

func (c *canvas) MoveTo(x, y float64) {
	c.dc.MoveTo(c.transform.Apply(x, y))
}

func (c *canvas) LineTo(x, y float64) {
	c.dc.LineTo(c.transform.Apply(x, y))
}

func (c *canvas) Arc(x, y, radius, startAngle, endAngle float64) {
	x, y = c.transform.Apply(x, y)
	c.dc.DrawArc(x, y, radius*c.transform.Factor(), startAngle, endAngle)
}

func (c *canvas) ClosePath() { c.dc.ClosePath() }

func (c *canvas) Fill() {
	c.setSource()
	c.dc.Fill()
}

func (c *canvas) Stroke() {
	c.setSource()
	c.dc.SetLineWidth(c.lineWidth * c.transform.Factor())
	if c.lineCap == intro.LineCapRound {
		c.dc.SetLineCap(gg.LineCapRound)
	} else {
		c.dc.SetLineCap(gg.LineCapButt)
	}
	c.dc.Stroke()
}

func (c *canvas) setSource() {
	r, g, b, a := intro.StraightRGBA(c.color)
	c.dc.SetRGBA(r, g, b, a*c.alpha)
}

func (c *canvas) SetLineWidth(w float64) {
	c.lineWidth = w
}

func (c *canvas) SetLineCap(lc intro.LineCap) {
	c.lineCap = lc
}

func (c *canvas) SetColor(clr color.Color) {
	c.color = clr
}

func (c *canvas) SetAlpha(a float64) {
	c.alpha = math.Max(0, math.Min(1, a))
}

func (c *canvas) image() image.Image { return c.dc.Image() }
