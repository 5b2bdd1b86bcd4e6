package intro

import (
	"image/color"
	"math"
)

// LineCap selects how stroke end points are drawn.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
)

// Affine is a 2D affine transform laid out like a canvas setTransform call:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Affine struct {
	A, B, C, D, E, F float64
}

func Identity() Affine {
	return Affine{A: 1, D: 1}
}

// Scale returns a uniform scaling transform.
func Scale(s float64) Affine {
	return Affine{A: s, D: s}
}

func (m Affine) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Factor is the length scale of the transform, used for line widths and
// arc radii. It is exact for uniform scales and rotations.
func (m Affine) Factor() float64 {
	return math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
}

// Canvas is the immediate-mode drawing surface the renderers paint on.
// Coordinates passed to path methods are logical pixels; implementations map
// them through the current transform.
type Canvas interface {
	// Resize reallocates the pixel buffer, discarding its content.
	Resize(width, height int)
	SetTransform(m Affine)
	Clear()

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, radius, startAngle, endAngle float64)
	ClosePath()
	Fill()
	Stroke()

	SetLineWidth(w float64)
	SetLineCap(c LineCap)
	SetColor(c color.Color)
	// SetAlpha sets a global opacity multiplied into every fill and stroke.
	SetAlpha(a float64)
}

// StraightRGBA converts c to non-premultiplied components in [0, 1].
func StraightRGBA(c color.Color) (r, g, b, a float64) {
	pr, pg, pb, pa := c.RGBA()
	if pa == 0 {
		return 0, 0, 0, 0
	}
	a = float64(pa) / 0xffff
	return float64(pr) / float64(pa), float64(pg) / float64(pa), float64(pb) / float64(pa), a
}
