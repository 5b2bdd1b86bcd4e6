package intro

import "image/color"

type shapeKind int

const (
	shapePolygon shapeKind = iota
	shapeArc
	shapeStroke
)

type shape struct {
	kind      shapeKind
	points    [][2]float64
	radius    float64
	alpha     float64
	lineWidth float64
}

// recorder is a Canvas that keeps every emitted shape in logical pixels.
type recorder struct {
	bufW, bufH int
	transform  Affine
	clears     int

	lineWidth float64
	lineCap   LineCap
	color     color.Color
	alpha     float64

	points [][2]float64
	radius float64
	arc    bool
	shapes []shape
}

func newRecorder() *recorder {
	return &recorder{transform: Identity(), alpha: 1, color: color.Black}
}

func (r *recorder) Resize(w, h int) {
	r.bufW, r.bufH = w, h
}

func (r *recorder) SetTransform(m Affine) {
	r.transform = m
}

func (r *recorder) Clear() {
	r.clears++
	r.shapes = nil
}

func (r *recorder) BeginPath() {
	r.points, r.arc, r.radius = nil, false, 0
}

func (r *recorder) MoveTo(x, y float64) {
	r.points = append(r.points, [2]float64{x, y})
}

func (r *recorder) LineTo(x, y float64) {
	r.points = append(r.points, [2]float64{x, y})
}

func (r *recorder) ClosePath() {}

func (r *recorder) SetLineWidth(w float64) {
	r.lineWidth = w
}

func (r *recorder) SetLineCap(c LineCap) {
	r.lineCap = c
}

func (r *recorder) SetColor(c color.Color) {
	r.color = c
}

func (r *recorder) SetAlpha(a float64) {
	r.alpha = a
}

func (r *recorder) Arc(x, y, radius, _, _ float64) {
	r.points = append(r.points, [2]float64{x, y})
	r.radius = radius
	r.arc = true
}

func (r *recorder) Fill() {
	kind := shapePolygon
	if r.arc {
		kind = shapeArc
	}
	r.shapes = append(r.shapes, shape{kind: kind, points: r.points, radius: r.radius, alpha: r.alpha})
	r.BeginPath()
}

func (r *recorder) Stroke() {
	r.shapes = append(r.shapes, shape{kind: shapeStroke, points: r.points, alpha: r.alpha, lineWidth: r.lineWidth})
	r.BeginPath()
}

func (r *recorder) count(kind shapeKind) int {
	n := 0
	for _, s := range r.shapes {
		if s.kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) countAlpha(kind shapeKind, alpha float64) int {
	n := 0
	for _, s := range r.shapes {
		if s.kind == kind && almostEqual(s.alpha, alpha) {
			n++
		}
	}
	return n
}

func almostEqual(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

// fixedRandom cycles through a fixed list of values.
type fixedRandom struct {
	values []float64
	i      int
}

func (f *fixedRandom) Float64() float64 {
	v := f.values[f.i%len(f.values)]
	f.i++
	return v
}
