package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/ink-intro/internal/intro"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// canvas implements intro.Canvas on an offscreen ebiten image using
// vector.Path triangulation.
type canvas struct {
	target        *ebiten.Image
	width, height int

	transform intro.Affine
	path      *vector.Path
	hasPath   bool

	lineWidth float64
	lineCap   intro.LineCap
	color     color.Color
	alpha     float64

	vertices []ebiten.Vertex
	indices  []uint16
}

func newCanvas() *canvas {
	return &canvas{
		transform: intro.Identity(),
		path:      &vector.Path{},
		lineWidth: 1,
		color:     color.Black,
		alpha:     1,
	}
}

// Resize only records the new size; the image is reallocated on the next
// draw so resizing works before the game loop starts.
func (c *canvas) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == c.width && height == c.height {
		return
	}
	c.width, c.height = width, height
	if c.target != nil {
		c.target.Deallocate()
		c.target = nil
	}
}

func (c *canvas) image() *ebiten.Image {
	if c.target == nil {
		c.target = ebiten.NewImage(c.width, c.height)
	}
	return c.target
}

func (c *canvas) SetTransform(m intro.Affine) { c.transform = m }

func (c *canvas) Clear() {
	c.image().Clear()
}

func (c *canvas) BeginPath() {
	c.path = &vector.Path{}
	c.hasPath = false
}

func (c *canvas) MoveTo(x, y float64) {
	x, y = c.transform.Apply(x, y)
	c.path.MoveTo(float32(x), float32(y))
	c.hasPath = true
}

func (c *canvas) LineTo(x, y float64) {
	if !c.hasPath {
		c.MoveTo(x, y)
		return
	}
	x, y = c.transform.Apply(x, y)
	c.path.LineTo(float32(x), float32(y))
}

func (c *canvas) Arc(x, y, radius, startAngle, endAngle float64) {
	x, y = c.transform.Apply(x, y)
	radius *= c.transform.Factor()
	c.path.Arc(float32(x), float32(y), float32(radius), float32(startAngle), float32(endAngle), vector.Clockwise)
	c.hasPath = true
}

func (c *canvas) ClosePath() {
	if c.hasPath {
		c.path.Close()
	}
}

func (c *canvas) Fill() {
	if !c.hasPath {
		return
	}
	c.vertices, c.indices = c.path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	c.draw(&ebiten.DrawTrianglesOptions{AntiAlias: true, FillRule: ebiten.NonZero})
	c.BeginPath()
}

func (c *canvas) Stroke() {
	if !c.hasPath {
		return
	}
	opts := &vector.StrokeOptions{
		Width:    float32(c.lineWidth * c.transform.Factor()),
		LineJoin: vector.LineJoinRound,
	}
	if c.lineCap == intro.LineCapRound {
		opts.LineCap = vector.LineCapRound
	}
	c.vertices, c.indices = c.path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], opts)
	c.draw(&ebiten.DrawTrianglesOptions{AntiAlias: true})
	c.BeginPath()
}

func (c *canvas) draw(opts *ebiten.DrawTrianglesOptions) {
	if len(c.indices) == 0 {
		return
	}
	r, g, b, a := vertexColor(c.color, c.alpha)
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = r
		c.vertices[i].ColorG = g
		c.vertices[i].ColorB = b
		c.vertices[i].ColorA = a
	}
	c.image().DrawTriangles(c.vertices, c.indices, whiteSubImage, opts)
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
	c.alpha = clamp01(a)
}
