package game

import (
	"context"
	"image/color"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/ink-intro/internal/intro"
)

func TestOverlayFadeOut(t *testing.T) {
	start := time.Unix(100, 0)
	ended := 0
	o := newOverlay(400 * time.Millisecond)
	o.onTransitionEnd = func() { ended++ }

	o.update(start)
	assert.Equal(t, 1.0, o.opacity, "no fade before fadeOut")

	o.fadeOut(start)
	o.fadeOut(start.Add(300 * time.Millisecond))
	assert.Equal(t, start, o.fadeStart, "second fadeOut is ignored")

	o.update(start.Add(200 * time.Millisecond))
	assert.InDelta(t, 0.5, o.opacity, 1e-9)
	assert.False(t, o.removed)
	assert.Equal(t, 0, ended)

	o.update(start.Add(400 * time.Millisecond))
	assert.Equal(t, 0.0, o.opacity)
	assert.True(t, o.removed)
	assert.Equal(t, 1, ended)

	o.update(start.Add(time.Second))
	assert.Equal(t, 1, ended)
}

func TestLayoutTracksResize(t *testing.T) {
	scale := 1.0
	g := New(nil, Options{
		Seed:        5,
		Now:         func() time.Time { return time.Unix(0, 0) },
		DeviceScale: func() float64 { return scale },
	})

	w, h := g.Layout(800, 600)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Equal(t, intro.Viewport{Width: 800, Height: 600, Density: 1}, g.Engine().Viewport())

	scale = 2
	w, h = g.Layout(800, 600)
	assert.Equal(t, 1600, w)
	assert.Equal(t, 1200, h)

	scale = 3
	w, h = g.Layout(500, 400)
	assert.Equal(t, 1000, w)
	assert.Equal(t, 800, h)
	assert.Equal(t, 2.0, g.Engine().Viewport().Density)
	c := g.canvas.(*canvas)
	assert.Equal(t, 1000, c.width)
	assert.Equal(t, intro.Scale(2), c.transform)
}

// nopSurface discards drawing so Update can be stepped without a GPU.
type nopSurface struct {
	width, height int
	clears        int
}

func (s *nopSurface) Resize(width, height int) {
	s.width, s.height = width, height
}

func (s *nopSurface) Clear() {
	s.clears++
}

func (s *nopSurface) SetTransform(intro.Affine)                      {}
func (s *nopSurface) BeginPath()                                     {}
func (s *nopSurface) MoveTo(x, y float64)                            {}
func (s *nopSurface) LineTo(x, y float64)                            {}
func (s *nopSurface) Arc(x, y, radius, startAngle, endAngle float64) {}
func (s *nopSurface) ClosePath()                                     {}
func (s *nopSurface) Fill()                                          {}
func (s *nopSurface) Stroke()                                        {}
func (s *nopSurface) SetLineWidth(float64)                           {}
func (s *nopSurface) SetLineCap(intro.LineCap)                       {}
func (s *nopSurface) SetColor(color.Color)                           {}
func (s *nopSurface) SetAlpha(float64)                               {}
func (s *nopSurface) image() *ebiten.Image                           { return nil }

func TestUpdateRunsIntroToRemoval(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	now := start
	removed := 0
	surface := &nopSurface{}
	g := newGame(nil, Options{
		Seed:        3,
		Now:         func() time.Time { return now },
		DeviceScale: func() float64 { return 1 },
		OnRemoved:   func() { removed++ },
	}, surface)

	const frame = 16 * time.Millisecond
	var fadeStarted, terminated time.Duration
	for i := 0; i < 300; i++ {
		now = start.Add(time.Duration(i) * frame)
		err := g.Update()
		if g.overlay.fading && fadeStarted == 0 {
			fadeStarted = now.Sub(start)
		}
		if err != nil {
			require.ErrorIs(t, err, ebiten.Termination)
			terminated = now.Sub(start)
			break
		}
	}

	assert.Equal(t, 3056*time.Millisecond, fadeStarted, "fade starts on the first tick past the timeline")
	assert.Equal(t, start.Add(3056*time.Millisecond), g.overlay.fadeStart)
	assert.Equal(t, 3536*time.Millisecond, terminated, "first update after the fade completes")
	assert.True(t, g.Removed())
	assert.Equal(t, 1, removed)
	assert.Equal(t, 192, surface.clears, "engine stops rendering once finished")

	now = now.Add(time.Second)
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.Equal(t, 1, removed)
}

func TestUpdateStopsWhenContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	now := time.Unix(0, 0)
	removed := 0
	g := newGame(nil, Options{
		Context:     ctx,
		Now:         func() time.Time { return now },
		DeviceScale: func() float64 { return 1 },
		OnRemoved:   func() { removed++ },
	}, &nopSurface{})

	require.NoError(t, g.Update())

	cancel()
	now = now.Add(100 * time.Millisecond)
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.False(t, g.Removed())
	assert.Equal(t, 0, removed)
}

func TestWithAlpha(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, withAlpha(color.White, 1))
	assert.Equal(t, color.RGBA{R: 128, G: 128, B: 128, A: 128}, withAlpha(color.White, 0.5))
	assert.Equal(t, color.RGBA{}, withAlpha(color.Black, 0))
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.0, ratio(-time.Second, time.Second))
	assert.Equal(t, 0.5, ratio(500*time.Millisecond, time.Second))
	assert.Equal(t, 1.0, ratio(2*time.Second, time.Second))
	assert.Equal(t, 1.0, ratio(time.Second, 0))
}
