package game

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/ink-intro/internal/config"
	"github.com/iburimskiy/ink-intro/internal/intro"
)

type Options struct {
	// Context ends the game early when cancelled.
	Context context.Context
	// Seed for the scribble jitter; 0 picks one from the clock.
	Seed int64
	// Now overrides the wall clock.
	Now func() time.Time
	// DeviceScale overrides the monitor's device scale factor.
	DeviceScale func() float64
	// OnRemoved runs once after the overlay has faded out.
	OnRemoved func()
}

// surface is the offscreen target the engine renders into.
type surface interface {
	intro.Canvas
	image() *ebiten.Image
}

// Game hosts the intro engine in an ebiten window. It implements ebiten.Game.
type Game struct {
	engine  *intro.Engine
	canvas  surface
	overlay *overlay
	logger  *log.Logger
	ctx     context.Context

	now         func() time.Time
	deviceScale func() float64

	outsideW, outsideH int
	density            float64
}

func New(logger *log.Logger, opts Options) *Game {
	return newGame(logger, opts, newCanvas())
}

func newGame(logger *log.Logger, opts Options, target surface) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		canvas:      target,
		overlay:     newOverlay(config.FadeOutDuration),
		logger:      logger,
		ctx:         opts.Context,
		now:         opts.Now,
		deviceScale: opts.DeviceScale,
		outsideW:    config.WindowWidth,
		outsideH:    config.WindowHeight,
	}
	if g.ctx == nil {
		g.ctx = context.Background()
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.deviceScale == nil {
		g.deviceScale = monitorScale
	}
	g.density = intro.ClampDensity(g.deviceScale())

	onRemoved := opts.OnRemoved
	g.overlay.onTransitionEnd = func() {
		g.logger.Debug("overlay removed")
		if onRemoved != nil {
			onRemoved()
		}
	}

	vp := intro.Viewport{Width: config.WindowWidth, Height: config.WindowHeight, Density: g.density}
	g.engine = intro.NewEngine(g.canvas, vp, g.now(),
		intro.WithRandom(intro.NewRandom(opts.Seed)),
		intro.WithLogger(logger),
		intro.WithFinishHook(func() { g.overlay.fadeOut(g.now()) }),
	)
	return g
}

func monitorScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

func (g *Game) Update() error {
	if g.overlay.removed {
		return ebiten.Termination
	}
	if err := g.ctx.Err(); err != nil {
		g.logger.Debug("intro interrupted", "err", err)
		return ebiten.Termination
	}
	now := g.now()
	if !g.engine.Done() {
		g.engine.Tick(now)
	}
	g.overlay.update(now)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.overlay.removed {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), withAlpha(config.Paper, g.overlay.opacity), false)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(g.overlay.opacity))
	screen.DrawImage(g.canvas.image(), op)
}

// Layout is where window resizes arrive. The screen is laid out in device
// pixels so the canvas transform handles density.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	density := intro.ClampDensity(g.deviceScale())
	if outsideWidth != g.outsideW || outsideHeight != g.outsideH || density != g.density {
		g.outsideW, g.outsideH, g.density = outsideWidth, outsideHeight, density
		g.engine.Resize(intro.Viewport{
			Width:   float64(outsideWidth),
			Height:  float64(outsideHeight),
			Density: density,
		})
	}
	return g.engine.Viewport().BufferSize()
}

// Removed reports whether the overlay has faded out.
func (g *Game) Removed() bool {
	return g.overlay.removed
}

func (g *Game) Engine() *intro.Engine {
	return g.engine
}
