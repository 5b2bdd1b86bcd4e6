// Package intro is the time-driven engine behind the ink intro: hair scribbles
// converge into a ring, then a tapered ribbon sweeps around it.
package intro

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/iburimskiy/ink-intro/internal/config"
)

// AnimationState is everything the intro mutates between ticks. It is owned
// by a single Engine and handed to the renderers by reference.
type AnimationState struct {
	Start    time.Time
	Viewport Viewport
	Hairs    []Hair
	Phase    Phase
	Finished bool

	rng Random
}

// NewAnimationState places the hairs at the viewport center.
func NewAnimationState(vp Viewport, start time.Time, rng Random) *AnimationState {
	return &AnimationState{
		Start:    start,
		Viewport: vp,
		Hairs:    newHairs(vp, rng),
		rng:      rng,
	}
}

// Frame describes what a tick rendered.
type Frame struct {
	Phase    Phase
	Progress float64 // fraction of the current phase
	Eased    float64 // eased ribbon progress while Drawing
	Elapsed  time.Duration
}

// Engine drives the intro: it maps wall-clock time to a phase and renders
// that phase onto its canvas. It is not safe for concurrent use.
type Engine struct {
	canvas   Canvas
	timeline Timeline
	state    *AnimationState
	logger   *log.Logger
	onFinish func()
}

type Option func(*Engine)

// WithRandom sets the jitter source the animation state draws from.
func WithRandom(r Random) Option {
	return func(e *Engine) { e.state.rng = r }
}

func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithFinishHook registers fn to run once when the timeline reaches Finished.
// The host uses it to start the overlay fade-out.
func WithFinishHook(fn func()) Option {
	return func(e *Engine) { e.onFinish = fn }
}

func WithTimeline(tl Timeline) Option {
	return func(e *Engine) { e.timeline = tl }
}

// NewEngine captures start as the timeline origin and sizes the canvas.
func NewEngine(c Canvas, vp Viewport, start time.Time, opts ...Option) *Engine {
	e := &Engine{
		canvas:   c,
		timeline: DefaultTimeline(),
		state:    &AnimationState{},
	}
	for _, opt := range opts {
		opt(e)
	}
	rng := e.state.rng
	if rng == nil {
		rng = NewRandom(0)
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	e.state = NewAnimationState(vp, start, rng)
	e.Resize(vp)
	return e
}

// Resize reconfigures the canvas for a new viewport: the buffer becomes
// viewport × density and drawing stays in logical pixels. The timeline is
// not restarted.
func (e *Engine) Resize(vp Viewport) {
	vp.Density = ClampDensity(vp.Density)
	e.state.Viewport = vp
	w, h := vp.BufferSize()
	e.canvas.Resize(w, h)
	e.canvas.SetTransform(Scale(vp.Density))
	e.logger.Debug("surface resized", "width", vp.Width, "height", vp.Height, "density", vp.Density, "buffer", [2]int{w, h})
}

func (e *Engine) Viewport() Viewport {
	return e.state.Viewport
}

// Done reports whether the finished state has been reached.
func (e *Engine) Done() bool {
	return e.state.Finished
}

// Tick clears the canvas and renders the phase active at now.
func (e *Engine) Tick(now time.Time) Frame {
	elapsed := now.Sub(e.state.Start)
	if elapsed < 0 {
		elapsed = 0
	}
	phase, progress := e.timeline.At(elapsed)
	if phase != e.state.Phase {
		e.logger.Debug("phase", "from", e.state.Phase, "to", phase, "elapsed", elapsed)
		e.state.Phase = phase
	}
	frame := Frame{Phase: phase, Progress: progress, Elapsed: elapsed}

	e.canvas.Clear()
	switch phase {
	case Scribbling:
		DrawScribbles(e.canvas, e.state, progress, 1)
	case Drawing:
		eased := EaseInOutCubic(progress)
		frame.Eased = eased
		if eased < config.CrossfadeCutoff {
			DrawScribbles(e.canvas, e.state, 1, 1-eased)
		}
		DrawRibbon(e.canvas, e.state.Viewport, eased)
	case Holding:
		frame.Eased = 1
		DrawRibbon(e.canvas, e.state.Viewport, 1)
	case Finished:
		frame.Eased = 1
		e.finish(elapsed)
	}
	return frame
}

func (e *Engine) finish(elapsed time.Duration) {
	if e.state.Finished {
		return
	}
	e.state.Finished = true
	e.logger.Info("intro finished", "elapsed", elapsed.Round(time.Millisecond))
	if e.onFinish != nil {
		e.onFinish()
	}
}
