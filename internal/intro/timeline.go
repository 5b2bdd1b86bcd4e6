package intro

import (
	"time"

	"github.com/iburimskiy/ink-intro/internal/config"
)

// Phase is one of the contiguous stages of the intro.
type Phase int

const (
	Scribbling Phase = iota
	Drawing
	Holding
	Finished
)

func (p Phase) String() string {
	switch p {
	case Scribbling:
		return "scribbling"
	case Drawing:
		return "drawing"
	case Holding:
		return "holding"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// Timeline holds the three phase durations. Phases are evaluated against a
// single start timestamp and never overlap.
type Timeline struct {
	Scribble time.Duration
	Draw     time.Duration
	Hold     time.Duration
}

func DefaultTimeline() Timeline {
	return Timeline{
		Scribble: config.ScribbleDuration,
		Draw:     config.DrawDuration,
		Hold:     config.HoldDuration,
	}
}

// Total is the elapsed time at which the timeline reaches Finished.
func (tl Timeline) Total() time.Duration {
	return tl.Scribble + tl.Draw + tl.Hold
}

// At maps elapsed time to the active phase and the fraction of that phase
// completed. Negative elapsed time is treated as zero. Finished always
// reports progress 1.
func (tl Timeline) At(elapsed time.Duration) (Phase, float64) {
	if elapsed < 0 {
		elapsed = 0
	}
	drawEnd := tl.Scribble + tl.Draw
	holdEnd := drawEnd + tl.Hold

	switch {
	case elapsed < tl.Scribble:
		return Scribbling, fraction(elapsed, tl.Scribble)
	case elapsed < drawEnd:
		return Drawing, fraction(elapsed-tl.Scribble, tl.Draw)
	case elapsed < holdEnd:
		return Holding, fraction(elapsed-drawEnd, tl.Hold)
	default:
		return Finished, 1
	}
}

func fraction(d, total time.Duration) float64 {
	return clamp01(float64(d) / float64(total))
}
