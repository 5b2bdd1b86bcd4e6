package game

import (
	"time"

	"github.com/iburimskiy/ink-intro/internal/intro"
)

// overlay is the paper layer the intro is drawn on. Once faded out it
// reports transition end exactly once and counts as removed.
type overlay struct {
	opacity  float64
	duration time.Duration

	fading    bool
	fadeStart time.Time
	removed   bool

	onTransitionEnd func()
}

func newOverlay(duration time.Duration) *overlay {
	return &overlay{opacity: 1, duration: duration}
}

// fadeOut starts the fade transition. Repeated calls are ignored.
func (o *overlay) fadeOut(now time.Time) {
	if o.fading || o.removed {
		return
	}
	o.fading = true
	o.fadeStart = now
}

func (o *overlay) update(now time.Time) {
	if !o.fading || o.removed {
		return
	}
	p := ratio(now.Sub(o.fadeStart), o.duration)
	o.opacity = 1 - intro.EaseInOutCubic(p)
	if p < 1 {
		return
	}
	o.opacity = 0
	o.removed = true
	if fn := o.onTransitionEnd; fn != nil {
		o.onTransitionEnd = nil
		fn()
	}
}
