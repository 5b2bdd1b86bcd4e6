// Package sound renders a procedural brush soundtrack that follows the intro
// timeline: pen scratches while the hairs scribble, a soft swish while the
// ribbon sweeps, then silence.
package sound

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/ink-intro/internal/intro"
)

const (
	scratchLevel = 0.12
	clickChance  = 0.002
	clickLevel   = 0.45
	swishLevel   = 0.35
	swishCutoff  = 0.08 // one-pole lowpass coefficient
	clickDecay   = 0.92
)

// Swish is a beep.Streamer. It ends once the timeline reaches Finished.
type Swish struct {
	rate     beep.SampleRate
	timeline intro.Timeline
	rng      intro.Random

	pos   int
	total int
	lp    float64
	click float64
}

func NewSwish(rate beep.SampleRate, rng intro.Random) *Swish {
	tl := intro.DefaultTimeline()
	return &Swish{
		rate:     rate,
		timeline: tl,
		rng:      rng,
		total:    rate.N(tl.Total()),
	}
}

func (s *Swish) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		v := s.next(s.rate.D(s.pos))
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *Swish) Err() error { return nil }

// Len is the stream length in samples.
func (s *Swish) Len() int { return s.total }

func (s *Swish) next(at time.Duration) float64 {
	white := s.rng.Float64()*2 - 1
	s.lp += (white - s.lp) * swishCutoff

	phase, k := s.timeline.At(at)
	var v float64
	switch phase {
	case intro.Scribbling:
		if s.rng.Float64() < clickChance*(1-k) {
			s.click = clickLevel * (1 - k)
		}
		v = white*scratchLevel*(1-0.6*k) + white*s.click
		s.click *= clickDecay
	case intro.Drawing:
		v = s.lp * 4 * swishLevel * easeSpeed(k) / 3
	}
	return math.Max(-1, math.Min(1, v))
}

// easeSpeed is the derivative of intro.EaseInOutCubic, peaking at 3 for k=0.5.
func easeSpeed(k float64) float64 {
	if k < 0.5 {
		return 12 * k * k
	}
	d := -2*k + 2
	return 3 * d * d
}

// Play initializes the speaker and starts the swish. Playback runs on the
// speaker's own goroutine.
func Play(rate beep.SampleRate, seed int64, logger *log.Logger) error {
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	s := NewSwish(rate, intro.NewRandom(seed))
	speaker.Play(s)
	logger.Debug("sound started", "rate", int(rate), "samples", s.Len())
	return nil
}
