package intro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimelineAt(t *testing.T) {
	tl := DefaultTimeline()
	ms := time.Millisecond

	tests := []struct {
		name     string
		elapsed  time.Duration
		phase    Phase
		progress float64
	}{
		{"before start", -10 * ms, Scribbling, 0},
		{"start", 0, Scribbling, 0},
		{"mid scribble", 350 * ms, Scribbling, 0.5},
		{"scribble boundary", 700 * ms, Drawing, 0},
		{"mid draw", 1550 * ms, Drawing, 0.5},
		{"draw boundary", 2400 * ms, Holding, 0},
		{"in hold", 2700 * ms, Holding, 300.0 / 650.0},
		{"hold boundary", 3050 * ms, Finished, 1},
		{"after end", 3100 * ms, Finished, 1},
		{"long after", time.Hour, Finished, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phase, progress := tl.At(tt.elapsed)
			assert.Equal(t, tt.phase, phase)
			assert.InDelta(t, tt.progress, progress, 1e-9)
		})
	}
}

func TestTimelinePartition(t *testing.T) {
	tl := DefaultTimeline()
	assert.Equal(t, 3050*time.Millisecond, tl.Total())

	prev := Scribbling
	seen := map[Phase]int{}
	for ms := 0; ms <= 4000; ms++ {
		phase, progress := tl.At(time.Duration(ms) * time.Millisecond)
		assert.GreaterOrEqual(t, int(phase), int(prev), "phase went backwards at %dms", ms)
		assert.GreaterOrEqual(t, progress, 0.0)
		assert.LessOrEqual(t, progress, 1.0)
		seen[phase]++
		prev = phase
	}

	assert.Equal(t, 700, seen[Scribbling])
	assert.Equal(t, 1700, seen[Drawing])
	assert.Equal(t, 650, seen[Holding])
	assert.Equal(t, 951, seen[Finished])
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "scribbling", Scribbling.String())
	assert.Equal(t, "drawing", Drawing.String())
	assert.Equal(t, "holding", Holding.String())
	assert.Equal(t, "finished", Finished.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
