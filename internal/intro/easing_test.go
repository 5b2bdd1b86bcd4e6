package intro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEaseInOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"start", 0, 0},
		{"quarter", 0.25, 0.0625},
		{"middle", 0.5, 0.5},
		{"three quarters", 0.75, 0.9375},
		{"end", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, EaseInOutCubic(tt.input), 1e-9)
		})
	}
}

func TestEaseInOutCubicShape(t *testing.T) {
	t.Run("monotonic", func(t *testing.T) {
		prev := EaseInOutCubic(0)
		for i := 1; i <= 1000; i++ {
			v := EaseInOutCubic(float64(i) / 1000)
			assert.GreaterOrEqual(t, v, prev, "step %d", i)
			prev = v
		}
	})

	t.Run("symmetric about the midpoint", func(t *testing.T) {
		for i := 0; i <= 100; i++ {
			x := float64(i) / 100
			assert.InDelta(t, 1-EaseInOutCubic(x), EaseInOutCubic(1-x), 1e-9, "x=%v", x)
		}
	})

	t.Run("stays in range", func(t *testing.T) {
		for i := 0; i <= 100; i++ {
			v := EaseInOutCubic(float64(i) / 100)
			assert.False(t, math.IsNaN(v))
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	})
}
