package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClock_Tick(t *testing.T) {
	tests := []struct {
		name      string
		timeScale float64
		unscaled  float64
		want      Frame
	}{
		{name: "normal speed", timeScale: 1, unscaled: 0.5, want: Frame{Unscaled: 0.5, Scaled: 0.5}},
		{name: "frozen", timeScale: 0, unscaled: 0.5, want: Frame{Unscaled: 0.5, Scaled: 0}},
		{name: "double speed", timeScale: 2, unscaled: 0.25, want: Frame{Unscaled: 0.25, Scaled: 0.5}},
		{name: "negative elapsed", timeScale: 1, unscaled: -1, want: Frame{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.SetTimeScale(tt.timeScale)
			assert.Equal(t, tt.want, c.Tick(tt.unscaled))
		})
	}
}

func TestClock_totals(t *testing.T) {
	c := New()
	c.Tick(1)
	c.SetTimeScale(0)
	c.Tick(1)
	c.SetTimeScale(-3)
	assert.Equal(t, 0.0, c.TimeScale())
	c.Tick(1)

	assert.Equal(t, 1.0, c.Time())
	assert.Equal(t, 3.0, c.UnscaledTime())
}
