// Package clock provides the per-tick time source of the game.
// Scaled time is unscaled time multiplied by the time-scale, so a time-scale
// of 0 freezes everything that is driven by scaled time.
package clock

import "github.com/cbodonnell/stardrift/pkg/log"

// Frame is the time elapsed during one tick, in seconds.
type Frame struct {
	// Unscaled is the real time elapsed, independent of the time-scale.
	Unscaled float64
	// Scaled is Unscaled multiplied by the time-scale at the time of the tick.
	Scaled float64
}

// TimeScaler is the writable part of the clock.
type TimeScaler interface {
	SetTimeScale(scale float64)
	TimeScale() float64
}

type Clock struct {
	timeScale float64
	// unscaledTotal and scaledTotal are the accumulated times since creation.
	unscaledTotal float64
	scaledTotal   float64
}

var _ TimeScaler = &Clock{}

func New() *Clock {
	return &Clock{
		timeScale: 1,
	}
}

// SetTimeScale sets the multiplier applied to subsequent ticks.
// Negative values are clamped to 0.
func (c *Clock) SetTimeScale(scale float64) {
	if scale < 0 {
		log.Warn("Negative time scale %v clamped to 0", scale)
		scale = 0
	}
	c.timeScale = scale
}

func (c *Clock) TimeScale() float64 {
	return c.timeScale
}

// Tick advances the clock by the given unscaled time and returns the frame.
func (c *Clock) Tick(unscaled float64) Frame {
	if unscaled < 0 {
		unscaled = 0
	}
	frame := Frame{
		Unscaled: unscaled,
		Scaled:   unscaled * c.timeScale,
	}
	c.unscaledTotal += frame.Unscaled
	c.scaledTotal += frame.Scaled
	return frame
}

// Time returns the accumulated scaled time.
func (c *Clock) Time() float64 {
	return c.scaledTotal
}

// UnscaledTime returns the accumulated unscaled time.
func (c *Clock) UnscaledTime() float64 {
	return c.unscaledTotal
}
