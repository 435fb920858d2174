package session

import (
	"github.com/cbodonnell/stardrift/pkg/constants"
	"github.com/cbodonnell/stardrift/pkg/log"
)

// Timer is a repeating timer driven by scaled time. It fires first after
// initialDelay and then every interval.
type Timer struct {
	initialDelay float64
	interval     float64
	onFire       func()

	armed   bool
	elapsed float64
	// next is the elapsed time at which the timer fires next.
	next float64
}

func NewTimer(initialDelay, interval float64, onFire func()) *Timer {
	if initialDelay < 0 {
		log.Warn("Timer initial delay %v clamped to 0", initialDelay)
		initialDelay = 0
	}
	if interval < constants.MinSpawnInterval {
		log.Warn("Timer interval %v raised to %v", interval, constants.MinSpawnInterval)
		interval = constants.MinSpawnInterval
	}
	return &Timer{
		initialDelay: initialDelay,
		interval:     interval,
		onFire:       onFire,
		next:         initialDelay,
	}
}

// Start arms the timer from zero elapsed time.
func (t *Timer) Start() {
	t.armed = true
	t.elapsed = 0
	t.next = t.initialDelay
}

// Stop disarms the timer and discards elapsed time.
func (t *Timer) Stop() {
	t.armed = false
	t.elapsed = 0
	t.next = t.initialDelay
}

func (t *Timer) Armed() bool {
	return t.armed
}

// Remaining returns the time left until the next fire.
func (t *Timer) Remaining() float64 {
	return t.next - t.elapsed
}

// Advance moves the timer forward by dt and returns how many times it fired.
// A non-positive dt never advances the timer.
func (t *Timer) Advance(dt float64) int {
	if !t.armed || dt <= 0 {
		return 0
	}
	t.elapsed += dt
	fired := 0
	for t.armed && t.elapsed >= t.next {
		t.next += t.interval
		fired++
		if t.onFire != nil {
			t.onFire()
		}
	}
	return fired
}
