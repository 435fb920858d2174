package session

import "github.com/cbodonnell/stardrift/pkg/log"

// ScoreTracker holds the score of the current session. The score never drops below 0.
type ScoreTracker struct {
	current int
}

func NewScoreTracker(initial int) *ScoreTracker {
	s := &ScoreTracker{}
	s.Reset(initial)
	return s
}

// Reset sets the score to initial regardless of its previous value.
func (s *ScoreTracker) Reset(initial int) {
	if initial < 0 {
		log.Warn("Initial score %d clamped to 0", initial)
		initial = 0
	}
	s.current = initial
}

// Add adds delta to the score and returns the new score.
func (s *ScoreTracker) Add(delta int) int {
	s.current += delta
	if s.current < 0 {
		s.current = 0
	}
	return s.current
}

func (s *ScoreTracker) Snapshot() int {
	return s.current
}
