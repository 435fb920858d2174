package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreTracker(t *testing.T) {
	tests := []struct {
		name    string
		initial int
		deltas  []int
		want    int
	}{
		{name: "starts at initial", initial: 5, want: 5},
		{name: "adds collectibles", initial: 0, deltas: []int{10, 10, 10}, want: 30},
		{name: "penalty", initial: 20, deltas: []int{-5}, want: 15},
		{name: "clamped at zero", initial: 10, deltas: []int{-25, 3}, want: 3},
		{name: "negative initial", initial: -4, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScoreTracker(tt.initial)
			for _, d := range tt.deltas {
				s.Add(d)
			}
			assert.Equal(t, tt.want, s.Snapshot())
		})
	}
}

func TestScoreTracker_Reset(t *testing.T) {
	s := NewScoreTracker(0)
	s.Add(40)
	s.Reset(7)
	assert.Equal(t, 7, s.Snapshot())
	assert.Equal(t, 7, s.Snapshot(), "Snapshot must not mutate")
}
