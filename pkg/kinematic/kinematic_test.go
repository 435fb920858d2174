package kinematic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplacement(t *testing.T) {
	assert.Equal(t, 10.0, Displacement(5, 2, 0))
	assert.InDelta(t, -4.9, Displacement(0, 1, -9.8), 1e-9)
}

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		position Vector
		velocity Vector
		time     float64
		want     Vector
	}{
		{name: "stationary", position: Vector{X: 1, Y: 2}, velocity: Vector{}, time: 1, want: Vector{X: 1, Y: 2}},
		{name: "moving left", position: Vector{X: 100, Y: 50}, velocity: Vector{X: -60, Y: 10}, time: 0.5, want: Vector{X: 70, Y: 55}},
		{name: "frozen time", position: Vector{X: 100, Y: 50}, velocity: Vector{X: -60, Y: 10}, time: 0, want: Vector{X: 100, Y: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Move(tt.position, tt.velocity, tt.time))
		})
	}
}

func TestVector_Normalize(t *testing.T) {
	assert.Equal(t, Vector{}, Vector{}.Normalize())
	n := Vector{X: 3, Y: 4}.Normalize()
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Y, 1e-9)
}
