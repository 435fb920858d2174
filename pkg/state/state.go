package state

import "github.com/google/uuid"

// ScoreStore provides shared access to the last score.
// Implementations must be thread-safe.
type ScoreStore interface {
	// SetLastScore overwrites the last score.
	SetLastScore(value int)
	// GetLastScore returns the last score, or defaultValue if none was set.
	GetLastScore(defaultValue int) int
	// RecordRun sets the run id attached to the next SetLastScore.
	RecordRun(runID uuid.UUID)
}
