package models

import (
	"time"

	"github.com/google/uuid"
)

// ScoreRecord is the persisted result of the most recent session.
type ScoreRecord struct {
	RunID      uuid.UUID `json:"runId"`
	Score      int       `json:"score"`
	RecordedAt time.Time `json:"recordedAt"`
}
