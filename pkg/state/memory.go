package state

import (
	"sync"
	"time"

	"github.com/cbodonnell/stardrift/pkg/log"
	"github.com/cbodonnell/stardrift/pkg/workers"
	"github.com/google/uuid"
)

// InMemoryScoreStore serves the last score from memory and forwards every
// write to the save worker when a channel is configured.
type InMemoryScoreStore struct {
	lock          sync.RWMutex
	lastScore     int
	hasScore      bool
	runID         uuid.UUID
	saveScoreChan chan<- workers.SaveScoreRequest
}

var _ ScoreStore = &InMemoryScoreStore{}

func NewInMemoryScoreStore(saveScoreChan chan<- workers.SaveScoreRequest) *InMemoryScoreStore {
	return &InMemoryScoreStore{
		saveScoreChan: saveScoreChan,
	}
}

// Preload sets the last score without forwarding it to the save worker.
func (s *InMemoryScoreStore) Preload(value int) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.lastScore = value
	s.hasScore = true
}

func (s *InMemoryScoreStore) RecordRun(runID uuid.UUID) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.runID = runID
}

func (s *InMemoryScoreStore) SetLastScore(value int) {
	s.lock.Lock()
	s.lastScore = value
	s.hasScore = true
	runID := s.runID
	if runID == uuid.Nil {
		runID = uuid.New()
	}
	s.runID = uuid.Nil
	s.lock.Unlock()

	if s.saveScoreChan == nil {
		return
	}
	saveRequest := workers.SaveScoreRequest{
		Timestamp: time.Now().UnixMilli(),
		RunID:     runID,
		Score:     value,
	}
	// never block the game loop on the worker
	select {
	case s.saveScoreChan <- saveRequest:
	default:
		log.Error("Save score queue is full, score %d of run %s not written", value, runID)
	}
}

func (s *InMemoryScoreStore) GetLastScore(defaultValue int) int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if !s.hasScore {
		return defaultValue
	}
	return s.lastScore
}
