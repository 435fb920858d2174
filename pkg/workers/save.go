package workers

import (
	"context"
	"time"

	"github.com/cbodonnell/stardrift/pkg/log"
	"github.com/cbodonnell/stardrift/pkg/repositories"
	"github.com/cbodonnell/stardrift/pkg/repositories/models"
	"github.com/google/uuid"
)

// DefaultSaveTimeout bounds a single repository write.
const DefaultSaveTimeout = 5 * time.Second

type SaveScoreWorker struct {
	repository    repositories.Repository
	saveScoreChan <-chan SaveScoreRequest
	timeout       time.Duration
}

type NewSaveScoreWorkerOptions struct {
	Repository    repositories.Repository
	SaveScoreChan <-chan SaveScoreRequest
	Timeout       time.Duration
}

type SaveScoreRequest struct {
	Timestamp int64
	RunID     uuid.UUID
	Score     int
}

// NewSaveScoreWorker creates a new SaveScoreWorker.
// The worker writes scores produced by the game loop to the repository
// off the game loop.
func NewSaveScoreWorker(opts NewSaveScoreWorkerOptions) *SaveScoreWorker {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultSaveTimeout
	}
	return &SaveScoreWorker{
		repository:    opts.Repository,
		saveScoreChan: opts.SaveScoreChan,
		timeout:       timeout,
	}
}

// Start processes save requests until the context is done, then flushes
// any requests that are still buffered.
func (w *SaveScoreWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.flush(ctx)
			return
		case saveRequest, ok := <-w.saveScoreChan:
			if !ok {
				return
			}
			w.saveScore(ctx, saveRequest)
		}
	}
}

func (w *SaveScoreWorker) flush(ctx context.Context) {
	for {
		select {
		case saveRequest, ok := <-w.saveScoreChan:
			if !ok {
				return
			}
			w.saveScore(ctx, saveRequest)
		default:
			return
		}
	}
}

func (w *SaveScoreWorker) saveScore(ctx context.Context, saveRequest SaveScoreRequest) {
	// writes outlive the worker context so shutdown does not drop the last score
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.timeout)
	defer cancel()

	record := &models.ScoreRecord{
		RunID:      saveRequest.RunID,
		Score:      saveRequest.Score,
		RecordedAt: time.UnixMilli(saveRequest.Timestamp),
	}
	if err := w.repository.SaveLastScore(ctx, record); err != nil {
		log.Error("Failed to save score: %v", err)
		return
	}
	log.Debug("Saved score %d of run %s", record.Score, record.RunID)
}
