package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cbodonnell/stardrift/pkg/repositories/models"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

var _ Repository = &SQLiteRepository{}

func NewSQLiteRepository(ctx context.Context, path string, migrations string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	err = runMigrations(ctx, migrations, func(ctx context.Context, query string) error {
		_, err := db.ExecContext(ctx, query)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveLastScore(ctx context.Context, record *models.ScoreRecord) error {
	q := `
	INSERT OR REPLACE INTO last_score (slot, run_id, score, recorded_at)
	VALUES (?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, q, lastScoreSlot, record.RunID.String(), record.Score, record.RecordedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to save last score: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) LoadLastScore(ctx context.Context) (*models.ScoreRecord, error) {
	q := `
	SELECT run_id, score, recorded_at FROM last_score WHERE slot = ?;
	`
	var runID string
	var score int
	var recordedAt int64
	if err := r.db.QueryRowContext(ctx, q, lastScoreSlot).Scan(&runID, &score, &recordedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan last score: %v", err)
	}

	parsedRunID, err := uuid.Parse(runID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse run id: %v", err)
	}

	return &models.ScoreRecord{
		RunID:      parsedRunID,
		Score:      score,
		RecordedAt: time.UnixMilli(recordedAt),
	}, nil
}
