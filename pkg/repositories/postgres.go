package repositories

import (
	"context"
	"fmt"

	"github.com/cbodonnell/stardrift/pkg/log"
	"github.com/cbodonnell/stardrift/pkg/repositories/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresRepository struct {
	conn *pgx.Conn
}

var _ Repository = &PostgresRepository{}

// NewPostgresRepository connects to the database and runs the migrations.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string, migrations string) (Repository, error) {
	conn, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}

	err = runMigrations(ctx, migrations, func(ctx context.Context, query string) error {
		_, err := conn.Exec(ctx, query)
		return err
	})
	if err != nil {
		conn.Close(ctx)
		return nil, err
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("failed to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return conn, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) SaveLastScore(ctx context.Context, record *models.ScoreRecord) error {
	q := `
	INSERT INTO last_score (slot, run_id, score, recorded_at) VALUES ($1, $2, $3, $4)
	ON CONFLICT (slot) DO UPDATE SET run_id = $2, score = $3, recorded_at = $4;
	`
	_, err := r.conn.Exec(ctx, q, lastScoreSlot, record.RunID.String(), record.Score, record.RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to save last score: %v", err)
	}

	return nil
}

func (r *PostgresRepository) LoadLastScore(ctx context.Context) (*models.ScoreRecord, error) {
	q := `
	SELECT run_id::text, score, recorded_at FROM last_score WHERE slot = $1;
	`
	var runID string
	record := &models.ScoreRecord{}
	if err := r.conn.QueryRow(ctx, q, lastScoreSlot).Scan(&runID, &record.Score, &record.RecordedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan last score: %v", err)
	}

	parsedRunID, err := uuid.Parse(runID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse run id: %v", err)
	}
	record.RunID = parsedRunID

	return record, nil
}
