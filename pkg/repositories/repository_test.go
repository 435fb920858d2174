package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/cbodonnell/stardrift/pkg/repositories/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sqliteMigrations = "../../migrations/sqlite"

func TestRepositories_lastScore(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		new  func(t *testing.T) Repository
	}{
		{
			name: "memory",
			new: func(t *testing.T) Repository {
				return NewMemoryRepository()
			},
		},
		{
			name: "sqlite",
			new: func(t *testing.T) Repository {
				path := filepath.Join(t.TempDir(), "stardrift.db")
				repository, err := NewSQLiteRepository(ctx, path, sqliteMigrations)
				require.NoError(t, err)
				return repository
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repository := tt.new(t)
			defer repository.Close(ctx)

			_, err := repository.LoadLastScore(ctx)
			assert.True(t, IsNotFound(err), "expected not found, got %v", err)

			recordedAt := time.UnixMilli(time.Now().UnixMilli())
			first := &models.ScoreRecord{RunID: uuid.New(), Score: 30, RecordedAt: recordedAt}
			require.NoError(t, repository.SaveLastScore(ctx, first))

			got, err := repository.LoadLastScore(ctx)
			require.NoError(t, err)
			assert.Equal(t, first.RunID, got.RunID)
			assert.Equal(t, 30, got.Score)
			assert.True(t, recordedAt.Equal(got.RecordedAt))

			second := &models.ScoreRecord{RunID: uuid.New(), Score: 0, RecordedAt: recordedAt.Add(time.Minute)}
			require.NoError(t, repository.SaveLastScore(ctx, second))

			got, err = repository.LoadLastScore(ctx)
			require.NoError(t, err)
			assert.Equal(t, second.RunID, got.RunID)
			assert.Equal(t, 0, got.Score)
		})
	}
}

func TestNewSQLiteRepository_migrationsMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stardrift.db")
	_, err := NewSQLiteRepository(context.Background(), path, filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestMemoryRepository_copies(t *testing.T) {
	ctx := context.Background()
	repository := NewMemoryRepository()
	record := &models.ScoreRecord{RunID: uuid.New(), Score: 10}
	require.NoError(t, repository.SaveLastScore(ctx, record))
	record.Score = 99

	got, err := repository.LoadLastScore(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Score)
}
