package repositories

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/cbodonnell/stardrift/pkg/repositories/models"
)

// lastScoreSlot is the key of the single last-score row.
const lastScoreSlot = "last"

// Repository stores the last score. Saving overwrites the previous record.
type Repository interface {
	Close(ctx context.Context) error
	SaveLastScore(ctx context.Context, record *models.ScoreRecord) error
	// LoadLastScore returns ErrNotFound when no score has been saved.
	LoadLastScore(ctx context.Context) (*models.ScoreRecord, error)
}

// runMigrations executes every file in the migrations directory in name order.
func runMigrations(ctx context.Context, migrations string, exec func(ctx context.Context, query string) error) error {
	dir, err := os.ReadDir(migrations)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %v", err)
	}

	names := make([]string, 0, len(dir))
	for _, entry := range dir {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		migrationPath := filepath.Join(migrations, name)
		migration, err := os.ReadFile(migrationPath)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %v", migrationPath, err)
		}

		if err := exec(ctx, string(migration)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %v", migrationPath, err)
		}
	}

	return nil
}
