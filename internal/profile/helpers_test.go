package profile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nerrad567/gray-logic-input/internal/infrastructure/database"
	"github.com/nerrad567/gray-logic-input/internal/intern"
	"github.com/nerrad567/gray-logic-input/internal/processor"
	"github.com/nerrad567/gray-logic-input/internal/processor/builtin"
	"github.com/nerrad567/gray-logic-input/migrations"
)

// setupTestRepo opens a migrated database in a temporary directory.
func setupTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()

	ctx := context.Background()
	db, err := database.Open(ctx, database.Config{
		Path:        filepath.Join(t.TempDir(), "profiles.db"),
		WALMode:     true,
		BusyTimeout: 5,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() }) //nolint:errcheck // Test cleanup

	require.NoError(t, db.Migrate(ctx, migrations.FS))
	return NewSQLiteRepository(db.DB)
}

func testRegistry() *processor.Registry {
	return builtin.NewRegistry(processor.WithTable(intern.NewTable()))
}
