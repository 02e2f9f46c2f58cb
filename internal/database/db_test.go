package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-cafe-services/internal/database"
)

func TestOpenCreatesFileAndSchemasAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")
	db, err := database.Open(path)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	// Running schema creation twice must not fail; startup does this on
	// every boot against an existing file.
	require.NoError(t, database.EnsureMovieSchema(ctx, db))
	require.NoError(t, database.EnsureMovieSchema(ctx, db))
	require.NoError(t, database.EnsureCafeSchema(ctx, db))
	require.NoError(t, database.EnsureCafeSchema(ctx, db))
}
