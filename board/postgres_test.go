package board

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Set CANTSTOP_TEST_POSTGRES_DSN to run against a live database.
func TestPostgres(t *testing.T) {
	dsn := os.Getenv("CANTSTOP_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("CANTSTOP_TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()

	b, err := NewPostgres(ctx, dsn, uuid.New())
	require.NoError(t, err)
	defer b.Close(ctx)

	require.NoError(t, b.Clear(ctx))
	require.NoError(t, b.RecordScore(ctx, "Ana", 9, 1))
	require.NoError(t, b.RecordScore(ctx, "Ben", 9, 1))

	grid, err := b.Grid(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Ana", "Ben"}, grid[CellFor(9, 1)])

	require.NoError(t, b.Clear(ctx))
	grid, err = b.Grid(ctx)
	require.NoError(t, err)
	require.Empty(t, grid)
}
