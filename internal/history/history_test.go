package history

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(db)
}

func newRun(trade, source string, at time.Time) *RunRecord {
	return &RunRecord{
		ID:            uuid.NewString(),
		DocumentID:    uuid.NewString(),
		Trade:         trade,
		State:         "NSW",
		Source:        source,
		ActivityCount: 7,
		WarningCount:  1,
		DurationMs:    420,
		CreatedAt:     at,
	}
}

func TestStore_RecordAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	run := newRun("Carpentry", "deterministic", time.Now().UTC().Truncate(time.Second))
	require.NoError(t, store.Record(ctx, run))

	got, err := store.GetByID(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.DocumentID, got.DocumentID)
	assert.Equal(t, "Carpentry", got.Trade)
	assert.Equal(t, "deterministic", got.Source)
	assert.Equal(t, 7, got.ActivityCount)
	assert.True(t, run.CreatedAt.Equal(got.CreatedAt))
}

func TestStore_GetByID_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ListRecent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		run := newRun("Electrical", "ai", base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, store.Record(ctx, run))
	}

	runs, err := store.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.True(t, runs[0].CreatedAt.After(runs[1].CreatedAt), "newest first")
	assert.True(t, runs[1].CreatedAt.After(runs[2].CreatedAt))
}

func TestStore_ListByTrade(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, store.Record(ctx, newRun("Carpentry", "ai", now)))
	require.NoError(t, store.Record(ctx, newRun("Electrical", "deterministic", now)))
	require.NoError(t, store.Record(ctx, newRun("Carpentry", "deterministic", now.Add(time.Minute))))

	runs, err := store.ListByTrade(ctx, "Carpentry", 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	for _, r := range runs {
		assert.Equal(t, "Carpentry", r.Trade)
	}
}

func TestStore_RejectsUnknownSource(t *testing.T) {
	store := newTestStore(t)

	run := newRun("Carpentry", "psychic", time.Now().UTC())
	err := store.Record(context.Background(), run)
	assert.Error(t, err, "source column is constrained to known generator paths")
}

func TestOpenDB_MigrationsIdempotent(t *testing.T) {
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, migrate(db))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM generation_runs`).Scan(&n))
	assert.Zero(t, n)
}
