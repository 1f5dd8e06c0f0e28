package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tendril/internal/adapters/sqlite"
	"github.com/aretw0/tendril/pkg/domain"
	"github.com/aretw0/tendril/pkg/ports"
)

func newTestStore(t *testing.T) (*sqlite.Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "runs.db")
	store, err := sqlite.New(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func sampleRun(id string, status domain.Status, createdAt time.Time) *domain.Run {
	return &domain.Run{
		ID: id,
		Result: domain.Result{
			Machine:  "a_plus",
			Input:    "aaa",
			Status:   status,
			Levels:   4,
			Explored: 5,
		},
		CreatedAt: createdAt,
	}
}

func TestSQLiteStore_Contract(t *testing.T) {
	store, _ := newTestStore(t)
	ports.RunStoreContract(t, store)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	ctx := context.Background()

	store, err := sqlite.New(path)
	require.NoError(t, err)

	run := sampleRun("r1", domain.StatusAccepted, time.Now().UTC())
	require.NoError(t, store.Save(ctx, "r1", run))
	require.NoError(t, store.Close())

	reopened, err := sqlite.New(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "a_plus", loaded.Result.Machine)
	assert.Equal(t, domain.StatusAccepted, loaded.Result.Status)
}

func TestSQLiteStore_ListOrderedByCreation(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Save(ctx, "newest", sampleRun("newest", domain.StatusAccepted, base.Add(2*time.Hour))))
	require.NoError(t, store.Save(ctx, "oldest", sampleRun("oldest", domain.StatusRejected, base)))
	require.NoError(t, store.Save(ctx, "middle", sampleRun("middle", domain.StatusTimedOut, base.Add(time.Hour))))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"oldest", "middle", "newest"}, ids)
}

func TestSQLiteStore_SaveReplaces(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first := sampleRun("r1", domain.StatusTimedOut, time.Now().UTC())
	require.NoError(t, store.Save(ctx, "r1", first))

	second := sampleRun("r1", domain.StatusAccepted, time.Now().UTC())
	require.NoError(t, store.Save(ctx, "r1", second))

	loaded, err := store.Load(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, loaded.Result.Status)

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}
