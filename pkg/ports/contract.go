package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/tendril/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStoreContract runs a suite of tests to verify that a RunStore
// implementation adheres to the defined interface contract.
func RunStoreContract(t *testing.T, store RunStore) {
	ctx := context.Background()
	runID := "contract-test-run-" + time.Now().Format("20060102150405")

	sample := func(id string) *domain.Run {
		return &domain.Run{
			ID: id,
			Result: domain.Result{
				Machine: "a_plus",
				Input:   "aaa",
				Status:  domain.StatusAccepted,
				Trace: []domain.Configuration{
					{Left: "", State: "q0", Right: "aaa"},
					{Left: "a", State: "q1", Right: "aa_"},
				},
				Levels:    4,
				Explored:  2,
				MaxDepth:  50,
				Mode:      domain.ModeExhaustive,
				Metric:    domain.MetricStateDiversity,
				Branching: 1.0,
			},
			CreatedAt: time.Now().UTC().Truncate(time.Second),
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		run := sample(runID)

		err := store.Save(ctx, runID, run)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, run.ID, loaded.ID)
		assert.Equal(t, run.Result.Status, loaded.Result.Status)
		assert.Equal(t, run.Result.Trace, loaded.Result.Trace)
		assert.Equal(t, run.Result.Levels, loaded.Result.Levels)
		assert.InDelta(t, run.Result.Branching, loaded.Result.Branching, 1e-9)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, runID, sample(runID))
		require.NoError(t, err)

		err = store.Delete(ctx, runID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound, "Load after Delete should return ErrRunNotFound")

		err = store.Delete(ctx, runID)
		assert.NoError(t, err, "Delete of an unknown ID should be a no-op")
	})

	t.Run("List", func(t *testing.T) {
		id1 := runID + "-1"
		id2 := runID + "-2"
		_ = store.Save(ctx, id1, sample(id1))
		_ = store.Save(ctx, id2, sample(id2))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		runs, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, runs, id1)
		assert.Contains(t, runs, id2)
	})
}
