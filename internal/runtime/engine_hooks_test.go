package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/tendril/internal/runtime"
	"github.com/aretw0/tendril/internal/testutils"
	"github.com/aretw0/tendril/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_LifecycleHooks(t *testing.T) {
	var levels []*domain.LevelEvent
	var configs []*domain.ConfigurationEvent
	var halts []*domain.HaltEvent

	hooks := domain.LifecycleHooks{
		OnLevel: func(_ context.Context, e *domain.LevelEvent) {
			levels = append(levels, e)
		},
		OnConfiguration: func(_ context.Context, e *domain.ConfigurationEvent) {
			configs = append(configs, e)
		},
		OnHalt: func(_ context.Context, e *domain.HaltEvent) {
			halts = append(halts, e)
		},
	}

	e := mustEngine(t, runtime.WithHooks(hooks))
	res, err := e.Simulate(context.Background(), testutils.APlusMachine(), "aaa")
	require.NoError(t, err)

	// Four levels completed before the accepting configuration halted the
	// run mid-level five.
	require.Len(t, levels, 4)
	for i, ev := range levels {
		assert.Equal(t, i+1, ev.Level)
		assert.Equal(t, domain.EventLevel, ev.Type)
		assert.Equal(t, "a_plus", ev.Machine)
		assert.False(t, ev.Timestamp.IsZero())
	}

	require.Len(t, configs, res.Explored)
	last := configs[len(configs)-1]
	assert.True(t, last.Terminal)
	assert.Equal(t, "qaccept", last.Configuration.State)

	require.Len(t, halts, 1)
	assert.Equal(t, domain.StatusAccepted, halts[0].Status)
	assert.Equal(t, res.Levels, halts[0].Levels)
	assert.Equal(t, res.Explored, halts[0].Explored)
}

func TestEngine_BranchingAccounting(t *testing.T) {
	perLevel := map[int]int{}   // dequeued configurations per level
	outDegrees := map[int]int{} // summed out-degrees per level

	hooks := domain.LifecycleHooks{
		OnConfiguration: func(_ context.Context, e *domain.ConfigurationEvent) {
			perLevel[e.Level]++
			outDegrees[e.Level] += e.OutDegree
		},
	}

	e := mustEngine(t, runtime.WithHooks(hooks))
	res, err := e.Simulate(context.Background(), testutils.ForkMachine(), "aa")
	require.NoError(t, err)
	require.Equal(t, domain.StatusAccepted, res.Status)

	// One initial configuration at level zero; afterwards each level holds
	// exactly the successors spawned by the previous one.
	assert.Equal(t, 1, perLevel[0])
	for k := 1; k <= res.Levels; k++ {
		assert.Equal(t, outDegrees[k-1], perLevel[k], "level %d", k)
	}
}

func TestEngine_HeadUnderBlank(t *testing.T) {
	m := &domain.Machine{
		Name:          "blank_accept",
		States:        []string{"q0", "qaccept", "qreject"},
		InputAlphabet: []string{"a"},
		TapeAlphabet:  []string{"a", "_"},
		Start:         "q0",
		Accept:        "qaccept",
		Reject:        "qreject",
		Transitions: []domain.Transition{
			{From: "q0", Read: "_", To: "qaccept", Write: "_", Move: domain.MoveRight},
		},
	}

	e := mustEngine(t)
	res, err := e.Simulate(context.Background(), m, "")
	require.NoError(t, err)

	// The initial right tape is empty, so the blank-reading rule must fire.
	assert.Equal(t, domain.StatusAccepted, res.Status)
	require.Len(t, res.Trace, 2)
	assert.Equal(t, domain.Configuration{Left: "_", State: "qaccept", Right: "_"}, res.Trace[1])
}
