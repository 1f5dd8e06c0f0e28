package observability

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tendril/internal/runtime"
	"github.com/aretw0/tendril/internal/testutils"
	"github.com/aretw0/tendril/pkg/domain"
)

func TestMetricsObserveSimulation(t *testing.T) {
	m := New()

	engine, err := runtime.NewEngine(runtime.WithHooks(m.Hooks()))
	require.NoError(t, err)

	res, err := engine.Simulate(context.Background(), testutils.APlusMachine(), "aaa")
	require.NoError(t, err)
	require.Equal(t, domain.StatusAccepted, res.Status)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.simulations.WithLabelValues("accepted")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.simulations.WithLabelValues("rejected")))
	assert.Equal(t, float64(res.Explored), testutil.ToFloat64(m.explored))

	// The run lands once on the per-run histograms; the frontier histogram
	// gets one observation per completed level.
	assert.Equal(t, uint64(1), histogramSamples(t, m, "tendril_simulation_levels"))
	assert.Equal(t, uint64(1), histogramSamples(t, m, "tendril_simulation_duration_seconds"))
	assert.Equal(t, uint64(res.Levels), histogramSamples(t, m, "tendril_frontier_size"))
}

func TestMetricsCountTimeouts(t *testing.T) {
	m := New()

	engine, err := runtime.NewEngine(
		runtime.WithMaxDepth(3),
		runtime.WithHooks(m.Hooks()),
	)
	require.NoError(t, err)

	res, err := engine.Simulate(context.Background(), testutils.SpinnerMachine(), "")
	require.NoError(t, err)
	require.Equal(t, domain.StatusTimedOut, res.Status)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.simulations.WithLabelValues("timed_out")))
}

func TestHandlerServesRegistry(t *testing.T) {
	m := New()
	assert.NotNil(t, m.Handler())
	assert.NotNil(t, m.Registry())

	// The instruments are registered before any run happens.
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "tendril_configurations_explored_total")
}

func TestCombineFiresAllHooks(t *testing.T) {
	var order []string

	a := domain.LifecycleHooks{
		OnHalt: func(context.Context, *domain.HaltEvent) { order = append(order, "a") },
	}
	b := domain.LifecycleHooks{
		OnHalt: func(context.Context, *domain.HaltEvent) { order = append(order, "b") },
		OnLevel: func(context.Context, *domain.LevelEvent) {
			order = append(order, "b-level")
		},
	}

	combined := Combine(a, b)
	combined.OnHalt(context.Background(), &domain.HaltEvent{})
	combined.OnLevel(context.Background(), &domain.LevelEvent{})

	assert.Equal(t, []string{"a", "b", "b-level"}, order)
}

func TestCombineEmptyIsAllNil(t *testing.T) {
	combined := Combine()
	assert.Nil(t, combined.OnLevel)
	assert.Nil(t, combined.OnConfiguration)
	assert.Nil(t, combined.OnHalt)
}

// histogramSamples gathers the registry and returns the sample count of the
// named histogram.
func histogramSamples(t *testing.T, m *Metrics, name string) uint64 {
	t.Helper()

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			return f.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	t.Fatalf("histogram %q not registered", name)
	return 0
}
