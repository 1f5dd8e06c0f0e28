package domain

import (
	"fmt"
	"strings"
)

// MetricKind names a branching formula. Two incompatible definitions are in
// legitimate use, so the choice is always explicit and the Result records
// which one it carries. Both are descriptive only and never participate in
// acceptance or rejection logic.
type MetricKind string

const (
	// MetricStateDiversity is explored configurations divided by the number
	// of distinct states appearing in the trace.
	MetricStateDiversity MetricKind = "state_diversity"

	// MetricPerLevelBranching is explored configurations divided by the
	// number of levels actually processed.
	MetricPerLevelBranching MetricKind = "per_level_branching"
)

// DefaultMetricKind is used wherever a surface leaves the metric unset.
const DefaultMetricKind = MetricStateDiversity

// ParseMetricKind maps a raw metric name to a MetricKind.
func ParseMetricKind(s string) (MetricKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "state_diversity", "state-diversity", "":
		return MetricStateDiversity, nil
	case "per_level_branching", "per-level-branching", "per_level", "per-level":
		return MetricPerLevelBranching, nil
	}
	return "", fmt.Errorf("unknown branching metric %q", s)
}

// StateDiversity returns explored count over distinct states in the trace,
// or 0 for an empty trace.
func StateDiversity(trace []Configuration) float64 {
	if len(trace) == 0 {
		return 0
	}
	states := make(map[string]struct{}, 8)
	for _, c := range trace {
		states[c.State] = struct{}{}
	}
	return float64(len(trace)) / float64(len(states))
}

// PerLevelBranching returns explored count over levels processed, or 0 when
// no level completed.
func PerLevelBranching(explored, levels int) float64 {
	if levels == 0 {
		return 0
	}
	return float64(explored) / float64(levels)
}

// Compute evaluates the metric against a finished trace.
func (k MetricKind) Compute(trace []Configuration, levels int) float64 {
	switch k {
	case MetricPerLevelBranching:
		return PerLevelBranching(len(trace), levels)
	default:
		return StateDiversity(trace)
	}
}
