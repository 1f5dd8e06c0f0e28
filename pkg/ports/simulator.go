package ports

import (
	"context"

	"github.com/aretw0/tendril/pkg/domain"
)

// SimulateRequest carries one simulation order through a boundary adapter.
// Zero values fall back to the engine's configured defaults.
type SimulateRequest struct {
	// Machine names a definition in the library. Ignored when Definition
	// is set.
	Machine string `json:"machine,omitempty"`

	// Definition supplies an inline machine instead of a library lookup.
	Definition *domain.Machine `json:"definition,omitempty"`

	Input string `json:"input"`

	// MaxDepth overrides the depth bound; 0 keeps the engine default.
	MaxDepth int `json:"max_depth,omitempty"`

	// Mode overrides the termination mode; empty keeps the engine default.
	Mode domain.TerminationMode `json:"mode,omitempty"`

	// Metric overrides the branching metric; empty keeps the engine
	// default.
	Metric domain.MetricKind `json:"metric,omitempty"`
}

// Simulator is the engine surface boundary adapters (HTTP, MCP, CLI)
// consume. Implementations assign every run an ID and persist it when a
// RunStore is configured.
type Simulator interface {
	// Simulate executes one bounded run and returns it with its identity.
	Simulate(ctx context.Context, req SimulateRequest) (*domain.Run, error)

	// Machines lists the names available to Simulate.
	Machines(ctx context.Context) ([]string, error)

	// Machine fetches one definition by name.
	Machine(ctx context.Context, name string) (*domain.Machine, error)
}
