package tendril

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/tendril/internal/logging"
	"github.com/aretw0/tendril/internal/runtime"
	fileAdapter "github.com/aretw0/tendril/pkg/adapters/file"
	"github.com/aretw0/tendril/pkg/domain"
	"github.com/aretw0/tendril/pkg/ports"
)

// Engine is the high-level entry point for the Tendril library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	loader      ports.DefinitionLoader
	store       ports.RunStore
	runtimeOpts []runtime.Option
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
	Name        string
}

var _ ports.Simulator = (*Engine)(nil)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLoader injects a custom DefinitionLoader, bypassing the default filesystem initialization.
func WithLoader(l ports.DefinitionLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithStore attaches a run store. Every completed simulation is persisted
// to it under the run's ID.
func WithStore(s ports.RunStore) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMaxDepth configures the engine-wide depth bound (default: 50).
func WithMaxDepth(n int) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithMaxDepth(n))
	}
}

// WithTerminationMode configures the engine-wide termination mode (default: exhaustive).
func WithTerminationMode(m domain.TerminationMode) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithTerminationMode(m))
	}
}

// WithMetric configures the engine-wide branching metric (default: state_diversity).
func WithMetric(k domain.MetricKind) Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithMetric(k))
	}
}

// New initializes a new Tendril Engine.
// By default, it reads machine definitions from the library directory at the given path.
// If WithLoader option is provided, library can be empty and the filesystem is skipped.
func New(library string, opts ...Option) (*Engine, error) {
	eng := &Engine{}

	// Apply Options first to check if a loader is provided
	for _, opt := range opts {
		opt(eng)
	}

	// If no loader was injected, initialize the default filesystem adapter
	if eng.loader == nil {
		if library == "" {
			return nil, fmt.Errorf("library is required when no custom loader is provided")
		}

		absPath, err := filepath.Abs(library)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}

		eng.Name = filepath.Base(absPath)

		loader, err := fileAdapter.NewLoader(absPath)
		if err != nil {
			return nil, err
		}
		eng.loader = loader
	} else {
		// If a custom loader is provided, library becomes a descriptive label.
		if library != "" {
			eng.Name = filepath.Base(library)
		}
	}

	// Ensure logger is initialized (so we don't pass nil to the runtime, which would overwrite its default)
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	// Enrich logger with the library name if available
	if eng.Name != "" {
		eng.logger = eng.logger.With("library", eng.Name)
	}

	// Surface option violations at construction, not on the first run.
	if _, err := runtime.NewEngine(eng.engineOpts(ports.SimulateRequest{})...); err != nil {
		return nil, err
	}

	return eng, nil
}

// engineOpts merges the engine-wide defaults with per-request overrides.
// Later options win, so request values shadow construction values.
func (e *Engine) engineOpts(req ports.SimulateRequest) []runtime.Option {
	opts := []runtime.Option{
		runtime.WithHooks(e.hooks),
		runtime.WithLogger(e.logger),
	}
	opts = append(opts, e.runtimeOpts...)

	if req.MaxDepth != 0 {
		opts = append(opts, runtime.WithMaxDepth(req.MaxDepth))
	}
	if req.Mode != "" {
		opts = append(opts, runtime.WithTerminationMode(req.Mode))
	}
	if req.Metric != "" {
		opts = append(opts, runtime.WithMetric(req.Metric))
	}
	return opts
}

// Simulate resolves the machine (library name or inline definition), runs
// one bounded simulation, and persists the run when a store is configured.
func (e *Engine) Simulate(ctx context.Context, req ports.SimulateRequest) (*domain.Run, error) {
	m := req.Definition
	if m == nil {
		if req.Machine == "" {
			return nil, fmt.Errorf("either a machine name or an inline definition is required")
		}
		var err error
		m, err = e.loader.Load(ctx, req.Machine)
		if err != nil {
			return nil, err
		}
	}

	engine, err := runtime.NewEngine(e.engineOpts(req)...)
	if err != nil {
		return nil, err
	}

	res, err := engine.Simulate(ctx, m, req.Input)
	if err != nil {
		return nil, err
	}

	run := &domain.Run{
		ID:        uuid.NewString(),
		Result:    *res,
		CreatedAt: time.Now().UTC(),
	}

	if e.store != nil {
		if err := e.store.Save(ctx, run.ID, run); err != nil {
			return nil, fmt.Errorf("failed to persist run %s: %w", run.ID, err)
		}
	}

	return run, nil
}

// SimulateMachine runs an inline machine definition against the input,
// using the engine-wide defaults.
func (e *Engine) SimulateMachine(ctx context.Context, m *domain.Machine, input string) (*domain.Run, error) {
	return e.Simulate(ctx, ports.SimulateRequest{Definition: m, Input: input})
}

// Machines lists the names available in the library.
func (e *Engine) Machines(ctx context.Context) ([]string, error) {
	return e.loader.List(ctx)
}

// Machine loads one definition from the library.
func (e *Engine) Machine(ctx context.Context, name string) (*domain.Machine, error) {
	return e.loader.Load(ctx, name)
}

// Runs lists the IDs of persisted runs.
func (e *Engine) Runs(ctx context.Context) ([]string, error) {
	if e.store == nil {
		return nil, fmt.Errorf("no run store configured")
	}
	return e.store.List(ctx)
}

// Run fetches one persisted run by ID.
func (e *Engine) Run(ctx context.Context, id string) (*domain.Run, error) {
	if e.store == nil {
		return nil, fmt.Errorf("no run store configured")
	}
	return e.store.Load(ctx, id)
}

// Loader returns the underlying DefinitionLoader used by the engine.
func (e *Engine) Loader() ports.DefinitionLoader {
	return e.loader
}

// Store returns the underlying RunStore, or nil when none is configured.
func (e *Engine) Store() ports.RunStore {
	return e.store
}
