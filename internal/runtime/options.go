package runtime

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/tendril/internal/logging"
	"github.com/aretw0/tendril/pkg/domain"
)

// DefaultMaxDepth is the depth bound used when the caller does not supply
// one. Fifty levels is generous for small teaching machines while still
// keeping highly nondeterministic definitions from exploding.
const DefaultMaxDepth = 50

// Options collects engine configuration. Zero value is not usable; build
// via DefaultOptions plus functional Option values.
type Options struct {
	maxDepth int
	mode     domain.TerminationMode
	metric   domain.MetricKind
	hooks    domain.LifecycleHooks
	logger   *slog.Logger

	// err records the first option violation so the constructor can refuse
	// a misconfigured engine instead of running with surprise defaults.
	err error
}

// DefaultOptions returns the baseline configuration: depth bound 50,
// exhaustive termination, state-diversity metric, no hooks, no logging.
func DefaultOptions() Options {
	return Options{
		maxDepth: DefaultMaxDepth,
		mode:     domain.DefaultTerminationMode,
		metric:   domain.DefaultMetricKind,
		logger:   logging.NewNop(),
	}
}

// Option mutates Options.
type Option func(*Options)

// WithMaxDepth sets the depth bound, the hard ceiling on BFS levels. Values
// below one are rejected at construction time.
func WithMaxDepth(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: WithMaxDepth(%d), bound must be at least 1", domain.ErrOptionViolation, n)
			return
		}
		o.maxDepth = n
	}
}

// WithTerminationMode selects how terminal states end the run.
func WithTerminationMode(m domain.TerminationMode) Option {
	return func(o *Options) {
		switch m {
		case domain.ModeEager, domain.ModeExhaustive:
			o.mode = m
		default:
			o.err = fmt.Errorf("%w: unknown termination mode %q", domain.ErrOptionViolation, string(m))
		}
	}
}

// WithMetric selects the branching metric recorded on the Result.
func WithMetric(k domain.MetricKind) Option {
	return func(o *Options) {
		switch k {
		case domain.MetricStateDiversity, domain.MetricPerLevelBranching:
			o.metric = k
		default:
			o.err = fmt.Errorf("%w: unknown branching metric %q", domain.ErrOptionViolation, string(k))
		}
	}
}

// WithHooks attaches lifecycle callbacks.
func WithHooks(h domain.LifecycleHooks) Option {
	return func(o *Options) {
		o.hooks = h
	}
}

// WithLogger attaches a structured logger. Nil restores the nop logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = logging.NewNop()
		}
		o.logger = l
	}
}
