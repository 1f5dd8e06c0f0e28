package runtime

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/tendril/pkg/domain"
)

// Engine drives depth-bounded breadth-first exploration of a machine's
// configuration space. One level equals one simulated machine step across
// all live branches; the frontier for level k+1 is built while level k is
// processed. Execution is single-threaded and fully deterministic: for a
// fixed machine, input, bound and mode the produced trace is bit-identical
// across runs.
type Engine struct {
	opts Options
}

// NewEngine builds an engine from functional options, refusing any option
// violation up front.
func NewEngine(opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Engine{opts: o}, nil
}

// MaxDepth returns the configured depth bound.
func (e *Engine) MaxDepth() int { return e.opts.maxDepth }

// Mode returns the configured termination mode.
func (e *Engine) Mode() domain.TerminationMode { return e.opts.mode }

// Metric returns the configured branching metric.
func (e *Engine) Metric() domain.MetricKind { return e.opts.metric }

// Simulate runs the machine on input until acceptance, rejection, frontier
// exhaustion or the depth bound, and assembles the Result. The machine is
// validated first so the exploration loop never meets a rule that points
// outside the declared states or alphabet.
//
// ctx is checked once per level. Cancellation aborts the run with ctx's
// error; the depth bound remains the semantic stop for non-halting
// machines.
func (e *Engine) Simulate(ctx context.Context, m *domain.Machine, input string) (*domain.Result, error) {
	if m == nil {
		return nil, fmt.Errorf("runtime: nil machine")
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("validate machine %q: %w", m.Name, err)
	}

	started := time.Now()
	x := &exploration{
		engine:  e,
		machine: m,
		index:   NewTransitionIndex(m),
		blank:   m.BlankSymbol(),
		input:   input,
	}

	e.opts.logger.Debug("simulation started",
		"machine", m.Name,
		"input", input,
		"max_depth", e.opts.maxDepth,
		"mode", string(e.opts.mode))

	x.frontier = []domain.Configuration{domain.InitialConfiguration(m.Start, input)}
	for len(x.frontier) > 0 && x.levels < e.opts.maxDepth && !x.halted {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("simulation of %q aborted: %w", m.Name, ctx.Err())
		default:
		}
		x.runLevel(ctx)
	}

	status := x.status
	if !x.halted {
		if len(x.frontier) == 0 {
			// Exploration completed: every branch halted without reaching
			// the accept state.
			status = domain.StatusRejected
		} else {
			status = domain.StatusTimedOut
		}
	}

	res := &domain.Result{
		Machine:   m.Name,
		Input:     input,
		Status:    status,
		Trace:     x.trace,
		Levels:    x.levels,
		Explored:  len(x.trace),
		MaxDepth:  e.opts.maxDepth,
		Mode:      e.opts.mode,
		Metric:    e.opts.metric,
		Branching: e.opts.metric.Compute(x.trace, x.levels),
		Elapsed:   time.Since(started),
	}

	e.opts.logger.Debug("simulation halted",
		"machine", m.Name,
		"status", string(res.Status),
		"levels", res.Levels,
		"explored", res.Explored)

	if h := e.opts.hooks.OnHalt; h != nil {
		h(ctx, &domain.HaltEvent{
			EventBase: x.eventBase(domain.EventHalt),
			Status:    res.Status,
			Levels:    res.Levels,
			Explored:  res.Explored,
			Elapsed:   res.Elapsed,
		})
	}
	return res, nil
}

// exploration is the mutable state of one run.
type exploration struct {
	engine  *Engine
	machine *domain.Machine
	index   *TransitionIndex
	blank   string
	input   string

	frontier []domain.Configuration
	trace    []domain.Configuration
	levels   int

	halted bool
	status domain.Status
}

// runLevel processes exactly the configurations enqueued by the previous
// level. Successors enqueued here belong to the next level, which is what
// keeps the level counter equal to the machine step count.
func (x *exploration) runLevel(ctx context.Context) {
	current := x.frontier
	x.frontier = nil

	for _, c := range current {
		x.trace = append(x.trace, c)

		if stop, closed := x.terminal(c); stop {
			x.fireConfiguration(ctx, c, 0, true)
			return
		} else if closed {
			x.fireConfiguration(ctx, c, 0, true)
			continue
		}

		matches := x.index.Lookup(c.State, c.Head(x.blank))
		for _, t := range matches {
			x.frontier = append(x.frontier, c.Apply(t, x.blank))
		}
		x.fireConfiguration(ctx, c, len(matches), false)
	}

	x.levels++
	if h := x.engine.opts.hooks.OnLevel; h != nil {
		h(ctx, &domain.LevelEvent{
			EventBase: x.eventBase(domain.EventLevel),
			Level:     x.levels,
			Frontier:  len(x.frontier),
		})
	}
}

// terminal applies the termination policy to one dequeued configuration.
// stop means the whole run halts here; closed means only this branch dies.
func (x *exploration) terminal(c domain.Configuration) (stop, closed bool) {
	switch c.State {
	case x.machine.Accept:
		x.halted = true
		x.status = domain.StatusAccepted
		return true, false
	case x.machine.Reject:
		if x.engine.opts.mode == domain.ModeEager {
			x.halted = true
			x.status = domain.StatusRejected
			return true, false
		}
		return false, true
	}
	return false, false
}

func (x *exploration) fireConfiguration(ctx context.Context, c domain.Configuration, outDegree int, terminal bool) {
	if h := x.engine.opts.hooks.OnConfiguration; h != nil {
		h(ctx, &domain.ConfigurationEvent{
			EventBase:     x.eventBase(domain.EventConfiguration),
			Level:         x.levels,
			Configuration: c,
			OutDegree:     outDegree,
			Terminal:      terminal,
		})
	}
}

func (x *exploration) eventBase(t domain.EventType) domain.EventBase {
	return domain.EventBase{
		Timestamp: time.Now(),
		Type:      t,
		Machine:   x.machine.Name,
		Input:     x.input,
	}
}
