package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/tendril"
	"github.com/aretw0/tendril/internal/logging"
	"github.com/aretw0/tendril/pkg/domain"
)

// createEngine initializes a Tendril engine with standard CLI conventions.
func createEngine(opts RunOptions, logger *slog.Logger) (*tendril.Engine, error) {
	engineOpts := []tendril.Option{
		// Even in non-debug, use the provided logger (standardized)
		tendril.WithLogger(logger),
	}

	if opts.Debug {
		engineOpts = append(engineOpts, tendril.WithLifecycleHooks(createDebugHooks(logger)))
	}

	engine, err := tendril.New(opts.Library, engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}

	return engine, nil
}

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to keep the report on Stdout clean)
// and opens the trace level so per-configuration events show up.
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(logging.LevelTrace)
	}
	return logging.NewNop()
}

// createDebugHooks wires the engine lifecycle into the logger. Level and
// halt events log at debug; configuration events are one line per explored
// configuration and sit at trace.
func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnLevel: func(ctx context.Context, e *domain.LevelEvent) {
			logger.Debug("Level Done", "level", e.Level, "frontier", e.Frontier)
		},
		OnConfiguration: func(ctx context.Context, e *domain.ConfigurationEvent) {
			logger.Log(ctx, logging.LevelTrace, "Explore",
				"level", e.Level,
				"configuration", e.Configuration.String(),
				"out_degree", e.OutDegree,
				"terminal", e.Terminal,
			)
		},
		OnHalt: func(ctx context.Context, e *domain.HaltEvent) {
			logger.Debug("Halt", "status", e.Status, "levels", e.Levels, "explored", e.Explored, "elapsed", e.Elapsed)
		},
	}
}
