package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/aretw0/tendril/internal/presentation/report"
	"github.com/aretw0/tendril/pkg/domain"
	"github.com/aretw0/tendril/pkg/ports"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	Library  string
	Machine  string
	Input    string
	MaxDepth int
	Mode     string
	Metric   string
	Output   string // optional path for a plain-text report artifact
	JSON     bool
	Plain    bool
	Debug    bool
}

// Execute handles the 'run' command logic: one bounded simulation of a
// single machine, rendered to stdout.
func Execute(opts RunOptions) error {
	logger := createLogger(opts.Debug)

	engine, err := createEngine(opts, logger)
	if err != nil {
		return err
	}

	req, err := buildRequest(opts)
	if err != nil {
		return err
	}

	// The depth bound caps the level count, not the frontier width, so a
	// branchy machine can still take a while. Ctrl-C aborts cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run, err := engine.Simulate(ctx, req)
	if err != nil {
		return err
	}

	if err := render(run, opts); err != nil {
		return err
	}

	if opts.Output != "" {
		if err := report.WriteFile(opts.Output, &run.Result); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Debug("report written", "path", opts.Output)
	}

	return nil
}

// buildRequest translates CLI flags into a simulation request. Mode and
// metric are only parsed when set, so the engine defaults still apply.
func buildRequest(opts RunOptions) (ports.SimulateRequest, error) {
	req := ports.SimulateRequest{
		Machine:  opts.Machine,
		Input:    opts.Input,
		MaxDepth: opts.MaxDepth,
	}

	if opts.Mode != "" {
		mode, err := domain.ParseTerminationMode(opts.Mode)
		if err != nil {
			return req, err
		}
		req.Mode = mode
	}

	if opts.Metric != "" {
		metric, err := domain.ParseMetricKind(opts.Metric)
		if err != nil {
			return req, err
		}
		req.Metric = metric
	}

	return req, nil
}

// render writes the run to stdout. JSON wins over everything; otherwise a
// terminal gets the glamour-rendered report and pipes get plain text.
func render(run *domain.Run, opts RunOptions) error {
	if opts.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(run)
	}

	if !opts.Plain && term.IsTerminal(int(os.Stdout.Fd())) {
		report.PrintBanner()
		if out, err := report.NewRenderer()(report.Markdown(&run.Result)); err == nil {
			fmt.Print(out)
			return nil
		}
		// Renderer setup can fail on exotic terminals; fall through to text.
	}

	return report.Write(os.Stdout, &run.Result)
}
