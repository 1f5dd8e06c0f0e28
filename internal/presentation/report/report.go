// Package report renders finished simulation results for humans: the
// canonical plain-text summary, a Markdown variant for terminal rendering,
// and the ANSI banner the CLI prints on startup.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/tendril/pkg/domain"
)

// Text renders the canonical plain-text report. The layout is stable and
// line-oriented so it can be diffed, grepped and archived:
//
//	--- Simulation Summary ---
//	Machine: a_plus
//	Input String: aaa
//	Result: Accepted
//	Depth: 4
//	Configurations Explored: 5
//	Average Non-Determinism: 1.25
//
//	Detailed Steps:
//	Step 1: (, q0, aaa)
func Text(res *domain.Result) string {
	var sb strings.Builder

	sb.WriteString("--- Simulation Summary ---\n")
	fmt.Fprintf(&sb, "Machine: %s\n", res.Machine)
	fmt.Fprintf(&sb, "Input String: %s\n", res.Input)
	fmt.Fprintf(&sb, "Result: %s\n", res.Status.Display())
	fmt.Fprintf(&sb, "Depth: %d\n", res.Levels)
	fmt.Fprintf(&sb, "Configurations Explored: %d\n", res.Explored)
	fmt.Fprintf(&sb, "Average Non-Determinism: %.2f\n", res.Branching)

	sb.WriteString("\nDetailed Steps:\n")
	for i, c := range res.Trace {
		fmt.Fprintf(&sb, "Step %d: %s\n", i+1, c.String())
	}

	return sb.String()
}

// Write writes the plain-text report to w.
func Write(w io.Writer, res *domain.Result) error {
	_, err := io.WriteString(w, Text(res))
	return err
}

// WriteFile writes the plain-text report to path, creating or truncating it.
func WriteFile(path string, res *domain.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if err := Write(f, res); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
