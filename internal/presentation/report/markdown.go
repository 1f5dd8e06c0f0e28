package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/aretw0/tendril/pkg/domain"
)

// Markdown renders the summary as Markdown for terminal display via
// glamour. Unlike Text the layout is free to evolve; it additionally names
// the branching metric the run was measured with.
func Markdown(res *domain.Result) string {
	var sb strings.Builder

	sb.WriteString("# Simulation Summary\n\n")
	fmt.Fprintf(&sb, "- **Machine:** %s\n", res.Machine)
	fmt.Fprintf(&sb, "- **Input String:** %s\n", res.Input)
	fmt.Fprintf(&sb, "- **Result:** %s\n", res.Status.Display())
	fmt.Fprintf(&sb, "- **Depth:** %d (bound %d)\n", res.Levels, res.MaxDepth)
	fmt.Fprintf(&sb, "- **Configurations Explored:** %d\n", res.Explored)
	fmt.Fprintf(&sb, "- **Average Non-Determinism:** %.2f (%s)\n", res.Branching, res.Metric)
	fmt.Fprintf(&sb, "- **Mode:** %s\n", res.Mode)

	if len(res.Trace) > 0 {
		sb.WriteString("\n## Detailed Steps\n\n")
		sb.WriteString("| Step | Configuration |\n")
		sb.WriteString("|-----:|---------------|\n")
		for i, c := range res.Trace {
			fmt.Fprintf(&sb, "| %d | `%s` |\n", i+1, c.String())
		}
	}

	return sb.String()
}

// NewRenderer returns a function that renders markdown using glamour.
// It detects the terminal background to pick a light or dark theme.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
