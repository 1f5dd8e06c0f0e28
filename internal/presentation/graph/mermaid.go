package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/tendril/pkg/domain"
)

// Overlay contains dynamic run data to visualize on the diagram.
type Overlay struct {
	// VisitedStates are the states appearing in a run's trace.
	VisitedStates []string
	// HaltState is the state the run ended in, highlighted separately.
	HaltState string
}

// GenerateMermaid produces a Mermaid state diagram from a machine definition.
// Every transition becomes a labeled edge "read / write, move"; the start
// state hangs off the initial marker and both terminal states point at the
// final marker. It also applies overlay styles (visited/halt) if provided.
func GenerateMermaid(m *domain.Machine, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")

	// Alias identifiers Mermaid cannot carry verbatim, keeping the
	// original spelling as the display label.
	for _, s := range m.States {
		if safeID := sanitizeMermaidID(s); safeID != s {
			sb.WriteString(fmt.Sprintf("    state \"%s\" as %s\n", s, safeID))
		}
	}

	sb.WriteString(fmt.Sprintf("    [*] --> %s\n", sanitizeMermaidID(m.Start)))

	for _, t := range m.Transitions {
		sb.WriteString(fmt.Sprintf("    %s --> %s: %s / %s, %s\n",
			sanitizeMermaidID(t.From), sanitizeMermaidID(t.To), t.Read, t.Write, string(t.Move)))
	}

	sb.WriteString(fmt.Sprintf("    %s --> [*]\n", sanitizeMermaidID(m.Accept)))
	if m.Reject != m.Accept {
		sb.WriteString(fmt.Sprintf("    %s --> [*]\n", sanitizeMermaidID(m.Reject)))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef halt fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, id := range overlay.VisitedStates {
			safeID := sanitizeMermaidID(id)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}

		if overlay.HaltState != "" {
			sb.WriteString(fmt.Sprintf("    class %s halt;\n", sanitizeMermaidID(overlay.HaltState)))
		}
	}

	return sb.String()
}

// OverlayFromResult builds an overlay from a finished run: every state on
// the recorded trace counts as visited and the trace's final state is the
// halt highlight. Returns nil when the run recorded no trace.
func OverlayFromResult(res *domain.Result) *Overlay {
	if res == nil || len(res.Trace) == 0 {
		return nil
	}

	o := &Overlay{}
	for _, c := range res.Trace {
		o.VisitedStates = append(o.VisitedStates, c.State)
	}
	o.HaltState = res.Trace[len(res.Trace)-1].State
	return o
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
