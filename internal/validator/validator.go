// Package validator inspects structurally valid machines for shapes that
// almost always indicate an authoring mistake: states no input can ever
// reach, rules that leave a terminal state, or a machine with no path to
// acceptance at all. These are warnings, not errors, because a perverse
// definition can be intentional.
package validator

import (
	"fmt"

	"github.com/aretw0/tendril/pkg/domain"
)

// Warning codes, stable for machine consumption.
const (
	CodeUnreachableState  = "unreachable_state"
	CodeTerminalRule      = "terminal_rule"
	CodeAcceptUnreachable = "accept_unreachable"
)

// Warning is a single advisory finding about a machine definition.
type Warning struct {
	Code    string `json:"code"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// Check crawls the machine's transition graph from the start state and
// reports advisory findings. The machine is assumed to have passed
// domain validation already.
func Check(m *domain.Machine) []Warning {
	var warnings []Warning

	reachable := crawl(m)

	for _, s := range m.States {
		if reachable[s] {
			continue
		}
		warnings = append(warnings, Warning{
			Code:    CodeUnreachableState,
			Subject: s,
			Message: fmt.Sprintf("state %q can never be reached from the start state", s),
		})
	}

	for i, t := range m.Transitions {
		if t.From != m.Accept && t.From != m.Reject {
			continue
		}
		warnings = append(warnings, Warning{
			Code:    CodeTerminalRule,
			Subject: t.From,
			Message: fmt.Sprintf("transition %d leaves terminal state %q and will never fire", i, t.From),
		})
	}

	if !reachable[m.Accept] {
		warnings = append(warnings, Warning{
			Code:    CodeAcceptUnreachable,
			Subject: m.Accept,
			Message: fmt.Sprintf("no chain of transitions leads to accept state %q; the machine can never accept", m.Accept),
		})
	}

	return warnings
}

// crawl walks the transition graph breadth-first from the start state,
// ignoring tape contents: a state counts as reachable if some rule chain
// leads to it, whether or not an input exists that takes that chain.
func crawl(m *domain.Machine) map[string]bool {
	edges := make(map[string][]string, len(m.States))
	for _, t := range m.Transitions {
		edges[t.From] = append(edges[t.From], t.To)
	}

	visited := make(map[string]bool, len(m.States))
	queue := []string{m.Start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, target := range edges[current] {
			if !visited[target] {
				queue = append(queue, target)
			}
		}
	}

	return visited
}
