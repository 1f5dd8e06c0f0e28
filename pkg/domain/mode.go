package domain

import (
	"fmt"
	"strings"
)

// TerminationMode selects how the engine reacts to terminal states during
// exploration.
type TerminationMode string

const (
	// ModeEager stops the whole run the moment any dequeued configuration
	// sits in the accept or the reject state. Sibling branches of the same
	// level are left unexamined.
	ModeEager TerminationMode = "eager"

	// ModeExhaustive stops the run on acceptance only. A rejecting
	// configuration merely closes its own branch; the remaining branches
	// keep running until the frontier empties or the depth bound is hit.
	// This is the default: it yields a fuller trace and a lower
	// false-negative risk on genuinely nondeterministic machines.
	ModeExhaustive TerminationMode = "exhaustive"
)

// DefaultTerminationMode is used wherever a surface leaves the mode unset.
const DefaultTerminationMode = ModeExhaustive

// ParseTerminationMode maps a raw mode string to a TerminationMode.
func ParseTerminationMode(s string) (TerminationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "eager":
		return ModeEager, nil
	case "exhaustive", "":
		return ModeExhaustive, nil
	}
	return "", fmt.Errorf("unknown termination mode %q", s)
}
