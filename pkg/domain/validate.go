package domain

import (
	"fmt"
	"strings"
)

// Issue codes group validation findings by the part of the definition they
// concern.
const (
	CodeMachine    = "machine"
	CodeAlphabet   = "alphabet"
	CodeTransition = "transition"
)

// ValidationIssue is a single problem found while validating a definition.
type ValidationIssue struct {
	Code    string `json:"code"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (i ValidationIssue) String() string {
	return fmt.Sprintf("%s (%s): %s", i.Code, i.Path, i.Message)
}

// ValidationError collects every issue found in one validation pass, so a
// broken definition is reported whole instead of one complaint at a time.
type ValidationError struct {
	Machine string
	Issues  []ValidationIssue
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	name := e.Machine
	if name == "" {
		name = "machine"
	}
	fmt.Fprintf(&b, "invalid definition %q: %d issue(s)", name, len(e.Issues))
	for _, iss := range e.Issues {
		b.WriteString("\n  - ")
		b.WriteString(iss.String())
	}
	return b.String()
}

// Is lets errors.Is match the sentinel for the class of problem found:
// any transition issue matches ErrFaultyTransition.
func (e *ValidationError) Is(target error) bool {
	if target != ErrFaultyTransition {
		return false
	}
	for _, iss := range e.Issues {
		if iss.Code == CodeTransition {
			return true
		}
	}
	return false
}

func (e *ValidationError) add(code, path, msg string) {
	e.Issues = append(e.Issues, ValidationIssue{Code: code, Path: path, Message: msg})
}

func (e *ValidationError) addf(code, path, format string, args ...any) {
	e.add(code, path, fmt.Sprintf(format, args...))
}

func (e *ValidationError) addTransition(index int, format string, args ...any) {
	e.addf(CodeTransition, fmt.Sprintf("transitions[%d]", index), format, args...)
}
