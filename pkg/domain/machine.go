package domain

import "unicode/utf8"

// DefaultBlank is the blank tape symbol used when a definition does not
// declare one.
const DefaultBlank = "_"

// Machine is a complete nondeterministic Turing machine definition.
//
// The transition list is ordered, and that order is load-bearing: when
// several transitions share a (From, Read) pair the engine fires them in
// definition order, which is what makes repeated runs produce identical
// traces.
type Machine struct {
	Name string `json:"name" yaml:"name"`

	// States lists every control state identifier, in declaration order.
	States []string `json:"states" yaml:"states"`

	// InputAlphabet holds the symbols an input string may use.
	InputAlphabet []string `json:"input_alphabet" yaml:"input_alphabet"`

	// TapeAlphabet holds every symbol that may appear on the tape. It is a
	// superset of InputAlphabet and must include the blank symbol.
	TapeAlphabet []string `json:"tape_alphabet" yaml:"tape_alphabet"`

	// Blank is the designated blank symbol. Empty means DefaultBlank.
	Blank string `json:"blank,omitempty" yaml:"blank,omitempty"`

	Start  string `json:"start" yaml:"start"`
	Accept string `json:"accept" yaml:"accept"`
	Reject string `json:"reject" yaml:"reject"`

	Transitions []Transition `json:"transitions" yaml:"transitions"`
}

// NewMachine validates def and returns it ready for simulation. This is the
// front door for loaders and builders: a machine that passes here never
// surfaces a faulty transition inside the exploration loop.
func NewMachine(def Machine) (*Machine, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// BlankSymbol returns the machine's blank symbol, falling back to
// DefaultBlank when the definition left it empty.
func (m *Machine) BlankSymbol() string {
	if m.Blank == "" {
		return DefaultBlank
	}
	return m.Blank
}

// HasState reports whether s is a declared state.
func (m *Machine) HasState(s string) bool {
	for _, st := range m.States {
		if st == s {
			return true
		}
	}
	return false
}

// HasTapeSymbol reports whether sym is part of the tape alphabet.
func (m *Machine) HasTapeSymbol(sym string) bool {
	for _, s := range m.TapeAlphabet {
		if s == sym {
			return true
		}
	}
	return false
}

// Validate checks the structural integrity of the definition once, up front,
// so the exploration loop never has to deal with rules that point nowhere.
// It accumulates every problem it finds into a single *ValidationError.
//
// Transition rules referencing undeclared states or symbols are reported
// with issues matching ErrFaultyTransition via errors.Is.
func (m *Machine) Validate() error {
	v := &ValidationError{Machine: m.Name}

	if len(m.States) == 0 {
		v.add(CodeMachine, "states", "machine declares no states")
	}
	seen := make(map[string]bool, len(m.States))
	for _, s := range m.States {
		if s == "" {
			v.add(CodeMachine, "states", "empty state identifier")
			continue
		}
		if seen[s] {
			v.addf(CodeMachine, "states", "duplicate state %q", s)
		}
		seen[s] = true
	}

	for _, ref := range []struct{ path, state string }{
		{"start", m.Start},
		{"accept", m.Accept},
		{"reject", m.Reject},
	} {
		if ref.state == "" {
			v.addf(CodeMachine, ref.path, "%s state is empty", ref.path)
			continue
		}
		if !seen[ref.state] {
			v.addf(CodeMachine, ref.path, "%s state %q is not a declared state", ref.path, ref.state)
		}
	}

	tape := make(map[string]bool, len(m.TapeAlphabet))
	for _, sym := range m.TapeAlphabet {
		if utf8.RuneCountInString(sym) != 1 {
			v.addf(CodeAlphabet, "tape_alphabet", "symbol %q is not a single character", sym)
			continue
		}
		tape[sym] = true
	}
	for _, sym := range m.InputAlphabet {
		if !tape[sym] {
			v.addf(CodeAlphabet, "input_alphabet", "input symbol %q is missing from the tape alphabet", sym)
		}
	}
	if !tape[m.BlankSymbol()] {
		v.addf(CodeAlphabet, "blank", "blank symbol %q is missing from the tape alphabet", m.BlankSymbol())
	}

	for i, t := range m.Transitions {
		if !seen[t.From] {
			v.addTransition(i, "from state %q is not a declared state", t.From)
		}
		if !seen[t.To] {
			v.addTransition(i, "to state %q is not a declared state", t.To)
		}
		if !tape[t.Read] {
			v.addTransition(i, "read symbol %q is missing from the tape alphabet", t.Read)
		}
		if !tape[t.Write] {
			v.addTransition(i, "write symbol %q is missing from the tape alphabet", t.Write)
		}
		if t.Move != MoveLeft && t.Move != MoveRight {
			v.addTransition(i, "move %q is neither L nor R", string(t.Move))
		}
	}

	if len(v.Issues) > 0 {
		return v
	}
	return nil
}
