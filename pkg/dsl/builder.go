package dsl

import (
	"fmt"

	"github.com/aretw0/tendril/pkg/adapters/memory"
	"github.com/aretw0/tendril/pkg/domain"
)

// Builder manages the machine construction.
type Builder struct {
	name          string
	blank         string
	inputAlphabet []string
	tapeAlphabet  []string
	start         string
	accept        string
	reject        string

	order       []string
	states      map[string]*StateBuilder
	transitions []domain.Transition
}

// New creates a new machine builder.
func New(name string) *Builder {
	return &Builder{
		name:   name,
		states: make(map[string]*StateBuilder),
	}
}

// Blank sets the blank tape symbol. Unset means the domain default.
func (b *Builder) Blank(symbol string) *Builder {
	b.blank = symbol
	return b
}

// Input declares the input alphabet.
func (b *Builder) Input(symbols ...string) *Builder {
	b.inputAlphabet = append(b.inputAlphabet, symbols...)
	return b
}

// Tape declares the tape alphabet explicitly. When never called, Build
// derives the tape alphabet from the input alphabet, the symbols used in
// transitions and the blank.
func (b *Builder) Tape(symbols ...string) *Builder {
	b.tapeAlphabet = append(b.tapeAlphabet, symbols...)
	return b
}

// Start declares the start state, registering it if needed.
func (b *Builder) Start(id string) *Builder {
	b.register(id)
	b.start = id
	return b
}

// Accept declares the accepting state, registering it if needed.
func (b *Builder) Accept(id string) *Builder {
	b.register(id)
	b.accept = id
	return b
}

// Reject declares the rejecting state, registering it if needed.
func (b *Builder) Reject(id string) *Builder {
	b.register(id)
	b.reject = id
	return b
}

// State returns the builder for the given state, creating it on first use.
func (b *Builder) State(id string) *StateBuilder {
	return b.register(id)
}

func (b *Builder) register(id string) *StateBuilder {
	if sb, ok := b.states[id]; ok {
		return sb
	}
	sb := &StateBuilder{id: id, builder: b}
	b.states[id] = sb
	b.order = append(b.order, id)
	return sb
}

// Build compiles the accumulated definition into a validated machine.
// Transitions keep their declaration order, which is what makes repeated
// simulations of a built machine deterministic.
func (b *Builder) Build() (*domain.Machine, error) {
	if b.name == "" {
		return nil, fmt.Errorf("machine name is required")
	}

	def := domain.Machine{
		Name:          b.name,
		States:        append([]string(nil), b.order...),
		InputAlphabet: append([]string(nil), b.inputAlphabet...),
		TapeAlphabet:  b.tape(),
		Blank:         b.blank,
		Start:         b.start,
		Accept:        b.accept,
		Reject:        b.reject,
		Transitions:   append([]domain.Transition(nil), b.transitions...),
	}

	m, err := domain.NewMachine(def)
	if err != nil {
		return nil, fmt.Errorf("build machine %q: %w", b.name, err)
	}
	return m, nil
}

// BuildLoader compiles the machine and wraps it in an in-memory library, so
// a built machine can be handed directly to the engine as its loader.
func (b *Builder) BuildLoader() (*memory.Loader, error) {
	m, err := b.Build()
	if err != nil {
		return nil, err
	}
	return memory.NewFromMachines(m)
}

// tape returns the declared tape alphabet, or derives one from everything
// the machine touches: input symbols first, then transition symbols in
// declaration order, then the blank.
func (b *Builder) tape() []string {
	if len(b.tapeAlphabet) > 0 {
		return append([]string(nil), b.tapeAlphabet...)
	}

	seen := make(map[string]bool)
	var derived []string
	add := func(sym string) {
		if sym == "" || seen[sym] {
			return
		}
		seen[sym] = true
		derived = append(derived, sym)
	}

	for _, sym := range b.inputAlphabet {
		add(sym)
	}
	for _, t := range b.transitions {
		add(t.Read)
		add(t.Write)
	}
	blank := b.blank
	if blank == "" {
		blank = domain.DefaultBlank
	}
	add(blank)

	return derived
}
