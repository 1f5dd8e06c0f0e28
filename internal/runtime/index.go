package runtime

import "github.com/aretw0/tendril/pkg/domain"

// indexKey identifies one (state, head symbol) lookup cell.
type indexKey struct {
	state  string
	symbol string
}

// TransitionIndex answers "which transitions fire from (state, symbol)?".
// It is built once per machine and preserves definition order inside each
// cell, which keeps trace generation reproducible. Lookups have no side
// effects.
type TransitionIndex struct {
	rules map[indexKey][]domain.Transition
}

// NewTransitionIndex pre-indexes the machine's ordered transition list.
func NewTransitionIndex(m *domain.Machine) *TransitionIndex {
	ix := &TransitionIndex{
		rules: make(map[indexKey][]domain.Transition, len(m.Transitions)),
	}
	for _, t := range m.Transitions {
		k := indexKey{state: t.From, symbol: t.Read}
		ix.rules[k] = append(ix.rules[k], t)
	}
	return ix
}

// Lookup returns the transitions firing from (state, symbol), in definition
// order. The returned slice is shared; callers must not modify it.
func (ix *TransitionIndex) Lookup(state, symbol string) []domain.Transition {
	return ix.rules[indexKey{state: state, symbol: symbol}]
}

// Size returns the number of populated (state, symbol) cells.
func (ix *TransitionIndex) Size() int {
	return len(ix.rules)
}
