package dsl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tendril/pkg/domain"
)

func TestBuilderSimpleMachine(t *testing.T) {
	b := New("a_plus").
		Input("a").
		Tape("a", "_").
		Start("q0").
		Accept("qaccept").
		Reject("qreject")

	b.State("q0").
		On("a").To("q1")

	b.State("q1").
		On("a").To("q1").
		On("_").To("qaccept")

	m, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, "a_plus", m.Name)
	assert.Equal(t, "q0", m.Start)
	assert.Equal(t, "qaccept", m.Accept)
	assert.Equal(t, "qreject", m.Reject)
	// Registration order: start/accept/reject first, then first use.
	assert.Equal(t, []string{"q0", "qaccept", "qreject", "q1"}, m.States)

	require.Len(t, m.Transitions, 3)
	assert.Equal(t, domain.Transition{From: "q0", Read: "a", To: "q1", Write: "a", Move: domain.MoveRight}, m.Transitions[0])
	assert.Equal(t, domain.Transition{From: "q1", Read: "a", To: "q1", Write: "a", Move: domain.MoveRight}, m.Transitions[1])
	assert.Equal(t, domain.Transition{From: "q1", Read: "_", To: "qaccept", Write: "_", Move: domain.MoveRight}, m.Transitions[2])
}

func TestBuilderRuleDefaults(t *testing.T) {
	b := New("defaults").
		Input("a").
		Start("q0").
		Accept("qa").
		Reject("qr")

	// Write defaults to the read symbol, move defaults to right.
	b.State("q0").
		On("a").To("qa").
		On("_").Write("a").Left().To("qr")

	m, err := b.Build()
	require.NoError(t, err)

	require.Len(t, m.Transitions, 2)
	assert.Equal(t, "a", m.Transitions[0].Write)
	assert.Equal(t, domain.MoveRight, m.Transitions[0].Move)
	assert.Equal(t, "a", m.Transitions[1].Write)
	assert.Equal(t, domain.MoveLeft, m.Transitions[1].Move)
}

func TestBuilderDerivesTapeAlphabet(t *testing.T) {
	b := New("derived").
		Input("a", "b").
		Start("q0").
		Accept("qa").
		Reject("qr")

	b.State("q0").
		On("a").Write("x").To("q0").
		On("_").To("qa")

	m, err := b.Build()
	require.NoError(t, err)

	// Input symbols first, then transition symbols, then the blank.
	assert.Equal(t, []string{"a", "b", "x", "_"}, m.TapeAlphabet)
}

func TestBuilderCustomBlank(t *testing.T) {
	b := New("custom_blank").
		Blank("#").
		Input("a").
		Start("q0").
		Accept("qa").
		Reject("qr")

	b.State("q0").On("#").To("qa")

	m, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "#", m.BlankSymbol())
	assert.Contains(t, m.TapeAlphabet, "#")
}

func TestBuilderNondeterministicBranch(t *testing.T) {
	b := New("fork").
		Input("a").
		Start("q0").
		Accept("qa").
		Reject("qr")

	// Two rules for the same (state, symbol) pair.
	b.State("q0").
		On("a").To("q0").
		On("a").To("qr").
		On("_").To("qa")

	m, err := b.Build()
	require.NoError(t, err)
	require.Len(t, m.Transitions, 3)
	assert.Equal(t, "q0", m.Transitions[0].To)
	assert.Equal(t, "qr", m.Transitions[1].To)
}

func TestBuilderMissingName(t *testing.T) {
	_, err := New("").Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestBuilderInvalidMachine(t *testing.T) {
	b := New("broken").Input("a")
	// No start/accept/reject declared.
	b.State("q0").On("a").To("q0")

	_, err := b.Build()
	require.Error(t, err)
}

func TestBuildLoader(t *testing.T) {
	b := New("a_plus").
		Input("a").
		Start("q0").
		Accept("qaccept").
		Reject("qreject")

	b.State("q0").On("a").To("q1")
	b.State("q1").
		On("a").To("q1").
		On("_").To("qaccept")

	loader, err := b.BuildLoader()
	require.NoError(t, err)

	names, err := loader.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a_plus"}, names)

	m, err := loader.Load(context.Background(), "a_plus")
	require.NoError(t, err)
	assert.Equal(t, "a_plus", m.Name)
}
