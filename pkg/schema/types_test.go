package schema_test

import (
	"testing"

	"github.com/aretw0/tendril/internal/testutils"
	"github.com/aretw0/tendril/pkg/domain"
	"github.com/aretw0/tendril/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aPlusDocument() *schema.Document {
	return &schema.Document{
		Name:          "a_plus",
		States:        []string{"q0", "q1", "qaccept", "qreject"},
		InputAlphabet: []string{"a"},
		TapeAlphabet:  []string{"a", "_"},
		Start:         "q0",
		Accept:        "qaccept",
		Reject:        "qreject",
		Rules: []schema.Rule{
			{From: "q0", Read: "a", To: "q1", Write: "a", Move: "R"},
			{From: "q1", Read: "a", To: "q1", Write: "a", Move: "R"},
			{From: "q1", Read: "_", To: "qaccept", Write: "_", Move: "R"},
		},
	}
}

func TestDocumentToMachine(t *testing.T) {
	m, err := aPlusDocument().ToMachine()
	require.NoError(t, err)

	assert.Equal(t, testutils.APlusMachine(), m)
}

func TestDocumentToMachine_CollapsesMoves(t *testing.T) {
	d := aPlusDocument()
	d.Rules[0].Move = "L"
	d.Rules[1].Move = "S" // not "L": collapses to right
	d.Rules[2].Move = "right"

	m, err := d.ToMachine()
	require.NoError(t, err)

	assert.Equal(t, domain.MoveLeft, m.Transitions[0].Move)
	assert.Equal(t, domain.MoveRight, m.Transitions[1].Move)
	assert.Equal(t, domain.MoveRight, m.Transitions[2].Move)
}

func TestDocumentToMachine_SemanticFailure(t *testing.T) {
	d := aPlusDocument()
	d.Rules = append(d.Rules, schema.Rule{From: "q1", Read: "a", To: "ghost", Write: "a", Move: "R"})

	_, err := d.ToMachine()
	assert.ErrorIs(t, err, domain.ErrFaultyTransition)
}

func TestFromMachineRoundTrip(t *testing.T) {
	m := testutils.APlusMachine()
	d := schema.FromMachine(m)

	back, err := d.ToMachine()
	require.NoError(t, err)
	assert.Equal(t, m, back)
}

func TestDecodeYAML(t *testing.T) {
	src := []byte(`name: a_plus
states: [q0, q1, qaccept, qreject]
input_alphabet: [a]
tape_alphabet: [a, _]
start: q0
accept: qaccept
reject: qreject
transitions:
  - {from: q0, read: a, to: q1, write: a, move: R}
  - {from: q1, read: a, to: q1, write: a, move: R}
  - {from: q1, read: _, to: qaccept, write: _, move: R}
`)

	d, err := schema.DecodeYAML(src)
	require.NoError(t, err)

	m, err := d.ToMachine()
	require.NoError(t, err)
	assert.Equal(t, testutils.APlusMachine(), m)
}

func TestDecodeYAML_Invalid(t *testing.T) {
	_, err := schema.DecodeYAML([]byte("{not yaml"))
	assert.ErrorIs(t, err, domain.ErrMalformedDefinition)
}

func TestDecodeJSON(t *testing.T) {
	data, err := schema.EncodeJSON(aPlusDocument())
	require.NoError(t, err)

	d, err := schema.DecodeJSON(data)
	require.NoError(t, err)
	assert.Equal(t, aPlusDocument(), d)
}

func TestEncodeYAMLRoundTrip(t *testing.T) {
	data, err := schema.EncodeYAML(aPlusDocument())
	require.NoError(t, err)

	d, err := schema.DecodeYAML(data)
	require.NoError(t, err)
	assert.Equal(t, aPlusDocument(), d)
}
