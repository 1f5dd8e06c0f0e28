package file_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tendril/internal/testutils"
	"github.com/aretw0/tendril/pkg/adapters/file"
	"github.com/aretw0/tendril/pkg/domain"
)

const endsWithBBYAML = `name: ends_with_bb
states: [q0, q1, q2, qaccept, qreject]
input_alphabet: [a, b]
tape_alphabet: [a, b, "_"]
start: q0
accept: qaccept
reject: qreject
transitions:
  - {from: q0, read: a, to: q0, write: a, move: R}
  - {from: q0, read: b, to: q0, write: b, move: R}
  - {from: q0, read: b, to: q1, write: b, move: R}
  - {from: q1, read: b, to: q2, write: b, move: R}
  - {from: q2, read: "_", to: qaccept, write: "_", move: R}
`

func TestParseCSV(t *testing.T) {
	doc, err := file.ParseCSV(strings.NewReader(testutils.APlusCSV))
	require.NoError(t, err)

	m, err := doc.ToMachine()
	require.NoError(t, err)
	assert.Equal(t, testutils.APlusMachine(), m)
}

func TestParseCSVExtraFieldsIgnored(t *testing.T) {
	raw := strings.Replace(testutils.APlusCSV, "q0,a,q1,a,R", "q0,a,q1,a,R,annotation", 1)

	doc, err := file.ParseCSV(strings.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, doc.Rules, 3)
	assert.Equal(t, "R", doc.Rules[0].Move)
}

func TestParseCSVMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "too few header rows",
			raw:  "a_plus\nq0,q1\na\n",
		},
		{
			name: "short transition row",
			raw:  testutils.APlusCSV + "q1,a,q1\n",
		},
		{
			name: "empty input",
			raw:  "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := file.ParseCSV(strings.NewReader(tc.raw))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedDefinition)
		})
	}
}

func TestLoaderLoadCSV(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteMachineCSV(t, dir, "a_plus", testutils.APlusCSV)

	loader, err := file.NewLoader(dir)
	require.NoError(t, err)

	m, err := loader.Load(context.Background(), "a_plus")
	require.NoError(t, err)
	assert.Equal(t, testutils.APlusMachine(), m)
}

func TestLoaderLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ends_with_bb.yaml")
	require.NoError(t, os.WriteFile(path, []byte(endsWithBBYAML), 0o644))

	loader, err := file.NewLoader(dir)
	require.NoError(t, err)

	m, err := loader.Load(context.Background(), "ends_with_bb")
	require.NoError(t, err)
	assert.Equal(t, "ends_with_bb", m.Name)
	assert.Len(t, m.Transitions, 5)
	assert.Equal(t, domain.MoveRight, m.Transitions[0].Move)
}

func TestLoaderLoadNotFound(t *testing.T) {
	loader, err := file.NewLoader(t.TempDir())
	require.NoError(t, err)

	_, err = loader.Load(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMachineNotFound)
}

func TestLoaderLoadFaultyDefinition(t *testing.T) {
	dir := t.TempDir()
	raw := strings.Replace(testutils.APlusCSV, "q1,_,qaccept,_,R", "q1,_,qmissing,_,R", 1)
	testutils.WriteMachineCSV(t, dir, "a_plus", raw)

	loader, err := file.NewLoader(dir)
	require.NoError(t, err)

	_, err = loader.Load(context.Background(), "a_plus")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFaultyTransition)
}

func TestLoaderList(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteMachineCSV(t, dir, "zeta", testutils.APlusCSV)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alpha.yaml"), []byte(endsWithBBYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a machine"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	loader, err := file.NewLoader(dir)
	require.NoError(t, err)

	names, err := loader.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)
}

func TestLoaderListDeduplicates(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteMachineCSV(t, dir, "a_plus", testutils.APlusCSV)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a_plus.yaml"), []byte(endsWithBBYAML), 0o644))

	loader, err := file.NewLoader(dir)
	require.NoError(t, err)

	names, err := loader.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a_plus"}, names)

	// CSV shadows YAML when both exist under the same name.
	m, err := loader.Load(context.Background(), "a_plus")
	require.NoError(t, err)
	assert.Equal(t, "a_plus", m.Name)
}

func TestNewLoaderMissingDirectory(t *testing.T) {
	_, err := file.NewLoader(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}

func TestNewLoaderNotADirectory(t *testing.T) {
	dir := t.TempDir()
	path := testutils.WriteMachineCSV(t, dir, "a_plus", testutils.APlusCSV)

	_, err := file.NewLoader(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}
