package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/tendril/pkg/domain"
	"github.com/stretchr/testify/require"
)

// APlusMachine returns the canonical one-or-more-"a" acceptor used across
// the test suites: q0 --a--> q1, q1 loops on "a", and a blank under the head
// in q1 moves to the accept state.
func APlusMachine() *domain.Machine {
	return &domain.Machine{
		Name:          "a_plus",
		States:        []string{"q0", "q1", "qaccept", "qreject"},
		InputAlphabet: []string{"a"},
		TapeAlphabet:  []string{"a", "_"},
		Start:         "q0",
		Accept:        "qaccept",
		Reject:        "qreject",
		Transitions: []domain.Transition{
			{From: "q0", Read: "a", To: "q1", Write: "a", Move: domain.MoveRight},
			{From: "q1", Read: "a", To: "q1", Write: "a", Move: domain.MoveRight},
			{From: "q1", Read: "_", To: "qaccept", Write: "_", Move: domain.MoveRight},
		},
	}
}

// SpinnerMachine returns a machine whose single state loops forever on
// blank tape, never touching accept or reject. Useful for depth-bound tests.
func SpinnerMachine() *domain.Machine {
	return &domain.Machine{
		Name:          "spinner",
		States:        []string{"q0", "qaccept", "qreject"},
		InputAlphabet: []string{"a"},
		TapeAlphabet:  []string{"a", "_"},
		Start:         "q0",
		Accept:        "qaccept",
		Reject:        "qreject",
		Transitions: []domain.Transition{
			{From: "q0", Read: "_", To: "q0", Write: "_", Move: domain.MoveRight},
			{From: "q0", Read: "a", To: "q0", Write: "a", Move: domain.MoveRight},
		},
	}
}

// ForkMachine returns a machine that branches two ways on every "a" it
// reads: one branch keeps scanning, the other jumps to the reject state.
// Reading a blank in the scanning state accepts. Exercises real
// nondeterministic fan-out.
func ForkMachine() *domain.Machine {
	return &domain.Machine{
		Name:          "fork",
		States:        []string{"q0", "qaccept", "qreject"},
		InputAlphabet: []string{"a"},
		TapeAlphabet:  []string{"a", "_"},
		Start:         "q0",
		Accept:        "qaccept",
		Reject:        "qreject",
		Transitions: []domain.Transition{
			{From: "q0", Read: "a", To: "q0", Write: "a", Move: domain.MoveRight},
			{From: "q0", Read: "a", To: "qreject", Write: "a", Move: domain.MoveRight},
			{From: "q0", Read: "_", To: "qaccept", Write: "_", Move: domain.MoveRight},
		},
	}
}

// WriteMachineCSV writes a machine definition in the tabular layout to
// dir/name.csv and returns the full path. It fails the test on error.
func WriteMachineCSV(t *testing.T, dir, name, contents string) string {
	t.Helper()

	path := filepath.Join(dir, name+".csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

// APlusCSV is the tabular form of APlusMachine.
const APlusCSV = `a_plus
q0,q1,qaccept,qreject
a
a,_
q0
qaccept
qreject
q0,a,q1,a,R
q1,a,q1,a,R
q1,_,qaccept,_,R
`
