package runtime_test

import (
	"testing"

	"github.com/aretw0/tendril/internal/runtime"
	"github.com/aretw0/tendril/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionIndex_PreservesDefinitionOrder(t *testing.T) {
	m := &domain.Machine{
		Name:   "ordered",
		States: []string{"q0", "q1", "q2", "q3"},
		Transitions: []domain.Transition{
			{From: "q0", Read: "a", To: "q1", Write: "x", Move: domain.MoveRight},
			{From: "q0", Read: "b", To: "q3", Write: "b", Move: domain.MoveLeft},
			{From: "q0", Read: "a", To: "q2", Write: "y", Move: domain.MoveRight},
			{From: "q0", Read: "a", To: "q3", Write: "z", Move: domain.MoveLeft},
		},
	}

	ix := runtime.NewTransitionIndex(m)

	got := ix.Lookup("q0", "a")
	require.Len(t, got, 3)
	assert.Equal(t, "q1", got[0].To)
	assert.Equal(t, "q2", got[1].To)
	assert.Equal(t, "q3", got[2].To)

	assert.Len(t, ix.Lookup("q0", "b"), 1)
	assert.Empty(t, ix.Lookup("q1", "a"))
	assert.Empty(t, ix.Lookup("q0", "_"))
	assert.Equal(t, 2, ix.Size())
}
