package sociometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflicts_GroupsByUnorderedPair(t *testing.T) {
	g, err := New(DefaultConfig()).BuildGraph(employees("A", "B", "C", "D"), []Response{
		response("B", negative("A", "C")),
		response("A", negative("B"), positive("C")),
		response("D", negative("C")),
	}, allQuestions)
	require.NoError(t, err)

	conflicts := Conflicts(g)
	require.Len(t, conflicts, 3)

	assert.Equal(t, ConflictPair{EmployeeA: "A", EmployeeB: "B", AToB: 1, BToA: 1, Count: 2, Mutual: true}, conflicts[0])
	assert.Equal(t, ConflictPair{EmployeeA: "B", EmployeeB: "C", AToB: 0.5, Count: 1}, conflicts[1])
	assert.Equal(t, ConflictPair{EmployeeA: "C", EmployeeB: "D", BToA: 1, Count: 1}, conflicts[2])
	assert.Equal(t, 2.0, conflicts[0].Strength())
}

func TestConflicts_IgnoresPositiveEdges(t *testing.T) {
	g, err := New(DefaultConfig()).BuildGraph(employees("A", "B"), []Response{
		response("A", positive("B")),
		response("B", positive("A")),
	}, allQuestions)
	require.NoError(t, err)

	assert.Empty(t, Conflicts(g))
	assert.Empty(t, Conflicts(nil))
}

func TestConflicts_ParallelNegativeEdgesAccumulate(t *testing.T) {
	g := &Graph{Edges: []Edge{
		{Source: "B", Target: "A", Type: Negative, Strength: 0.5},
		{Source: "B", Target: "A", Type: Negative, Strength: 0.25},
	}}

	conflicts := Conflicts(g)
	require.Len(t, conflicts, 1)
	assert.Equal(t, 0.75, conflicts[0].BToA)
	assert.Equal(t, 2, conflicts[0].Count)
	assert.False(t, conflicts[0].Mutual)
}
