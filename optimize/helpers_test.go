package optimize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optimorph/category"
	"github.com/katalvlaran/optimorph/optimize"
)

// keep returns an apply function that leaves the size unchanged and
// reports a constant cost.
func keep(cost category.Cost) category.ApplyMorphism {
	return func(in category.Size) (category.Size, category.Cost) { return in, cost }
}

// objs builds plain objects for the given IDs.
func objs(ids ...category.ObjectID) []category.Object {
	out := make([]category.Object, len(ids))
	for i, id := range ids {
		out[i] = category.NewObject(id)
	}

	return out
}

// mustBuild builds a category or fails the test.
func mustBuild(t *testing.T, objects []category.Object, morphisms []category.Morphism) *category.Category {
	t.Helper()
	c, err := category.Build(objects, morphisms)
	require.NoError(t, err)

	return c
}

// requireWellFormed asserts the universal invariants of any returned
// Composite: step endpoints chain, sizes thread from one step into the
// next, the step costs sum to TotalCost, and FinalSize is the last output.
func requireWellFormed(t *testing.T, cat *category.Category, comp *optimize.Composite, initial category.Size) {
	t.Helper()

	size := initial
	var sum category.Cost
	for i, s := range comp.Steps {
		m, ok := cat.Morphism(s.Morphism)
		require.True(t, ok, "step %d references unknown morphism %q", i, s.Morphism)

		if i == 0 {
			require.Equal(t, comp.Source, m.Source, "first step must leave the source")
		} else {
			prev, _ := cat.Morphism(comp.Steps[i-1].Morphism)
			require.Equal(t, prev.Target, m.Source, "step %d breaks the endpoint chain", i)
		}

		require.Equal(t, size, s.InputSize, "step %d input size must match the previous output", i)
		size = s.OutputSize
		sum += s.Cost
	}

	require.Equal(t, sum, comp.TotalCost, "TotalCost must equal the sum of step costs")
	require.Equal(t, size, comp.FinalSize, "FinalSize must be the last output size")
	if len(comp.Steps) > 0 {
		last, _ := cat.Morphism(comp.Steps[len(comp.Steps)-1].Morphism)
		require.Equal(t, comp.Target, last.Target, "last step must reach the target")
	} else {
		require.Equal(t, comp.Source, comp.Target, "empty composites are legal only for identity queries")
		require.Equal(t, category.Cost(0), comp.TotalCost)
		require.Equal(t, initial, comp.FinalSize)
	}
}
