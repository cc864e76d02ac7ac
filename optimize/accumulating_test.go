// Package optimize_test contains unit tests for the three optimizers.
// This file covers argument validation shared by all entry points and the
// accumulating optimizer's size-propagating semantics.
package optimize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optimorph/category"
	"github.com/katalvlaran/optimorph/optimize"
)

// ------------------------------------------------------------------------
// 1. Validation: invalid inputs must fail with sentinel errors.
// ------------------------------------------------------------------------

func TestAccumulating_NilCategory(t *testing.T) {
	_, err := optimize.Accumulating(nil, "A", "B", 1)
	require.ErrorIs(t, err, optimize.ErrNilCategory)
}

func TestAccumulating_UnknownSource(t *testing.T) {
	c := mustBuild(t, objs("A", "B"), nil)
	_, err := optimize.Accumulating(c, "X", "B", 1)
	require.ErrorIs(t, err, optimize.ErrUnknownObject)
}

func TestAccumulating_UnknownTarget(t *testing.T) {
	c := mustBuild(t, objs("A", "B"), nil)
	_, err := optimize.Accumulating(c, "A", "X", 1)
	require.ErrorIs(t, err, optimize.ErrUnknownObject)
}

func TestAccumulating_RejectsObjectSizePricing(t *testing.T) {
	// Accumulation always propagates real sizes; constant pricing modes
	// have no meaning for it and must be rejected loudly, not ignored.
	c := mustBuild(t, objs("A", "B"), nil)
	_, err := optimize.Accumulating(c, "A", "B", 1, optimize.WithObjectSizePricing())
	require.ErrorIs(t, err, optimize.ErrBadOption)
}

func TestAccumulating_NegativeCostRejected(t *testing.T) {
	// Scenario: u: A→B cost 5, v: B→C cost −4, w: A→C cost 2. Even though
	// the cheapest non-negative path never touches v, a negative price is a
	// fatal error for the accumulating optimizer.
	ms := []category.Morphism{
		category.NewMorphism("u", "A", "B", keep(5)),
		category.NewMorphism("v", "B", "C", keep(-4)),
		category.NewMorphism("w", "A", "C", keep(2)),
	}
	c := mustBuild(t, objs("A", "B", "C"), ms)

	_, err := optimize.Accumulating(c, "A", "C", 1)
	require.ErrorIs(t, err, optimize.ErrNegativeCost)
}

func TestAccumulating_Unreachable(t *testing.T) {
	ms := []category.Morphism{category.NewMorphism("f", "A", "B", keep(1))}
	c := mustBuild(t, objs("A", "B", "C"), ms)

	_, err := optimize.Accumulating(c, "A", "C", 1)
	require.ErrorIs(t, err, optimize.ErrUnreachable)
}

// ------------------------------------------------------------------------
// 2. Terminal cases and tie-breaking.
// ------------------------------------------------------------------------

func TestAccumulating_IdentityQuery(t *testing.T) {
	// source == target yields an empty composite even when the category
	// contains morphisms the optimizer would otherwise reject.
	ms := []category.Morphism{category.NewMorphism("v", "A", "B", keep(-4))}
	c := mustBuild(t, objs("A", "B"), ms)

	comp, err := optimize.Accumulating(c, "A", "A", 7)
	require.NoError(t, err)
	require.Empty(t, comp.Steps)
	require.Equal(t, category.Cost(0), comp.TotalCost)
	require.Equal(t, 7, comp.FinalSize)
	requireWellFormed(t, c, comp, 7)
}

func TestAccumulating_ParallelMorphisms(t *testing.T) {
	// f: A→B cost 3 and g: A→B cost 2 — the cheaper parallel edge wins.
	ms := []category.Morphism{
		category.NewMorphism("f", "A", "B", keep(3)),
		category.NewMorphism("g", "A", "B", keep(2)),
	}
	c := mustBuild(t, objs("A", "B"), ms)

	comp, err := optimize.Accumulating(c, "A", "B", 1)
	require.NoError(t, err)
	require.Equal(t, []category.MorphismID{"g"}, comp.MorphismIDs())
	require.Equal(t, category.Cost(2), comp.TotalCost)
	requireWellFormed(t, c, comp, 1)
}

func TestAccumulating_EqualCostTieBreaksOnDeclarationOrder(t *testing.T) {
	// f1 and f2 both cost 1; f1 is declared first and must win.
	ms := []category.Morphism{
		category.NewMorphism("f1", "A", "B", keep(1)),
		category.NewMorphism("f2", "A", "B", keep(1)),
	}
	c := mustBuild(t, objs("A", "B"), ms)

	comp, err := optimize.Accumulating(c, "A", "B", 1)
	require.NoError(t, err)
	require.Equal(t, []category.MorphismID{"f1"}, comp.MorphismIDs())
}

// ------------------------------------------------------------------------
// 3. Size propagation: accumulation must price edges with arriving sizes.
// ------------------------------------------------------------------------

// doubling maps size s → 2s at cost s; metered keeps the size and charges
// the input size as cost.
func doubling() category.ApplyMorphism {
	return func(in category.Size) (category.Size, category.Cost) {
		n := in.(int)

		return 2 * n, category.Cost(n)
	}
}

func metered() category.ApplyMorphism {
	return func(in category.Size) (category.Size, category.Cost) {
		n := in.(int)

		return n, category.Cost(n)
	}
}

func TestAccumulating_SizePropagationPicksTrueOptimum(t *testing.T) {
	// f: A→B doubles the size at cost s; h: B→C charges the arriving size;
	// p: A→C costs a flat 100. Starting from size 1 the composite [f h]
	// costs 1 + 2 = 3, far below p.
	ms := []category.Morphism{
		category.NewMorphism("f", "A", "B", doubling()),
		category.NewMorphism("h", "B", "C", metered()),
		category.NewMorphism("p", "A", "C", keep(100)),
	}
	c := mustBuild(t, objs("A", "B", "C"), ms)

	comp, err := optimize.Accumulating(c, "A", "C", 1)
	require.NoError(t, err)
	require.Equal(t, []category.MorphismID{"f", "h"}, comp.MorphismIDs())
	require.Equal(t, category.Cost(3), comp.TotalCost)
	require.Equal(t, 2, comp.FinalSize)

	// Per-step records expose the propagated sizes.
	require.Equal(t, []optimize.Step{
		{Morphism: "f", InputSize: 1, OutputSize: 2, Cost: 1},
		{Morphism: "h", InputSize: 2, OutputSize: 2, Cost: 2},
	}, comp.Steps)
	requireWellFormed(t, c, comp, 1)
}

func TestAccumulating_GrowthChangesTheWinner(t *testing.T) {
	// A cheap first hop that inflates the size can lose to a pricier flat
	// route once downstream morphisms charge by input size.
	inflate := func(in category.Size) (category.Size, category.Cost) {
		return in.(int) * 100, 1
	}
	ms := []category.Morphism{
		category.NewMorphism("balloon", "A", "B", category.ApplyMorphism(inflate)),
		category.NewMorphism("meter", "B", "C", metered()),
		category.NewMorphism("flat", "A", "C", keep(50)),
	}
	c := mustBuild(t, objs("A", "B", "C"), ms)

	comp, err := optimize.Accumulating(c, "A", "C", 1)
	require.NoError(t, err)
	// balloon+meter would cost 1 + 100; the flat route wins.
	require.Equal(t, []category.MorphismID{"flat"}, comp.MorphismIDs())
	require.Equal(t, category.Cost(50), comp.TotalCost)
	requireWellFormed(t, c, comp, 1)
}

// ------------------------------------------------------------------------
// 4. Determinism and idempotence.
// ------------------------------------------------------------------------

func TestAccumulating_Deterministic(t *testing.T) {
	ms := []category.Morphism{
		category.NewMorphism("f", "A", "B", doubling()),
		category.NewMorphism("h", "B", "C", metered()),
		category.NewMorphism("p", "A", "C", keep(100)),
	}
	c := mustBuild(t, objs("A", "B", "C"), ms)

	first, err := optimize.Accumulating(c, "A", "C", 1)
	require.NoError(t, err)
	second, err := optimize.Accumulating(c, "A", "C", 1)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
