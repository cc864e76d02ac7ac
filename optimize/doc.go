// Package optimize provides three shortest-path optimizers over a
// category of objects and morphisms, together with the reconstruction
// stage that turns a selected path into a Composite result.
//
// Overview:
//
//   - The category is projected into a bipartite graph: objects and
//     morphisms both become vertices, so parallel morphisms between the
//     same objects stay distinguishable. The projection is virtual —
//     successor enumeration reads the category's indexes directly.
//   - Accumulating searches under the size-propagating projection: every
//     edge is priced with the size actually arriving along the partial
//     path, so the output size of one morphism feeds the next. Costs must
//     be non-negative.
//   - Negatable searches under the size-constant projection: every
//     morphism is priced once, at the caller's initial size (or, under
//     WithObjectSizePricing, at its source object's declared size), and
//     the price stays fixed during selection. Negative costs are allowed; a negative
//     cycle on a source-to-target path fails the call.
//   - NegatableInfallible is Negatable with a best-effort policy: a
//     detected negative cycle sets Composite.NegativeCycleObserved instead
//     of failing, and the best path found so far is returned.
//
// Pricing models and reported costs:
//
//	Reconstruction always re-applies the chosen morphisms in order from
//	the initial size. For Accumulating the reported costs equal the
//	selection costs. For the negatable optimizers the reported costs may
//	diverge from the selection-time prices; the selection is optimal with
//	respect to the size-constant pricing model, and the Composite reports
//	what the path actually costs when sizes propagate.
//
// The two models are deliberately never combined: without non-negative
// monotone costs a size-propagating greedy search is unsound, and
// Bellman-Ford with path-dependent weights explodes combinatorially.
//
// Determinism and tie-breaking:
//
//	Results are deterministic for a fixed (category, source, target,
//	initial size, optimizer) tuple. Equal-cost candidates prefer the
//	morphism declared earlier in its object's outgoing list, then the
//	lexicographically smaller morphism ID.
//
// Complexity:
//
//   - Accumulating: O((V + E) log V) time, O(V + E) space.
//   - Negatable*:   O(V·E) time, O(V) space.
//     V = |objects| + |morphisms|, E = 2·|morphisms| in the projection.
//
// Error handling (sentinel errors):
//
//   - ErrNilCategory:      nil *category.Category argument.
//   - ErrUnknownObject:    source or target not in the category.
//   - ErrUnreachable:      no path from source to target exists.
//   - ErrNegativeCycle:    Negatable found a negative cycle on a
//     source-to-target path.
//   - ErrNegativeCost:     a morphism priced negatively inside Accumulating.
//   - ErrMissingObjectSize: object-size pricing met an object without a
//     declared size.
//   - ErrBadOption:        an option invalid for the chosen optimizer.
//   - ErrInternalInvariant: a malformed raw path or inconsistent index;
//     indicates a bug in this package.
//
// Thread safety:
//
//   - A call is synchronous and single-threaded; concurrent calls against
//     the same immutable Category are safe. Mutating a category during an
//     ongoing call is the caller's undefined behavior; nothing locks.
//
// Example usage:
//
//	comp, err := optimize.Accumulating(cat, "A", "C", 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(comp.MorphismIDs(), comp.TotalCost)
//
// See also:
//
//   - category: building and validating the object/morphism store.
package optimize
