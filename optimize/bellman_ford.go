package optimize

import (
	"fmt"

	"github.com/katalvlaran/optimorph/category"
)

// Negatable finds the minimum-cost composite morphism from source to
// target under the size-constant projection, tolerating negative costs.
//
// Algorithm: Bellman-Ford over the bipartite projection. Every morphism is
// priced once — m.Apply(initial).cost in the default mode, or the source
// object's declared size under WithObjectSizePricing — and that price is
// stable for the whole search. Relaxation runs |V|−1 rounds (with an early
// exit once a round changes nothing), then one detection pass: an edge
// that still relaxes, whose head can reach the target, witnesses a
// negative cycle on a source-to-target path and fails the call.
//
// Size propagation is not considered during selection. The reconstruction
// stage still re-applies the chosen morphisms in order, so the returned
// per-step costs and sizes may differ from the selection-time prices; the
// selection is optimal with respect to the size-constant pricing model.
//
// Returns:
//
//   - *Composite: the selected path after re-application.
//   - err: ErrNilCategory, ErrUnknownObject, ErrMissingObjectSize,
//     ErrUnreachable, ErrNegativeCycle, or nil.
//
// Complexity:
//
//   - Time:  O(V·E) over the bipartite projection,
//     V = |objects| + |morphisms|, E = 2·|morphisms|.
//   - Space: O(V) for the distance and predecessor tables.
func Negatable(c *category.Category, source, target category.ObjectID, initial category.Size, opts ...Option) (*Composite, error) {
	return negatable(c, source, target, initial, false, opts)
}

// NegatableInfallible behaves exactly like Negatable, except that a
// detected negative cycle does not fail the call: the flag
// Composite.NegativeCycleObserved is set and the best path found so far is
// returned, which may be sub-optimal. Unknown objects and unreachable
// targets still fail as usual.
//
// When the predecessor table left behind by the cycle cannot be unwound
// (the walk revisits a node), the variant falls back to a minimum-hop path
// over the same projection so that a path is always produced.
func NegatableInfallible(c *category.Category, source, target category.ObjectID, initial category.Size, opts ...Option) (*Composite, error) {
	return negatable(c, source, target, initial, true, opts)
}

func negatable(c *category.Category, source, target category.ObjectID, initial category.Size, infallible bool, opts []Option) (*Composite, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate category is non-nil.
	if c == nil {
		return nil, ErrNilCategory
	}

	// 3) Validate both endpoints exist in the category.
	if !c.ContainsObject(source) {
		return nil, fmt.Errorf("%w: source %q", ErrUnknownObject, source)
	}
	if !c.ContainsObject(target) {
		return nil, fmt.Errorf("%w: target %q", ErrUnknownObject, target)
	}

	// 4) Identity query: empty composite, zero cost, size unchanged.
	if source == target {
		return emptyComposite(source, initial), nil
	}

	// 5) Relax until fixpoint or |V|−1 rounds.
	r := &bfRunner{
		cat:  c,
		view: newConstView(c, initial, cfg),
		dist: make(map[node]category.Cost, c.ObjectCount()+c.MorphismCount()),
		pred: make(map[node]node),
	}
	start := objOf(source)
	goal := objOf(target)
	r.dist[start] = 0

	nodes := c.ObjectCount() + c.MorphismCount()
	for i := 0; i < nodes-1; i++ {
		changed, err := r.round()
		if err != nil {
			return nil, err
		}
		if !changed {
			break
		}
	}

	// 6) Unreachable target: no finite distance was ever recorded.
	if _, ok := r.dist[goal]; !ok {
		return nil, fmt.Errorf("%w: %q from %q", ErrUnreachable, target, source)
	}

	// 7) Detection pass: a still-relaxable edge whose head can reach the
	//    target witnesses a negative cycle on a source-to-target path.
	cycle, err := r.detect(target)
	if err != nil {
		return nil, err
	}
	if cycle && !infallible {
		return nil, fmt.Errorf("%w: between %q and %q", ErrNegativeCycle, source, target)
	}

	// 8) Recover the raw node sequence from the predecessor table. Without
	//    a cycle the table is acyclic and the walk must succeed; with one,
	//    the infallible variant falls back to a minimum-hop path.
	raw, ok := r.recover(start, goal, nodes)
	if !ok {
		if !cycle {
			return nil, fmt.Errorf("%w: predecessor walk from %q did not reach %q", ErrInternalInvariant, target, source)
		}
		if raw = bfsPath(c, source, target); raw == nil {
			return nil, fmt.Errorf("%w: target %q reachable by cost but not by traversal", ErrInternalInvariant, target)
		}
	}

	return rebuild(c, raw, initial, cycle)
}

// bfRunner holds the mutable state for a single Bellman-Ford execution.
type bfRunner struct {
	cat  *category.Category
	view *constView             // stable per-morphism prices
	dist map[node]category.Cost // node → best known cost (absence = +∞)
	pred map[node]node          // node → predecessor on the best path
}

// round performs one relaxation sweep over every bipartite edge and
// reports whether any distance improved.
//
// Objects are visited in lexicographic order and their outgoing morphisms
// in declaration order; improvements require a strictly smaller cost.
// Together these keep equal-cost ties on the earliest-declared morphism
// and make every run deterministic.
func (r *bfRunner) round() (bool, error) {
	changed := false
	var m category.Morphism
	for _, oid := range r.cat.Objects() {
		u := objOf(oid)
		for _, mid := range r.cat.Outgoing(oid) {
			w, err := r.view.cost(mid)
			if err != nil {
				return false, err
			}
			if r.relax(u, morOf(mid), w) {
				changed = true
			}
			// The morphism's zero-weight edge to its target object is
			// relaxed in the same sweep, so a price can propagate through
			// a whole chain within one round.
			m, _ = r.cat.Morphism(mid)
			if r.relax(morOf(mid), objOf(m.Target), 0) {
				changed = true
			}
		}
	}

	return changed, nil
}

// relax attempts dist[v] = min(dist[v], dist[u]+w); reports improvement.
func (r *bfRunner) relax(u, v node, w category.Cost) bool {
	du, ok := r.dist[u]
	if !ok {
		return false
	}
	cand := du + w
	if dv, seen := r.dist[v]; seen && cand >= dv {
		return false
	}
	r.dist[v] = cand
	r.pred[v] = u

	return true
}

// detect runs one extra sweep without mutating state: any edge that would
// still relax, whose head is co-reachable to the target, proves a negative
// cycle that both is reachable from the source (finite tail distance) and
// lies on a path to the target.
func (r *bfRunner) detect(target category.ObjectID) (bool, error) {
	coreach := coreachable(r.cat, target)

	var m category.Morphism
	for _, oid := range r.cat.Objects() {
		u := objOf(oid)
		for _, mid := range r.cat.Outgoing(oid) {
			w, err := r.view.cost(mid)
			if err != nil {
				return false, err
			}
			if r.relaxable(u, morOf(mid), w) && coreach[morOf(mid)] {
				return true, nil
			}
			m, _ = r.cat.Morphism(mid)
			if r.relaxable(morOf(mid), objOf(m.Target), 0) && coreach[objOf(m.Target)] {
				return true, nil
			}
		}
	}

	return false, nil
}

func (r *bfRunner) relaxable(u, v node, w category.Cost) bool {
	du, ok := r.dist[u]
	if !ok {
		return false
	}
	dv, seen := r.dist[v]

	return !seen || du+w < dv
}

// recover unwinds the predecessor table from goal back to start, bounded
// by the node count: a well-formed table yields a simple path, so a longer
// walk means the table contains a cycle and recovery fails.
func (r *bfRunner) recover(start, goal node, bound int) ([]node, bool) {
	var rev []node
	n := goal
	for steps := 0; ; steps++ {
		if steps > bound {
			return nil, false
		}
		rev = append(rev, n)
		if n == start {
			break
		}
		p, ok := r.pred[n]
		if !ok {
			return nil, false
		}
		n = p
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, true
}
