package optimize

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/optimorph/category"
)

// Accumulating finds the minimum-cost composite morphism from source to
// target under the size-propagating projection: the output size of each
// chosen morphism becomes the input size of the next, and every edge is
// priced with the size actually arriving along the partial path.
//
// Algorithm: best-first search over (node, accumulated size) states with a
// min-priority queue keyed by cumulative cost, the lazy-decrease-key
// variant of Dijkstra. Because costs are non-negative, the first time
// Obj(target) is finalized its cost is optimal.
//
// Returns:
//
//   - *Composite: the optimal path after re-application (§ reconstruction
//     always runs, so reported step costs equal selection costs here).
//   - err: ErrNilCategory, ErrBadOption, ErrUnknownObject, ErrNegativeCost,
//     ErrUnreachable, or nil.
//
// Preconditions and validation (in order):
//  1. c must be non-nil (ErrNilCategory).
//  2. Object-size pricing is rejected (ErrBadOption) — accumulation always
//     propagates real sizes and has no constant pricing model to replace.
//  3. source and target must exist (ErrUnknownObject).
//  4. No morphism may price negatively at the initial size; a fast O(E)
//     pre-scan fails with ErrNegativeCost before the search starts, and
//     every cost computed during the search is re-checked.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over the bipartite projection,
//     V = |objects| + |morphisms|, E = 2·|morphisms|.
//   - Space: O(V + E) for the distance map and the lazy heap.
func Accumulating(c *category.Category, source, target category.ObjectID, initial category.Size, opts ...Option) (*Composite, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate category is non-nil.
	if c == nil {
		return nil, ErrNilCategory
	}

	// 3) Reject pricing modes: accumulation never uses constant pricing.
	if cfg.ObjectSizePricing {
		return nil, fmt.Errorf("%w: object-size pricing applies to the negatable optimizers only", ErrBadOption)
	}

	// 4) Validate both endpoints exist in the category.
	if !c.ContainsObject(source) {
		return nil, fmt.Errorf("%w: source %q", ErrUnknownObject, source)
	}
	if !c.ContainsObject(target) {
		return nil, fmt.Errorf("%w: target %q", ErrUnknownObject, target)
	}

	// 5) Identity query: empty composite, zero cost, size unchanged.
	if source == target {
		return emptyComposite(source, initial), nil
	}

	// 6) Pre-scan all morphisms at the initial size to detect negative
	//    costs and fail fast, before any search state is built.
	var m category.Morphism
	for _, id := range c.Morphisms() {
		m, _ = c.Morphism(id)
		if _, cost := m.Apply(initial); cost < 0 {
			return nil, fmt.Errorf("%w: morphism %q cost=%v at initial size", ErrNegativeCost, id, cost)
		}
	}

	// 7) Run the best-first search and hand the raw node sequence to the
	//    reconstruction stage.
	r := &accRunner{
		cat:     c,
		dist:    make(map[node]category.Cost, c.ObjectCount()+c.MorphismCount()),
		pred:    make(map[node]node),
		visited: make(map[node]bool),
	}
	raw, err := r.search(source, target, initial)
	if err != nil {
		return nil, err
	}

	return rebuild(c, raw, initial, false)
}

// accRunner holds the mutable state for a single accumulating search.
type accRunner struct {
	cat     *category.Category     // read-only input category
	dist    map[node]category.Cost // node → best known cumulative cost
	pred    map[node]node          // node → predecessor on the best path
	visited map[node]bool          // node → cost finalized
	pq      accPQ                  // lazy min-heap of *accItem
	seq     uint64                 // monotone push counter for tie-breaking
}

// search runs the best-first loop and returns the raw bipartite node
// sequence from Obj(source) to Obj(target).
//
// The closed set (visited) is keyed by node alone: once a node is
// finalized, later states for it are stale and skipped. Re-expansion
// happens only through a strictly lower cost recorded before finalization,
// which with non-negative costs preserves optimality.
func (r *accRunner) search(source, target category.ObjectID, initial category.Size) ([]node, error) {
	start := objOf(source)
	goal := objOf(target)

	// Seed the frontier with the source at cost zero and the caller's size.
	heap.Init(&r.pq)
	r.dist[start] = 0
	r.push(start, initial, 0)

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*accItem)

		// Skip stale heap entries for already-finalized nodes.
		if r.visited[item.n] {
			continue
		}
		r.visited[item.n] = true

		// The first finalized occurrence of the goal is optimal.
		if item.n == goal {
			return walkBack(r.pred, start, goal), nil
		}

		if err := r.relax(item); err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: %q from %q", ErrUnreachable, target, source)
}

// relax expands one finalized state. Object states enumerate outgoing
// morphisms in declaration order, applying each to the arriving size;
// morphism states step to their target object at zero cost, handing over
// the output size computed when the morphism state was created.
func (r *accRunner) relax(item *accItem) error {
	switch item.n.kind {
	case objNode:
		var m category.Morphism
		for _, mid := range r.cat.Outgoing(category.ObjectID(item.n.id)) {
			m, _ = r.cat.Morphism(mid)
			out, cost := m.Apply(item.size)
			if cost < 0 {
				return fmt.Errorf("%w: morphism %q cost=%v", ErrNegativeCost, mid, cost)
			}
			r.improve(morOf(mid), item.n, out, item.cost+cost)
		}
	case morNode:
		m, ok := r.cat.Morphism(category.MorphismID(item.n.id))
		if !ok {
			return fmt.Errorf("%w: morphism %q vanished from category", ErrInternalInvariant, item.n.id)
		}
		r.improve(objOf(m.Target), item.n, item.size, item.cost)
	}

	return nil
}

// improve records a strictly better cost for node n and pushes the new
// state. Equal costs are not re-pushed, so the first-declared candidate
// (lowest push sequence) wins ties.
func (r *accRunner) improve(n, from node, size category.Size, cost category.Cost) {
	if r.visited[n] {
		return
	}
	if best, ok := r.dist[n]; ok && cost >= best {
		return
	}
	r.dist[n] = cost
	r.pred[n] = from
	r.push(n, size, cost)
}

func (r *accRunner) push(n node, size category.Size, cost category.Cost) {
	r.seq++
	heap.Push(&r.pq, &accItem{n: n, size: size, cost: cost, seq: r.seq})
}

// accItem is one frontier state: a bipartite node, the size that will
// arrive there along the best known path, and the cumulative cost.
type accItem struct {
	n    node          // bipartite node
	size category.Size // size arriving at n (output size for morphism nodes)
	cost category.Cost // cumulative cost from the source
	seq  uint64        // push order, breaks cost ties deterministically
}

// accPQ is a min-heap of *accItem ordered by cost, then by push order.
// Lazy decrease-key: superseded entries stay in the heap and are skipped
// when popped (visited check in search).
type accPQ []*accItem

func (pq accPQ) Len() int { return len(pq) }

func (pq accPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

func (pq accPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *accPQ) Push(x interface{}) { *pq = append(*pq, x.(*accItem)) }

func (pq *accPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
