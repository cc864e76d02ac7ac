package optimize

import (
	"fmt"

	"github.com/katalvlaran/optimorph/category"
)

// The optimizers run over a bipartite projection of the category: both
// objects and morphisms become vertices, so parallel morphisms stay
// distinguishable. Successors follow two rules:
//
//	succ(Obj(o)) = { Mor(m) : m.Source == o }, weighted by m's cost
//	succ(Mor(m)) = { Obj(m.Target) },          weighted zero
//
// The projection is purely virtual: successor enumeration reads the
// category's indexes directly and never materializes an adjacency
// structure.

// nodeKind tags the two halves of the bipartite node space.
type nodeKind uint8

const (
	objNode nodeKind = iota // node wraps an ObjectID
	morNode                 // node wraps a MorphismID
)

// node is an ephemeral bipartite vertex, materialized only while a search
// runs. Object and morphism IDs are disjoint (enforced by category.Build),
// so (kind, id) is unique.
type node struct {
	kind nodeKind
	id   string
}

func objOf(id category.ObjectID) node   { return node{kind: objNode, id: string(id)} }
func morOf(id category.MorphismID) node { return node{kind: morNode, id: string(id)} }

func (n node) String() string {
	if n.kind == objNode {
		return fmt.Sprintf("Obj(%s)", n.id)
	}

	return fmt.Sprintf("Mor(%s)", n.id)
}

// constView is the size-constant projection: every morphism is priced
// once per search and the price stays stable. Prices are memoized because
// apply functions are deterministic within one optimizer call.
type constView struct {
	cat *category.Category

	// initial is the caller-provided size used for pricing in the default
	// mode. objectSized switches pricing to each edge's source-object size.
	initial     category.Size
	objectSized bool

	price map[category.MorphismID]category.Cost
}

func newConstView(cat *category.Category, initial category.Size, opts Options) *constView {
	return &constView{
		cat:         cat,
		initial:     initial,
		objectSized: opts.ObjectSizePricing,
		price:       make(map[category.MorphismID]category.Cost, cat.MorphismCount()),
	}
}

// cost returns the stable price of morphism m under this projection.
func (v *constView) cost(id category.MorphismID) (category.Cost, error) {
	if c, ok := v.price[id]; ok {
		return c, nil
	}

	m, ok := v.cat.Morphism(id)
	if !ok {
		return 0, fmt.Errorf("%w: morphism %q vanished from category", ErrInternalInvariant, id)
	}

	in := v.initial
	if v.objectSized {
		src, _ := v.cat.Object(m.Source)
		if src.Size == nil {
			return 0, fmt.Errorf("%w: object %q", ErrMissingObjectSize, m.Source)
		}
		in = src.Size
	}

	_, c := m.Apply(in)
	v.price[id] = c

	return c, nil
}

// coreachable returns the set of bipartite nodes from which Obj(target)
// can be reached, computed by a reverse breadth-first sweep:
//
//	Obj(t) is entered by Mor(m) whenever m.Target == t
//	Mor(m) is entered by Obj(m.Source)
//
// Complexity: O(V + E) over the bipartite projection.
func coreachable(cat *category.Category, target category.ObjectID) map[node]bool {
	// incoming[o] lists morphisms pointing at o, in lexicographic order.
	incoming := make(map[category.ObjectID][]category.MorphismID, cat.ObjectCount())
	for _, id := range cat.Morphisms() {
		m, _ := cat.Morphism(id)
		incoming[m.Target] = append(incoming[m.Target], id)
	}

	seen := map[node]bool{objOf(target): true}
	queue := []node{objOf(target)}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		switch n.kind {
		case objNode:
			for _, mid := range incoming[category.ObjectID(n.id)] {
				prev := morOf(mid)
				if !seen[prev] {
					seen[prev] = true
					queue = append(queue, prev)
				}
			}
		case morNode:
			m, _ := cat.Morphism(category.MorphismID(n.id))
			prev := objOf(m.Source)
			if !seen[prev] {
				seen[prev] = true
				queue = append(queue, prev)
			}
		}
	}

	return seen
}

// bfsPath returns the raw node sequence of a minimum-hop path from
// Obj(source) to Obj(target) over the bipartite view, ignoring costs.
// Neighbor order follows the outgoing declaration order, so the result is
// deterministic. Returns nil when the target is unreachable.
func bfsPath(cat *category.Category, source, target category.ObjectID) []node {
	start := objOf(source)
	pred := map[node]node{start: start}
	queue := []node{start}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n == objOf(target) {
			return walkBack(pred, start, n)
		}

		switch n.kind {
		case objNode:
			for _, mid := range cat.Outgoing(category.ObjectID(n.id)) {
				next := morOf(mid)
				if _, ok := pred[next]; !ok {
					pred[next] = n
					queue = append(queue, next)
				}
			}
		case morNode:
			m, _ := cat.Morphism(category.MorphismID(n.id))
			next := objOf(m.Target)
			if _, ok := pred[next]; !ok {
				pred[next] = n
				queue = append(queue, next)
			}
		}
	}

	return nil
}

// walkBack unwinds a predecessor map from end back to start and returns
// the forward node sequence.
func walkBack(pred map[node]node, start, end node) []node {
	var rev []node
	for n := end; ; n = pred[n] {
		rev = append(rev, n)
		if n == start {
			break
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
