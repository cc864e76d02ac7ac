package optimize

import (
	"fmt"

	"github.com/katalvlaran/optimorph/category"
)

// rebuild turns a raw bipartite node sequence into a Composite.
//
// The sequence must strictly alternate Obj, Mor, Obj, …, Obj, with every
// morphism's endpoints matching its neighboring objects. Violations are
// internal-invariant breaches: a search can only hand over malformed
// sequences through a bug, never through bad user input.
//
// Re-application always runs: starting from the caller's initial size,
// every morphism is applied in order, so the reported sizes and costs
// reflect size propagation even when path selection priced edges with a
// constant size. Applying the same sequence to the same initial size
// always yields an identical Composite (apply functions are deterministic
// within a call).
func rebuild(cat *category.Category, raw []node, initial category.Size, cycleObserved bool) (*Composite, error) {
	// 1) Validate the shape: odd length, object endpoints, alternation.
	if len(raw) == 0 || len(raw)%2 == 0 {
		return nil, fmt.Errorf("%w: raw path has %d nodes", ErrInternalInvariant, len(raw))
	}
	if raw[0].kind != objNode || raw[len(raw)-1].kind != objNode {
		return nil, fmt.Errorf("%w: raw path endpoints %s, %s", ErrInternalInvariant, raw[0], raw[len(raw)-1])
	}

	comp := &Composite{
		Source:                category.ObjectID(raw[0].id),
		Target:                category.ObjectID(raw[len(raw)-1].id),
		InitialSize:           initial,
		FinalSize:             initial,
		Steps:                 make([]Step, 0, len(raw)/2),
		NegativeCycleObserved: cycleObserved,
	}

	// 2) Walk Obj→Mor→Obj triples, validating endpoints and threading the
	//    size from one application into the next.
	size := initial
	for i := 1; i < len(raw); i += 2 {
		if raw[i].kind != morNode || raw[i+1].kind != objNode {
			return nil, fmt.Errorf("%w: alternation broken at %s", ErrInternalInvariant, raw[i])
		}
		mid := category.MorphismID(raw[i].id)
		m, ok := cat.Morphism(mid)
		if !ok {
			return nil, fmt.Errorf("%w: unknown morphism %q in raw path", ErrInternalInvariant, mid)
		}
		if m.Source != category.ObjectID(raw[i-1].id) || m.Target != category.ObjectID(raw[i+1].id) {
			return nil, fmt.Errorf("%w: morphism %q is %s→%s, path has %s→%s",
				ErrInternalInvariant, mid, m.Source, m.Target, raw[i-1].id, raw[i+1].id)
		}

		out, cost := m.Apply(size)
		comp.Steps = append(comp.Steps, Step{
			Morphism:   mid,
			InputSize:  size,
			OutputSize: out,
			Cost:       cost,
		})
		comp.TotalCost += cost
		size = out
	}
	comp.FinalSize = size

	return comp, nil
}

// emptyComposite is the identity result for source == target queries.
func emptyComposite(id category.ObjectID, initial category.Size) *Composite {
	return &Composite{
		Source:      id,
		Target:      id,
		InitialSize: initial,
		FinalSize:   initial,
		TotalCost:   0,
	}
}
