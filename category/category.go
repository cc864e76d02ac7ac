package category

import (
	"fmt"
	"sort"
)

// Category is the validated, indexed collection of objects and morphisms.
//
// A Category is immutable after Build: all methods are read-only, and
// concurrent queries from multiple goroutines are safe. Callers that need
// to evolve a category while optimizations run against the old one should
// Clone first and Build anew from the clone's contents.
type Category struct {
	objects   map[ObjectID]Object
	morphisms map[MorphismID]Morphism

	// outgoing[o] lists the morphisms whose Source is o, in declaration
	// order. Declaration order is the primary tie-break order for the
	// optimizers and must stay stable for the life of the Category.
	outgoing map[ObjectID][]MorphismID
}

// Build validates the given objects and morphisms and assembles a Category.
//
// Validation (in order, per item):
//  1. Every ID must be non-empty (ErrEmptyID).
//  2. Object IDs must be unique (ErrDuplicateID).
//  3. Morphism IDs must be unique and must not collide with any object ID
//     (ErrDuplicateID) — both namespaces are lifted into a single node
//     space by the optimizers.
//  4. Every morphism must carry an apply function (ErrNilApply).
//  5. Every morphism's Source and Target must resolve (ErrDanglingReference).
//
// The outgoing index preserves the declaration order of morphisms.
// Complexity: O(|objects| + |morphisms|).
func Build(objects []Object, morphisms []Morphism) (*Category, error) {
	c := &Category{
		objects:   make(map[ObjectID]Object, len(objects)),
		morphisms: make(map[MorphismID]Morphism, len(morphisms)),
		outgoing:  make(map[ObjectID][]MorphismID, len(objects)),
	}

	for _, o := range objects {
		if o.ID == "" {
			return nil, fmt.Errorf("%w: object", ErrEmptyID)
		}
		if _, ok := c.objects[o.ID]; ok {
			return nil, fmt.Errorf("%w: object %q", ErrDuplicateID, o.ID)
		}
		c.objects[o.ID] = o
	}

	for _, m := range morphisms {
		if m.ID == "" {
			return nil, fmt.Errorf("%w: morphism %s→%s", ErrEmptyID, m.Source, m.Target)
		}
		if _, ok := c.morphisms[m.ID]; ok {
			return nil, fmt.Errorf("%w: morphism %q", ErrDuplicateID, m.ID)
		}
		if _, ok := c.objects[ObjectID(m.ID)]; ok {
			return nil, fmt.Errorf("%w: morphism %q collides with object %q", ErrDuplicateID, m.ID, m.ID)
		}
		if m.Apply == nil {
			return nil, fmt.Errorf("%w: morphism %q", ErrNilApply, m.ID)
		}
		if _, ok := c.objects[m.Source]; !ok {
			return nil, fmt.Errorf("%w: morphism %q source %q", ErrDanglingReference, m.ID, m.Source)
		}
		if _, ok := c.objects[m.Target]; !ok {
			return nil, fmt.Errorf("%w: morphism %q target %q", ErrDanglingReference, m.ID, m.Target)
		}
		c.morphisms[m.ID] = m
		c.outgoing[m.Source] = append(c.outgoing[m.Source], m.ID)
	}

	return c, nil
}

// Object returns the object with the given ID, and whether it exists.
func (c *Category) Object(id ObjectID) (Object, bool) {
	o, ok := c.objects[id]

	return o, ok
}

// Morphism returns the morphism with the given ID, and whether it exists.
func (c *Category) Morphism(id MorphismID) (Morphism, bool) {
	m, ok := c.morphisms[id]

	return m, ok
}

// ContainsObject reports whether an object with the given ID exists.
func (c *Category) ContainsObject(id ObjectID) bool {
	_, ok := c.objects[id]

	return ok
}

// ContainsMorphism reports whether a morphism with the given ID exists.
func (c *Category) ContainsMorphism(id MorphismID) bool {
	_, ok := c.morphisms[id]

	return ok
}

// Outgoing returns the IDs of all morphisms whose Source is id, in
// declaration order. The returned slice is a copy and may be retained.
// Complexity: O(out-degree).
func (c *Category) Outgoing(id ObjectID) []MorphismID {
	out := c.outgoing[id]
	if len(out) == 0 {
		return nil
	}
	cp := make([]MorphismID, len(out))
	copy(cp, out)

	return cp
}

// Objects returns all object IDs in lexicographic order.
// Complexity: O(V log V).
func (c *Category) Objects() []ObjectID {
	ids := make([]ObjectID, 0, len(c.objects))
	for id := range c.objects {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Morphisms returns all morphism IDs in lexicographic order.
// Complexity: O(E log E).
func (c *Category) Morphisms() []MorphismID {
	ids := make([]MorphismID, 0, len(c.morphisms))
	for id := range c.morphisms {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// ObjectCount returns the number of objects.
func (c *Category) ObjectCount() int { return len(c.objects) }

// MorphismCount returns the number of morphisms.
func (c *Category) MorphismCount() int { return len(c.morphisms) }

// Clone returns a shallow copy of the Category: maps and index slices are
// rebuilt, while payloads, sizes, and apply functions remain shared with
// the original. Complexity: O(V + E).
func (c *Category) Clone() *Category {
	cp := &Category{
		objects:   make(map[ObjectID]Object, len(c.objects)),
		morphisms: make(map[MorphismID]Morphism, len(c.morphisms)),
		outgoing:  make(map[ObjectID][]MorphismID, len(c.outgoing)),
	}
	for id, o := range c.objects {
		cp.objects[id] = o
	}
	for id, m := range c.morphisms {
		cp.morphisms[id] = m
	}
	for id, out := range c.outgoing {
		dup := make([]MorphismID, len(out))
		copy(dup, out)
		cp.outgoing[id] = dup
	}

	return cp
}
