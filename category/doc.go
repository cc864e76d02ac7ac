// Package category provides the user-facing data model of optimorph:
// objects, morphisms, and the validated, indexed Category store.
//
// Overview:
//
//   - An Object is an entity identified by an ObjectID, optionally carrying
//     a declared size and an opaque payload.
//   - A Morphism is a directed, uniquely identified transformation between
//     two objects. Its Apply capability maps an input size to an output
//     size and a cost; multiple morphisms may share the same endpoints and
//     stay distinguishable by ID.
//   - A Category is the immutable, indexed collection of both, assembled by
//     Build from plain slices.
//
// Construction:
//
//	objects := []category.Object{
//	    category.NewObject("A"),
//	    category.NewObject("B"),
//	}
//	morphisms := []category.Morphism{
//	    category.NewMorphism("f", "A", "B", func(in category.Size) (category.Size, category.Cost) {
//	        return in, 3
//	    }),
//	}
//	cat, err := category.Build(objects, morphisms)
//
// Build validates that all IDs are non-empty and unique (objects and
// morphisms share one namespace once lifted into the optimizers' node
// space), that every morphism carries an apply function, and that every
// referenced object resolves. It also records, per object, the outgoing
// morphisms in declaration order; that order is the primary tie-break rule
// of the optimizers and stays stable for the life of the Category.
//
// Immutability and concurrency:
//
//   - A built Category is read-only. Concurrent queries and concurrent
//     optimizer calls against the same Category are safe without locks.
//   - Mutating payloads referenced by a Category while an optimization is
//     running is the caller's undefined behavior.
//   - Clone produces a shallow copy with independent indexes, so a caller
//     can derive a successor category while searches continue on the original.
//
// Errors (sentinel):
//
//   - ErrEmptyID           — an object or morphism ID is empty.
//   - ErrDuplicateID       — an ID is declared twice, or crosses namespaces.
//   - ErrDanglingReference — a morphism endpoint does not resolve.
//   - ErrNilApply          — a morphism has no apply function.
//
// See also:
//
//   - optimize: the Accumulating, Negatable, and NegatableInfallible
//     optimizers consuming a Category.
package category
