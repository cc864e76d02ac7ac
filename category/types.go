// Package category defines the central Object, Morphism, and Category types,
// and provides validated construction and read-only querying of categories.
//
// A Category is immutable after Build; concurrent reads from multiple
// goroutines are safe without locking.
//
// This file declares ObjectID, MorphismID, Size, Cost, ApplyMorphism,
// Object, Morphism, their option funcs, and the sentinel errors.
//
// Errors:
//
//	ErrEmptyID           - object or morphism ID is the empty string.
//	ErrDuplicateID       - an ID is declared twice, or a morphism ID
//	                       collides with an object ID.
//	ErrDanglingReference - a morphism's source or target does not resolve.
//	ErrNilApply          - a morphism carries no apply function.
package category

import "errors"

// Sentinel errors for category construction.
var (
	// ErrEmptyID indicates that an Object or Morphism has an empty ID.
	ErrEmptyID = errors.New("category: identifier is empty")

	// ErrDuplicateID indicates that two objects, two morphisms, or an
	// object and a morphism share the same identifier. Object and morphism
	// identifiers must be disjoint so that both can be lifted into a single
	// node namespace.
	ErrDuplicateID = errors.New("category: duplicate identifier")

	// ErrDanglingReference indicates that a morphism references a source or
	// target object that is not part of the category.
	ErrDanglingReference = errors.New("category: morphism references unknown object")

	// ErrNilApply indicates that a morphism was declared without an apply
	// function. A morphism that cannot compute must not exist in the category.
	ErrNilApply = errors.New("category: morphism apply function is nil")
)

// ObjectID uniquely identifies an Object within its Category.
// Lexicographic order on ObjectID is the deterministic iteration order.
type ObjectID string

// MorphismID uniquely identifies a Morphism within its Category.
// Lexicographic order on MorphismID is the secondary tie-break order
// used by the optimizers.
type MorphismID string

// Size is an opaque value threaded from one morphism application to the
// next. The library never inspects, compares, or copies sizes; it only
// hands the output of one ApplyMorphism call to the next.
type Size = any

// Cost is the additive, totally ordered price of applying a morphism.
// The accumulating optimizer requires non-negative costs; the negatable
// optimizers accept signed costs.
type Cost float64

// ApplyMorphism maps an input size to the resulting output size and the
// cost of the transformation. Implementations must be pure and
// deterministic for the duration of one optimizer call; caching is fine,
// observable side effects are not.
type ApplyMorphism func(input Size) (output Size, cost Cost)

// Object represents an entity in the category.
//
// ID uniquely identifies this Object within its Category.
// Size, when set, is the object's declared initial size; it is consulted
// only by the object-size pricing mode and by callers starting a search
// at this object. Payload stores arbitrary user data and is shared on clones.
type Object struct {
	// ID is the unique identifier for this Object.
	ID ObjectID

	// Size is the optional declared size of this Object. A nil Size means
	// the object declares none. Downstream sizes along a path are always
	// derived from morphism application, never from this field.
	Size Size

	// Payload stores arbitrary user data. It is never copied by the library.
	Payload any
}

// Morphism represents a directed, uniquely identified transformation
// between two objects.
type Morphism struct {
	// ID uniquely identifies this morphism in the Category.
	ID MorphismID

	// Source is the object this morphism consumes.
	Source ObjectID

	// Target is the object this morphism produces.
	Target ObjectID

	// Apply maps an input size to (output size, cost). Required.
	Apply ApplyMorphism

	// Payload stores arbitrary user data. It is never copied by the library.
	Payload any
}

// ObjectOption configures properties of an individual Object.
type ObjectOption func(*Object)

// WithObjectSize declares the object's initial size.
func WithObjectSize(s Size) ObjectOption {
	return func(o *Object) { o.Size = s }
}

// WithObjectPayload attaches arbitrary user data to the object.
func WithObjectPayload(p any) ObjectOption {
	return func(o *Object) { o.Payload = p }
}

// MorphismOption configures properties of an individual Morphism.
type MorphismOption func(*Morphism)

// WithMorphismPayload attaches arbitrary user data to the morphism.
func WithMorphismPayload(p any) MorphismOption {
	return func(m *Morphism) { m.Payload = p }
}

// NewObject constructs an Object with the given ID and options.
// Validation happens in Build, not here.
func NewObject(id ObjectID, opts ...ObjectOption) Object {
	o := Object{ID: id}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// NewMorphism constructs a Morphism with the given ID, endpoints, apply
// function, and options. Validation happens in Build, not here.
func NewMorphism(id MorphismID, source, target ObjectID, apply ApplyMorphism, opts ...MorphismOption) Morphism {
	m := Morphism{ID: id, Source: source, Target: target, Apply: apply}
	for _, opt := range opts {
		opt(&m)
	}

	return m
}
