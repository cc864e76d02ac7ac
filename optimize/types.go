// Package optimize defines the result types, configuration options, and
// sentinel errors shared by the three optimizers.
//
// All optimizers return a *Composite describing the chosen path after
// re-application, or one of the sentinel errors below.
package optimize

import (
	"errors"

	"github.com/katalvlaran/optimorph/category"
)

// Sentinel errors returned by the optimizers.
var (
	// ErrNilCategory indicates that a nil *category.Category was passed.
	ErrNilCategory = errors.New("optimize: category is nil")

	// ErrUnknownObject indicates that the source or target ID does not
	// exist in the category.
	ErrUnknownObject = errors.New("optimize: object not found in category")

	// ErrUnreachable indicates that no path exists from source to target.
	ErrUnreachable = errors.New("optimize: target unreachable from source")

	// ErrNegativeCycle indicates that Negatable detected a negative cycle
	// reachable from the source and on a path to the target.
	ErrNegativeCycle = errors.New("optimize: negative cycle on a source-to-target path")

	// ErrNegativeCost indicates that a morphism returned a negative cost
	// inside the accumulating optimizer, which forbids negative costs.
	ErrNegativeCost = errors.New("optimize: negative cost in accumulating optimizer")

	// ErrMissingObjectSize indicates that object-size pricing was requested
	// but an object with outgoing morphisms declares no size.
	ErrMissingObjectSize = errors.New("optimize: object declares no size for object-size pricing")

	// ErrBadOption indicates an option that is not valid for the optimizer
	// it was passed to.
	ErrBadOption = errors.New("optimize: option not valid for this optimizer")

	// ErrInternalInvariant indicates a breach of an internal invariant.
	// It should not occur; the wrapped context identifies the breach.
	ErrInternalInvariant = errors.New("optimize: internal invariant violated")
)

// Step records one morphism application along a composite path.
type Step struct {
	// Morphism identifies the applied morphism.
	Morphism category.MorphismID

	// InputSize is the size handed to the morphism.
	InputSize category.Size

	// OutputSize is the size the morphism produced.
	OutputSize category.Size

	// Cost is the cost the morphism reported for this input size.
	Cost category.Cost
}

// Composite is the result of a successful optimization: an ordered
// sequence of morphism applications whose endpoints chain from Source to
// Target. Steps is empty only when Source == Target, in which case
// TotalCost is zero and FinalSize equals InitialSize.
//
// Sizes and costs in a Composite always reflect size propagation: the
// reconstruction stage re-applies every chosen morphism in order,
// regardless of which pricing model selected the path.
type Composite struct {
	// Source and Target are the endpoints of the composite.
	Source category.ObjectID
	Target category.ObjectID

	// InitialSize is the size supplied to the optimizer; FinalSize is the
	// size produced by the last step (or InitialSize for an empty composite).
	InitialSize category.Size
	FinalSize   category.Size

	// Steps lists the morphism applications in order.
	Steps []Step

	// TotalCost is the sum of all step costs.
	TotalCost category.Cost

	// NegativeCycleObserved is set only by NegatableInfallible, when a
	// negative cycle was detected during selection. The composite may then
	// be sub-optimal.
	NegativeCycleObserved bool
}

// MorphismIDs returns the morphism IDs of all steps, in order.
func (c *Composite) MorphismIDs() []category.MorphismID {
	ids := make([]category.MorphismID, len(c.Steps))
	for i, s := range c.Steps {
		ids[i] = s.Morphism
	}

	return ids
}

// Options configures the behavior of the negatable optimizers.
//
// ObjectSizePricing — price each edge with the declared size of the edge's
// source object instead of the caller-provided initial size. Off by
// default; the mode never switches on implicitly. Accumulating rejects it
// with ErrBadOption, since accumulation always propagates real sizes.
type Options struct {
	ObjectSizePricing bool // price edges by the source object's declared size
}

// Option represents a functional option for configuring an optimizer call.
type Option func(*Options)

// WithObjectSizePricing switches the size-constant projection to price
// each morphism with the declared size of its source object. Every object
// with outgoing morphisms must then declare a size
// (category.WithObjectSize); otherwise the call fails with
// ErrMissingObjectSize. Valid for Negatable and NegatableInfallible only.
func WithObjectSizePricing() Option {
	return func(o *Options) { o.ObjectSizePricing = true }
}

// DefaultOptions returns an Options struct with the default pricing model:
// every edge priced at the caller-provided initial size.
func DefaultOptions() Options {
	return Options{ObjectSizePricing: false}
}
