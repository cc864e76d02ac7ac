// Package optimorph finds the minimum-cost composite transformation
// between two entities in a user-defined directed multigraph whose edges
// are first-class, uniquely identifiable morphisms.
//
// 🚀 What is optimorph?
//
//	A small, focused library that brings together:
//
//	  • A category-like data model: objects & morphisms with
//	    input-dependent cost/size functions
//	  • Three shortest-path optimizers with precise semantics around
//	    size accumulation, negative costs, and negative cycles
//	  • A reconstruction stage that re-applies the chosen morphisms and
//	    reports per-step sizes and the true accumulated cost
//
// ✨ Why choose optimorph?
//
//   - Predictable          — deterministic results with documented tie-breaking
//   - Honest about limits  — accumulation and negative costs are never
//     silently combined; each optimizer documents its pricing model
//   - Pure Go              — no cgo, no hidden dependencies
//
// Under the hood, everything is organized under two subpackages:
//
//	category/ — Object, Morphism, and Category types plus build-time validation
//	optimize/ — Accumulating, Negatable, and NegatableInfallible optimizers
//
// Quick ASCII example:
//
//	    A──f──▶B
//	    │      │
//	    p      h
//	    ╰──▶C◀─╯
//
//	two routes from A to C: the direct morphism p, or the composite h∘f
//	whose cost depends on the size flowing through it.
//
// Dive into the package documents of category and optimize for full
// examples, the pricing models, and the error taxonomy.
//
//	go get github.com/katalvlaran/optimorph
package optimorph
