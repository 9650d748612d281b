// Package ecsbind implements the typed query layer that sits between
// application code and an external, separately compiled ECS engine.
//
// A query shape is declared at compile time as an ordered list of slots:
//
//	q := ecsbind.NewQuery3[ecsbind.Read[Position], ecsbind.Write[Velocity], ecsbind.Maybe[Mass]](engine)
//	err := q.Each(func(p ecsbind.Read[Position], v ecsbind.Write[Velocity], m ecsbind.Maybe[Mass]) bool {
//	    v.Get().X += p.Get().X
//	    return true
//	})
//
// Features:
// - Term descriptors built once per query, in declared slot order.
// - Zero-copy typed references and views into engine-owned columns.
// - Shared (ref) columns read index 0 for every row of a batch.
// - Optional slots report absence instead of failing.
// - Query2 to Query12 generated from a single template.
//
// Values handed to a callback point into engine memory that is only valid
// for the duration of that callback. They must not be retained.
//
//go:generate go run ./cmd/generate
package ecsbind

import "reflect"

// ID is the engine's stable numeric identifier for a component type.
type ID uint64

// EntityID identifies an entity inside the external engine. This layer
// never interprets it.
type EntityID uint64

// Identifier resolves a component type to its engine ID. Implementations
// register the type on first use and must return the same ID on every
// later call for the same type.
type Identifier interface {
	ComponentID(t reflect.Type) ID
}

// IdentifierFunc adapts a plain function to Identifier.
type IdentifierFunc func(t reflect.Type) ID

// ComponentID calls f(t).
func (f IdentifierFunc) ComponentID(t reflect.Type) ID {
	return f(t)
}

// Engine is the external ECS engine as seen by this layer.
//
// Run matches entities against terms, in the order given, and invokes fn
// once per batch. The batch is only valid until fn returns. When fn
// returns false the engine must stop before producing the next batch.
type Engine interface {
	Identifier
	Run(terms []Term, fn func(b *Batch) bool) error
}
