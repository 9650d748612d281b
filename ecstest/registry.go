// Package ecstest provides a scripted stand-in for the external ECS
// engine: a component registry, an engine that replays prepared batches,
// and a builder for those batches.
package ecstest

import (
	"reflect"

	"github.com/edwinsyarief/ecsbind"
)

// Registry hands out component IDs the way the engine does: lazily, on
// first use, and idempotently afterwards.
type Registry struct {
	typeToID map[reflect.Type]ecsbind.ID
	idToType map[ecsbind.ID]reflect.Type
	lookups  int
	nextID   ecsbind.ID
}

// NewRegistry creates an empty registry whose first ID is base. Real
// engines reserve low IDs for builtins, so tests usually pass a non-zero
// base to catch code that confuses slots with IDs.
func NewRegistry(base ecsbind.ID) *Registry {
	return &Registry{
		typeToID: make(map[reflect.Type]ecsbind.ID, 16),
		idToType: make(map[ecsbind.ID]reflect.Type, 16),
		nextID:   base,
	}
}

// ComponentID registers or fetches the ID for t.
func (r *Registry) ComponentID(t reflect.Type) ecsbind.ID {
	r.lookups++
	if id, ok := r.typeToID[t]; ok {
		return id
	}
	id := r.nextID
	r.typeToID[t] = id
	r.idToType[id] = t
	r.nextID++
	return id
}

// Registered returns the number of distinct types registered so far.
func (r *Registry) Registered() int {
	return len(r.typeToID)
}

// Lookups returns how many times ComponentID was called.
func (r *Registry) Lookups() int {
	return r.lookups
}

// TypeOf returns the type registered under id.
func (r *Registry) TypeOf(id ecsbind.ID) (reflect.Type, bool) {
	t, ok := r.idToType[id]
	return t, ok
}

// IDOf returns the ID of T, registering it if needed.
func IDOf[T any](r *Registry) ecsbind.ID {
	return r.ComponentID(reflect.TypeFor[T]())
}
