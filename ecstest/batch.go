package ecstest

import (
	"unsafe"

	"github.com/edwinsyarief/ecsbind"
)

// BatchBuilder assembles a synthetic ecsbind.Batch column by column, in
// term order.
type BatchBuilder struct {
	b        ecsbind.Batch
	entities bool
}

// NewBatch starts a batch of count entities.
func NewBatch(count int) *BatchBuilder {
	return &BatchBuilder{b: ecsbind.Batch{Count: count}}
}

// Column appends a per-entity column.
func (bb *BatchBuilder) Column(ptr unsafe.Pointer) *BatchBuilder {
	bb.b.Columns = append(bb.b.Columns, ptr)
	bb.b.Shared = append(bb.b.Shared, false)
	return bb
}

// SharedColumn appends a column holding one value for every entity.
func (bb *BatchBuilder) SharedColumn(ptr unsafe.Pointer) *BatchBuilder {
	bb.b.Columns = append(bb.b.Columns, ptr)
	bb.b.Shared = append(bb.b.Shared, true)
	return bb
}

// Absent appends a null column, as the engine reports for an optional
// term the batch does not have.
func (bb *BatchBuilder) Absent() *BatchBuilder {
	return bb.Column(nil)
}

// Entities sets the entity IDs of the batch. Without it, Build numbers
// the entities 1..count.
func (bb *BatchBuilder) Entities(ids ...ecsbind.EntityID) *BatchBuilder {
	bb.b.Entities = ids
	bb.entities = true
	return bb
}

// Build returns the batch.
func (bb *BatchBuilder) Build() *ecsbind.Batch {
	b := bb.b
	if !bb.entities && b.Count > 0 {
		b.Entities = make([]ecsbind.EntityID, b.Count)
		for i := range b.Entities {
			b.Entities[i] = ecsbind.EntityID(i + 1)
		}
	}
	return &b
}

// Addr returns the address of the first element of s, or nil if s is
// empty.
func Addr[T any](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(s))
}

// Ref returns the address of v.
func Ref[T any](v *T) unsafe.Pointer {
	return unsafe.Pointer(v)
}
