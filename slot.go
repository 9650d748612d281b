package ecsbind

import (
	"reflect"
	"unsafe"
)

// Slot is the constraint satisfied by the four slot types Read, Write,
// Maybe and MaybeWrite. The set is closed: a query shape is always an
// ordered list of these.
//
// Every conversion from a raw column address to a typed pointer in this
// package happens in this file. Preconditions, checked once per batch by
// verify: a non-null column is aligned for T, points at Count elements of
// T (one if shared), and stays alive and unaliased by other writers until
// the batch callback returns.
type Slot[S any] interface {
	access() AccessKind
	component() reflect.Type
	verify(f Field, slot int)
	at(f Field, offset, n int) S
}

// zeroBase backs references to zero-sized components. Engines report no
// column data for those, so a null address is legal in a required slot.
var zeroBase struct{}

func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// window is n consecutive elements of T starting at ptr. A nil ptr is an
// absent column.
type window[T any] struct {
	ptr *T
	n   int
}

func newWindow[T any](f Field, offset, n int) window[T] {
	if f.Ptr == nil {
		return window[T]{}
	}
	return window[T]{ptr: (*T)(unsafe.Add(f.Ptr, uintptr(offset)*sizeOf[T]())), n: n}
}

func requiredWindow[T any](f Field, offset, n int) window[T] {
	if f.Ptr == nil {
		return window[T]{ptr: (*T)(unsafe.Pointer(&zeroBase)), n: n}
	}
	return newWindow[T](f, offset, n)
}

func (w window[T]) elem(i int) *T {
	if uint(i) >= uint(w.n) {
		panic(violation("index %d out of range [0:%d)", i, w.n))
	}
	return (*T)(unsafe.Add(unsafe.Pointer(w.ptr), uintptr(i)*sizeOf[T]()))
}

func (w window[T]) slice() []T {
	if w.ptr == nil {
		return nil
	}
	return unsafe.Slice(w.ptr, w.n)
}

func (w window[T]) addr() uintptr {
	return uintptr(unsafe.Pointer(w.ptr))
}

func verifyRequired[T any](f Field, slot int) {
	if f.Ptr == nil {
		if sizeOf[T]() == 0 {
			return
		}
		panic(violation("slot %d: null column for required %v", slot, reflect.TypeFor[T]()))
	}
	verifyAligned[T](f, slot)
}

func verifyAligned[T any](f Field, slot int) {
	var zero T
	if align := unsafe.Alignof(zero); uintptr(f.Ptr)%align != 0 {
		panic(violation("slot %d: column %#x not aligned to %d for %v", slot, uintptr(f.Ptr), align, reflect.TypeFor[T]()))
	}
}

// Read is a read-only reference to a component of type T. Per row it
// refers to one element; in a batch view it spans the whole column.
// A zero-sized T may come from a null column; Get then returns the zero
// value.
type Read[T any] struct {
	w window[T]
}

// Get returns the referenced value, or element 0 of a view.
func (r Read[T]) Get() T {
	return *r.w.elem(0)
}

// At returns element i of a view.
func (r Read[T]) At(i int) T {
	return *r.w.elem(i)
}

// Len returns the number of elements the reference spans.
func (r Read[T]) Len() int {
	return r.w.n
}

// Addr returns the address of element 0, for identity checks only.
func (r Read[T]) Addr() uintptr {
	return r.w.addr()
}

func (Read[T]) access() AccessKind      { return ReadValue }
func (Read[T]) component() reflect.Type { return reflect.TypeFor[T]() }
func (Read[T]) verify(f Field, slot int) {
	verifyRequired[T](f, slot)
}

func (Read[T]) at(f Field, offset, n int) Read[T] {
	return Read[T]{w: requiredWindow[T](f, offset, n)}
}

// Write is an exclusive reference to a component of type T. As with Read,
// a zero-sized T may come from a null column.
type Write[T any] struct {
	w window[T]
}

// Get returns a pointer to the referenced value, or to element 0 of a view.
func (r Write[T]) Get() *T {
	return r.w.elem(0)
}

// At returns a pointer to element i of a view.
func (r Write[T]) At(i int) *T {
	return r.w.elem(i)
}

// Slice returns the elements as a slice backed by engine memory.
func (r Write[T]) Slice() []T {
	return r.w.slice()
}

// Len returns the number of elements the reference spans.
func (r Write[T]) Len() int {
	return r.w.n
}

// Addr returns the address of element 0, for identity checks only.
func (r Write[T]) Addr() uintptr {
	return r.w.addr()
}

func (Write[T]) access() AccessKind      { return WriteValue }
func (Write[T]) component() reflect.Type { return reflect.TypeFor[T]() }
func (Write[T]) verify(f Field, slot int) {
	verifyRequired[T](f, slot)
}

func (Write[T]) at(f Field, offset, n int) Write[T] {
	return Write[T]{w: requiredWindow[T](f, offset, n)}
}

// Maybe is an optional read-only reference to a component of type T.
type Maybe[T any] struct {
	w window[T]
}

// Present reports whether the batch carries the component.
func (m Maybe[T]) Present() bool {
	return m.w.ptr != nil
}

// Get returns the referenced value and true, or the zero value and false
// when absent. Present only says the batch has the column: on a view of an
// empty batch Len is 0 and Get panics like At(0).
func (m Maybe[T]) Get() (T, bool) {
	if m.w.ptr == nil {
		var zero T
		return zero, false
	}
	return *m.w.elem(0), true
}

// At returns element i of a view and true, or the zero value and false
// when absent.
func (m Maybe[T]) At(i int) (T, bool) {
	if m.w.ptr == nil {
		var zero T
		return zero, false
	}
	return *m.w.elem(i), true
}

// Len returns the number of elements the reference spans, 0 when absent.
func (m Maybe[T]) Len() int {
	return m.w.n
}

// Addr returns the address of element 0, or 0 when absent.
func (m Maybe[T]) Addr() uintptr {
	return m.w.addr()
}

func (Maybe[T]) access() AccessKind      { return OptionalReadValue }
func (Maybe[T]) component() reflect.Type { return reflect.TypeFor[T]() }
func (Maybe[T]) verify(f Field, slot int) {
	if f.Ptr != nil {
		verifyAligned[T](f, slot)
	}
}

func (Maybe[T]) at(f Field, offset, n int) Maybe[T] {
	return Maybe[T]{w: newWindow[T](f, offset, n)}
}

// MaybeWrite is an optional exclusive reference to a component of type T.
type MaybeWrite[T any] struct {
	w window[T]
}

// Present reports whether the batch carries the component.
func (m MaybeWrite[T]) Present() bool {
	return m.w.ptr != nil
}

// Get returns a pointer to the referenced value, or nil when absent. On a
// view of an empty batch it panics like At(0), although Present is true.
func (m MaybeWrite[T]) Get() *T {
	if m.w.ptr == nil {
		return nil
	}
	return m.w.elem(0)
}

// At returns a pointer to element i of a view, or nil when absent.
func (m MaybeWrite[T]) At(i int) *T {
	if m.w.ptr == nil {
		return nil
	}
	return m.w.elem(i)
}

// Slice returns the elements as a slice backed by engine memory, or nil
// when absent.
func (m MaybeWrite[T]) Slice() []T {
	return m.w.slice()
}

// Len returns the number of elements the reference spans, 0 when absent.
func (m MaybeWrite[T]) Len() int {
	return m.w.n
}

// Addr returns the address of element 0, or 0 when absent.
func (m MaybeWrite[T]) Addr() uintptr {
	return m.w.addr()
}

func (MaybeWrite[T]) access() AccessKind      { return OptionalWriteValue }
func (MaybeWrite[T]) component() reflect.Type { return reflect.TypeFor[T]() }
func (MaybeWrite[T]) verify(f Field, slot int) {
	if f.Ptr != nil {
		verifyAligned[T](f, slot)
	}
}

func (MaybeWrite[T]) at(f Field, offset, n int) MaybeWrite[T] {
	return MaybeWrite[T]{w: newWindow[T](f, offset, n)}
}
