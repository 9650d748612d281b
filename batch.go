package ecsbind

import "unsafe"

// Batch is one iteration step reported by the engine: a run of entities
// sharing a layout, with one raw column address per term.
//
// Columns[i] may be nil only when term i is optional and absent from the
// batch. Shared[i] is true when Columns[i] holds a single value that
// applies to every entity of the batch, e.g. a component inherited from a
// relationship target. A nil Shared slice means no column is shared.
// Entities, when set, has exactly Count elements.
//
// The engine owns every address in a batch; they are valid until the
// callback that received the batch returns.
type Batch struct {
	Columns  []unsafe.Pointer
	Shared   []bool
	Entities []EntityID
	Count    int
}

// Field is the resolved view of one column of a batch.
type Field struct {
	Ptr    unsafe.Pointer
	Shared bool
}

// Absent reports whether the engine supplied no column for the slot.
func (f Field) Absent() bool {
	return f.Ptr == nil
}

// Columns exposes the columns of a batch positionally, keyed to term
// order. It is a plain value: resolving a batch neither allocates nor
// copies column memory.
type Columns struct {
	fields   [MaxArity]Field
	entities []EntityID
	n        int
	count    int
	shared   slotMask
}

// Resolve checks the shape of b against terms and returns its columns.
// It panics if the batch does not have exactly one column (and, when
// present, one shared flag) per term, or if Count and Entities disagree.
func Resolve(b *Batch, terms []Term) Columns {
	n := len(terms)
	switch {
	case b == nil:
		panic(violation("nil batch"))
	case n == 0 || n > MaxArity:
		panic(violation("term count %d outside [1, %d]", n, MaxArity))
	case len(b.Columns) != n:
		panic(violation("batch has %d columns for %d terms", len(b.Columns), n))
	case b.Shared != nil && len(b.Shared) != n:
		panic(violation("batch has %d shared flags for %d terms", len(b.Shared), n))
	case b.Count < 0:
		panic(violation("negative entity count %d", b.Count))
	case b.Entities != nil && len(b.Entities) != b.Count:
		panic(violation("batch has %d entities, count is %d", len(b.Entities), b.Count))
	}
	c := Columns{entities: b.Entities, n: n, count: b.Count}
	for i := range n {
		f := Field{Ptr: b.Columns[i]}
		if b.Shared != nil && b.Shared[i] {
			f.Shared = true
			c.shared.set(i)
		}
		c.fields[i] = f
	}
	return c
}

// Len returns the number of resolved slots.
func (c *Columns) Len() int {
	return c.n
}

// Count returns the number of entities in the batch.
func (c *Columns) Count() int {
	return c.count
}

// Field returns the column for a slot.
func (c *Columns) Field(slot int) Field {
	if uint(slot) >= uint(c.n) {
		panic(violation("slot %d out of range [0:%d)", slot, c.n))
	}
	return c.fields[slot]
}

// AnyShared reports whether at least one column of the batch is shared.
func (c *Columns) AnyShared() bool {
	return c.shared.any()
}

// Entities returns the entity IDs reported with the batch, if any.
func (c *Columns) Entities() []EntityID {
	return c.entities
}

func (c *Columns) checkRow(i int) {
	if uint(i) >= uint(c.count) {
		panic(violation("row %d out of range [0:%d)", i, c.count))
	}
}

func (c *Columns) entity(i int) EntityID {
	if c.entities == nil {
		return 0
	}
	return c.entities[i]
}

func (c *Columns) iter() Iter {
	return Iter{entities: c.entities, count: c.count, shared: c.shared}
}

// Iter describes the batch passed to a per-batch callback.
type Iter struct {
	entities []EntityID
	count    int
	shared   slotMask
}

// Count returns the number of logical rows in the batch. Views of shared
// slots have length 1 regardless of Count.
func (it Iter) Count() int {
	return it.count
}

// Entities returns the entity IDs of the batch. The slice belongs to the
// engine.
func (it Iter) Entities() []EntityID {
	return it.entities
}

// Entity returns the ID of row i, or 0 if the engine reported no IDs.
func (it Iter) Entity(i int) EntityID {
	if uint(i) >= uint(it.count) {
		panic(violation("row %d out of range [0:%d)", i, it.count))
	}
	if it.entities == nil {
		return 0
	}
	return it.entities[i]
}

// Shared reports whether the column of a slot is shared by all rows.
func (it Iter) Shared(slot int) bool {
	return it.shared.has(slot)
}

// rowOf materializes row i of one slot. Shared columns always yield
// element 0.
func rowOf[S Slot[S]](c *Columns, slot, i int) S {
	var s S
	f := c.fields[slot]
	if f.Shared {
		i = 0
	}
	return s.at(f, i, 1)
}

// viewOf materializes the whole column of one slot: Count elements, or a
// single element when the column is shared.
func viewOf[S Slot[S]](c *Columns, slot int) S {
	var s S
	f := c.fields[slot]
	n := c.count
	if f.Shared {
		n = 1
	}
	return s.at(f, 0, n)
}

func verifySlot[S Slot[S]](c *Columns, slot int) {
	var s S
	s.verify(c.fields[slot], slot)
}
