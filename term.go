package ecsbind

import (
	"fmt"
	"reflect"
)

// Term describes one slot of a query shape to the engine. A term set is
// built once per query and never changes; Slot always equals the term's
// position, which is the contract between the term set and the columns
// of every batch the engine reports for it.
type Term struct {
	Type   reflect.Type
	ID     ID
	Slot   int
	Access AccessKind
}

// InOut returns the data direction of the term.
func (t Term) InOut() InOutKind {
	return t.Access.InOut()
}

// Oper returns the matching operator of the term.
func (t Term) Oper() OperKind {
	return t.Access.Oper()
}

func (t Term) String() string {
	return fmt.Sprintf("%d:%v#%d(%s)", t.Slot, t.Type, t.ID, t.Access)
}

// describe builds the term for slot type S at the given position.
func describe[S Slot[S]](ids Identifier, slot int) Term {
	var s S
	typ := s.component()
	return Term{Type: typ, ID: ids.ComponentID(typ), Slot: slot, Access: s.access()}
}

// Terms returns the term set of a single-slot query shape.
func Terms[T1 Slot[T1]](ids Identifier) []Term {
	return []Term{describe[T1](ids, 0)}
}

// checkTerms panics if the term set is out of order, or if one component
// appears in several slots and any of them is writable.
func checkTerms(terms []Term) {
	for i, t := range terms {
		if t.Slot != i {
			panic(violation("term %v in position %d", t, i))
		}
		for _, u := range terms[i+1:] {
			if t.ID == u.ID && (t.Access.Writable() || u.Access.Writable()) {
				panic(violation("component %v requested by slots %d and %d with write access", t.Type, t.Slot, u.Slot))
			}
		}
	}
}
