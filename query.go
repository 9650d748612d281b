package ecsbind

import (
	"slices"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// query holds what every QueryN shares: the engine, the logger and the
// label used in logs and errors.
type query struct {
	engine Engine
	logger zerolog.Logger
	name   string
}

func newQuery(e Engine, opts []Option) query {
	if e == nil {
		panic(violation("nil engine"))
	}
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return query{engine: e, logger: o.logger, name: o.name}
}

// init validates a freshly built term set and logs it.
func (q *query) init(terms []Term) {
	checkTerms(terms)
	if q.name == "" {
		names := make([]string, len(terms))
		for i, t := range terms {
			names[i] = t.Type.String()
		}
		q.name = "(" + strings.Join(names, ", ") + ")"
	}
	logTerms(q.logger.Debug(), q.name, terms)
}

// Name returns the label of the query.
func (q *query) Name() string {
	return q.name
}

func (q *query) run(terms []Term, fn func(b *Batch) bool) error {
	if err := q.engine.Run(terms, fn); err != nil {
		q.logger.Error().Err(err).Str("query", q.name).Msg("query iteration failed")
		return eris.Wrapf(err, "query %s", q.name)
	}
	return nil
}

func (q *query) count(terms []Term) (int, error) {
	total := 0
	err := q.run(terms, func(b *Batch) bool {
		c := Resolve(b, terms)
		total += c.Count()
		return true
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// Query iterates the entities matched by a single term.
//
// Example:
//
//	q := ecsbind.NewQuery[ecsbind.Write[Position]](engine)
//	q.Each(func(p ecsbind.Write[Position]) bool {
//	    p.Get().X++
//	    return true
//	})
type Query[T1 Slot[T1]] struct {
	query
	terms [1]Term
}

// NewQuery builds the term set for T1 and binds it to e.
func NewQuery[T1 Slot[T1]](e Engine, opts ...Option) *Query[T1] {
	q := &Query[T1]{query: newQuery(e, opts)}
	copy(q.terms[:], Terms[T1](e))
	q.init(q.terms[:])
	return q
}

// Terms returns a copy of the query's term set.
func (q *Query[T1]) Terms() []Term {
	return slices.Clone(q.terms[:])
}

func (q *Query[T1]) resolve(b *Batch) Columns {
	c := Resolve(b, q.terms[:])
	verifySlot[T1](&c, 0)
	return c
}

// Row materializes row i of b. It panics unless 0 <= i < b.Count.
func (q *Query[T1]) Row(b *Batch, i int) T1 {
	c := q.resolve(b)
	c.checkRow(i)
	return rowOf[T1](&c, 0, i)
}

// View materializes b as a whole: a view of b.Count elements, or of one
// element when the column is shared.
func (q *Query[T1]) View(b *Batch) T1 {
	c := q.resolve(b)
	return viewOf[T1](&c, 0)
}

// Each calls fn for every matched entity until fn returns false.
func (q *Query[T1]) Each(fn func(T1) bool) error {
	return q.run(q.terms[:], func(b *Batch) bool {
		c := q.resolve(b)
		var s T1
		f := c.fields[0]
		if f.Shared {
			v := s.at(f, 0, 1)
			for range c.count {
				if !fn(v) {
					return false
				}
			}
			return true
		}
		for i := range c.count {
			if !fn(s.at(f, i, 1)) {
				return false
			}
		}
		return true
	})
}

// EachEntity is Each with the entity ID of every row.
func (q *Query[T1]) EachEntity(fn func(EntityID, T1) bool) error {
	return q.run(q.terms[:], func(b *Batch) bool {
		c := q.resolve(b)
		var s T1
		f := c.fields[0]
		if f.Shared {
			v := s.at(f, 0, 1)
			for i := range c.count {
				if !fn(c.entity(i), v) {
					return false
				}
			}
			return true
		}
		for i := range c.count {
			if !fn(c.entity(i), s.at(f, i, 1)) {
				return false
			}
		}
		return true
	})
}

// Iter calls fn once per batch with a view of the column until fn returns
// false.
func (q *Query[T1]) Iter(fn func(Iter, T1) bool) error {
	return q.run(q.terms[:], func(b *Batch) bool {
		c := q.resolve(b)
		return fn(c.iter(), viewOf[T1](&c, 0))
	})
}

// Count returns the number of matched entities.
func (q *Query[T1]) Count() (int, error) {
	return q.count(q.terms[:])
}
