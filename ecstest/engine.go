package ecstest

import (
	"slices"

	"github.com/edwinsyarief/ecsbind"
)

// Engine replays a fixed list of batches for every Run call. It does no
// matching of its own: the batches must already have the shape of the
// query that runs against them.
type Engine struct {
	*Registry
	err     error
	batches []*ecsbind.Batch
	runs    [][]ecsbind.Term
	served  int
}

// NewEngine creates an engine with a fresh registry starting at ID 1.
func NewEngine(batches ...*ecsbind.Batch) *Engine {
	return &Engine{Registry: NewRegistry(1), batches: batches}
}

// Push appends batches to the script.
func (e *Engine) Push(batches ...*ecsbind.Batch) {
	e.batches = append(e.batches, batches...)
}

// FailWith makes every later Run return err without serving any batch.
func (e *Engine) FailWith(err error) {
	e.err = err
}

// Run serves the scripted batches to fn, stopping as soon as fn returns
// false.
func (e *Engine) Run(terms []ecsbind.Term, fn func(b *ecsbind.Batch) bool) error {
	e.runs = append(e.runs, slices.Clone(terms))
	if e.err != nil {
		return e.err
	}
	for _, b := range e.batches {
		e.served++
		if !fn(b) {
			break
		}
	}
	return nil
}

// Runs returns the term sets Run was called with, oldest first.
func (e *Engine) Runs() [][]ecsbind.Term {
	return e.runs
}

// Served returns how many batches were handed to callbacks in total.
func (e *Engine) Served() int {
	return e.served
}
