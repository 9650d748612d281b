package ecsbind

import "github.com/rs/zerolog"

func termIntoArray(t Term, arr *zerolog.Array) *zerolog.Array {
	dict := zerolog.Dict().
		Uint64("component_id", uint64(t.ID)).
		Str("component", t.Type.String()).
		Str("access", t.Access.String()).
		Int("slot", t.Slot)
	return arr.Dict(dict)
}

// logTerms writes a query's term set to ev. A nil event (disabled level)
// is a no-op.
func logTerms(ev *zerolog.Event, name string, terms []Term) {
	if ev == nil {
		return
	}
	arr := zerolog.Arr()
	for _, t := range terms {
		arr = termIntoArray(t, arr)
	}
	ev.Str("query", name).
		Int("total_terms", len(terms)).
		Array("terms", arr).
		Msg("query terms built")
}
