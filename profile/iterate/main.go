// Profiling:
// go build ./profile/iterate
// ./iterate
// go tool pprof -http=":8000" -nodefraction=0.001 ./iterate cpu.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/edwinsyarief/ecsbind"
	"github.com/edwinsyarief/ecsbind/ecstest"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type comp3 struct {
	V int64
	W int64
}

func main() {
	rounds := 50
	iters := 1000
	entities := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		c1 := make([]comp1, numEntities)
		c2 := make([]comp2, numEntities)
		c3 := comp3{V: 1, W: 1}
		eng := ecstest.NewEngine(ecstest.NewBatch(numEntities).
			Column(ecstest.Addr(c1)).
			Column(ecstest.Addr(c2)).
			SharedColumn(ecstest.Ref(&c3)).
			Build())
		query := ecsbind.NewQuery3[ecsbind.Write[comp1], ecsbind.Read[comp2], ecsbind.Maybe[comp3]](eng)

		for range iters {
			_ = query.Each(func(a ecsbind.Write[comp1], b ecsbind.Read[comp2], c ecsbind.Maybe[comp3]) bool {
				v := a.Get()
				w := b.Get()
				v.V += w.V
				v.W += w.W
				if s, ok := c.Get(); ok {
					v.V += s.V
				}
				return true
			})
		}
	}
}
