package ecsbind_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwinsyarief/ecsbind"
	"github.com/edwinsyarief/ecsbind/ecstest"
)

type (
	r1  = ecsbind.Read[C1]
	w2  = ecsbind.Write[C2]
	m3  = ecsbind.Maybe[C3]
	mw4 = ecsbind.MaybeWrite[C4]
	r5  = ecsbind.Read[C5]
	w6  = ecsbind.Write[C6]
	m7  = ecsbind.Maybe[C7]
	mw8 = ecsbind.MaybeWrite[C8]
	r9  = ecsbind.Read[C9]
	w10 = ecsbind.Write[C10]
	m11 = ecsbind.Maybe[C11]
	r12 = ecsbind.Read[C12]
)

var arityTypes = []reflect.Type{
	reflect.TypeFor[C1](), reflect.TypeFor[C2](), reflect.TypeFor[C3](), reflect.TypeFor[C4](),
	reflect.TypeFor[C5](), reflect.TypeFor[C6](), reflect.TypeFor[C7](), reflect.TypeFor[C8](),
	reflect.TypeFor[C9](), reflect.TypeFor[C10](), reflect.TypeFor[C11](), reflect.TypeFor[C12](),
}

var arityAccess = []ecsbind.AccessKind{
	ecsbind.ReadValue, ecsbind.WriteValue, ecsbind.OptionalReadValue, ecsbind.OptionalWriteValue,
	ecsbind.ReadValue, ecsbind.WriteValue, ecsbind.OptionalReadValue, ecsbind.OptionalWriteValue,
	ecsbind.ReadValue, ecsbind.WriteValue, ecsbind.OptionalReadValue, ecsbind.ReadValue,
}

func TestTermsEveryArity(t *testing.T) {
	reg := ecstest.NewRegistry(100)
	sets := [][]ecsbind.Term{
		ecsbind.Terms[r1](reg),
		ecsbind.Terms2[r1, w2](reg),
		ecsbind.Terms3[r1, w2, m3](reg),
		ecsbind.Terms4[r1, w2, m3, mw4](reg),
		ecsbind.Terms5[r1, w2, m3, mw4, r5](reg),
		ecsbind.Terms6[r1, w2, m3, mw4, r5, w6](reg),
		ecsbind.Terms7[r1, w2, m3, mw4, r5, w6, m7](reg),
		ecsbind.Terms8[r1, w2, m3, mw4, r5, w6, m7, mw8](reg),
		ecsbind.Terms9[r1, w2, m3, mw4, r5, w6, m7, mw8, r9](reg),
		ecsbind.Terms10[r1, w2, m3, mw4, r5, w6, m7, mw8, r9, w10](reg),
		ecsbind.Terms11[r1, w2, m3, mw4, r5, w6, m7, mw8, r9, w10, m11](reg),
		ecsbind.Terms12[r1, w2, m3, mw4, r5, w6, m7, mw8, r9, w10, m11, r12](reg),
	}
	const shapes = 12
	require.Len(t, sets, shapes)
	require.GreaterOrEqual(t, ecsbind.MaxArity, shapes)

	for n, terms := range sets {
		require.Lenf(t, terms, n+1, "arity %d", n+1)
		for i, term := range terms {
			assert.Equal(t, i, term.Slot)
			assert.Equal(t, arityTypes[i], term.Type)
			assert.Equal(t, arityAccess[i], term.Access)
			assert.Equal(t, ecsbind.ID(100+i), term.ID, "first registration order follows slot order")
		}
	}
	assert.Equal(t, shapes, reg.Registered())
}

func TestTermsIdempotentRegistration(t *testing.T) {
	eng := ecstest.NewEngine()
	q1 := ecsbind.NewQuery2[ecsbind.Read[Position], ecsbind.Write[Velocity]](eng)
	q2 := ecsbind.NewQuery2[ecsbind.Write[Velocity], ecsbind.Read[Position]](eng)

	assert.Equal(t, 2, eng.Registered())
	assert.Equal(t, 4, eng.Lookups())

	t1, t2 := q1.Terms(), q2.Terms()
	assert.Equal(t, t1[0].ID, t2[1].ID)
	assert.Equal(t, t1[1].ID, t2[0].ID)
	assert.NotEqual(t, t1[0].ID, t1[1].ID)
}

func TestTermsAccessMapping(t *testing.T) {
	reg := ecstest.NewRegistry(1)
	terms := ecsbind.Terms4[ecsbind.Read[C1], ecsbind.Write[C2], ecsbind.Maybe[C3], ecsbind.MaybeWrite[C4]](reg)

	want := []struct {
		inout ecsbind.InOutKind
		oper  ecsbind.OperKind
	}{
		{ecsbind.InOutIn, ecsbind.OperAnd},
		{ecsbind.InOutInOut, ecsbind.OperAnd},
		{ecsbind.InOutIn, ecsbind.OperOptional},
		{ecsbind.InOutInOut, ecsbind.OperOptional},
	}
	for i, w := range want {
		assert.Equal(t, w.inout, terms[i].InOut(), "slot %d", i)
		assert.Equal(t, w.oper, terms[i].Oper(), "slot %d", i)
	}
}

func TestTermsCopyIsDetached(t *testing.T) {
	eng := ecstest.NewEngine()
	q := ecsbind.NewQuery[ecsbind.Read[Position]](eng)
	terms := q.Terms()
	terms[0].ID = 9999
	assert.NotEqual(t, ecsbind.ID(9999), q.Terms()[0].ID)
}

func TestDuplicateWritableComponentPanics(t *testing.T) {
	eng := ecstest.NewEngine()
	requireContract(t, func() {
		ecsbind.NewQuery2[ecsbind.Write[Position], ecsbind.Read[Position]](eng)
	})
	requireContract(t, func() {
		ecsbind.NewQuery3[ecsbind.Read[Mass], ecsbind.Read[Position], ecsbind.MaybeWrite[Position]](eng)
	})
}

func TestDuplicateReadOnlyComponentAllowed(t *testing.T) {
	eng := ecstest.NewEngine()
	assert.NotPanics(t, func() {
		ecsbind.NewQuery2[ecsbind.Read[Position], ecsbind.Maybe[Position]](eng)
	})
}

func TestNilEnginePanics(t *testing.T) {
	requireContract(t, func() {
		ecsbind.NewQuery[ecsbind.Read[Position]](nil)
	})
}

func TestIdentifierFunc(t *testing.T) {
	var seen []reflect.Type
	ids := ecsbind.IdentifierFunc(func(t reflect.Type) ecsbind.ID {
		seen = append(seen, t)
		return ecsbind.ID(len(seen))
	})
	terms := ecsbind.Terms2[ecsbind.Read[Position], ecsbind.Write[Velocity]](ids)
	assert.Equal(t, []reflect.Type{reflect.TypeFor[Position](), reflect.TypeFor[Velocity]()}, seen)
	assert.Equal(t, ecsbind.ID(1), terms[0].ID)
	assert.Equal(t, ecsbind.ID(2), terms[1].ID)
}

func TestAccessKindString(t *testing.T) {
	assert.Equal(t, "read", ecsbind.ReadValue.String())
	assert.Equal(t, "write", ecsbind.WriteValue.String())
	assert.Equal(t, "optional-read", ecsbind.OptionalReadValue.String())
	assert.Equal(t, "optional-write", ecsbind.OptionalWriteValue.String())
	assert.Equal(t, "inout", ecsbind.WriteValue.InOut().String())
	assert.Equal(t, "optional", ecsbind.OptionalReadValue.Oper().String())
}
