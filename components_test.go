package ecsbind_test

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwinsyarief/ecsbind"
)

// --- Test Components ---
type Position struct{ X, Y float64 }
type Velocity struct{ X, Y float64 }
type Mass struct{ Value float32 }
type Frozen struct{}

type C1 struct{ V int64 }
type C2 struct{ V int64 }
type C3 struct{ V int64 }
type C4 struct{ V int64 }
type C5 struct{ V int64 }
type C6 struct{ V int64 }
type C7 struct{ V int64 }
type C8 struct{ V int64 }
type C9 struct{ V int64 }
type C10 struct{ V int64 }
type C11 struct{ V int64 }
type C12 struct{ V int64 }

// requireContract asserts that fn panics with an ErrContract violation.
func requireContract(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a contract panic")
		err, ok := r.(error)
		require.Truef(t, ok, "panic value %v is not an error", r)
		assert.Truef(t, eris.Is(err, ecsbind.ErrContract), "unexpected panic: %v", err)
	}()
	fn()
}
