package ecsbind

import "github.com/rotisserie/eris"

// ErrContract is wrapped by every panic this package raises. Such a panic
// means the caller or the engine broke a structural invariant (arity,
// slot alignment, null column in a required slot, row out of range); it
// is never a condition to recover from in production code.
var ErrContract = eris.New("ecsbind: contract violation")

func violation(format string, args ...any) error {
	return eris.Wrapf(ErrContract, format, args...)
}
