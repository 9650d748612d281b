package ecsbind

// AccessKind is the access mode of one slot in a query shape. It is fixed
// by the slot type: Read, Write, Maybe or MaybeWrite.
type AccessKind uint8

const (
	ReadValue          AccessKind = iota // Read[T]
	WriteValue                           // Write[T]
	OptionalReadValue                    // Maybe[T]
	OptionalWriteValue                   // MaybeWrite[T]
)

// Optional reports whether a batch may omit the column for this slot.
func (k AccessKind) Optional() bool {
	return k == OptionalReadValue || k == OptionalWriteValue
}

// Writable reports whether the slot hands out mutable references.
func (k AccessKind) Writable() bool {
	return k == WriteValue || k == OptionalWriteValue
}

// InOut maps the access kind to the engine's term direction.
func (k AccessKind) InOut() InOutKind {
	if k.Writable() {
		return InOutInOut
	}
	return InOutIn
}

// Oper maps the access kind to the engine's term operator.
func (k AccessKind) Oper() OperKind {
	if k.Optional() {
		return OperOptional
	}
	return OperAnd
}

func (k AccessKind) String() string {
	switch k {
	case ReadValue:
		return "read"
	case WriteValue:
		return "write"
	case OptionalReadValue:
		return "optional-read"
	case OptionalWriteValue:
		return "optional-write"
	}
	return "unknown"
}

// InOutKind is the data direction the engine records on a term.
type InOutKind uint8

const (
	InOutIn InOutKind = iota + 1
	InOutInOut
)

func (k InOutKind) String() string {
	switch k {
	case InOutIn:
		return "in"
	case InOutInOut:
		return "inout"
	}
	return "default"
}

// OperKind is the matching operator the engine records on a term.
type OperKind uint8

const (
	OperAnd OperKind = iota
	OperOptional
)

func (k OperKind) String() string {
	if k == OperOptional {
		return "optional"
	}
	return "and"
}
