package instream

import "fmt"

// ErrorKind classifies stream errors.
type ErrorKind uint8

const (
	// EndOfInput indicates that Extract was asked for more units than remain.
	EndOfInput ErrorKind = iota + 1

	// Underflow indicates that Putback was called at offset 0.
	Underflow
)

// String returns a human-readable error kind name
func (k ErrorKind) String() string {
	switch k {
	case EndOfInput:
		return "EndOfInput"
	case Underflow:
		return "Underflow"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// Error is the structured failure raised by streams.
//
// Stream identifies the stream the error happened on. RequestedUnits and
// AvailableUnits are only set for EndOfInput.
type Error struct {
	Kind           ErrorKind
	Stream         string
	RequestedUnits int
	AvailableUnits int
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrEndOfInput = &Error{Kind: EndOfInput}
	ErrUnderflow  = &Error{Kind: Underflow}
)

// Error implements the error interface
func (e *Error) Error() string {
	switch e.Kind {
	case EndOfInput:
		return fmt.Sprintf("failed to read %d unit(s) from stream %s, only %d units available",
			e.RequestedUnits, e.Stream, e.AvailableUnits)
	case Underflow:
		return fmt.Sprintf("underflow in stream %s", e.Stream)
	default:
		return fmt.Sprintf("%s in stream %s", e.Kind, e.Stream)
	}
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Context returns the machine-readable fields of the error.
func (e *Error) Context() map[string]any {
	ctx := map[string]any{
		"objectType": "stream",
		"object":     e.Stream,
	}
	if e.Kind == EndOfInput {
		ctx["requestedUnits"] = e.RequestedUnits
		ctx["availableUnits"] = e.AvailableUnits
	}
	return ctx
}
