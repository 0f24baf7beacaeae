package wispy

import "io"

// Error is a message string carrying a formatted diagnostic. It is a
// first-class Value, never a Go error or panic: it propagates only by
// being returned like any other Value.
type Error struct{ msg string }

// NewError builds an Error value with the given message.
func NewError(msg string) *Error { return &Error{msg: msg} }

// Message returns the error's diagnostic text, without the "Error: " prefix.
func (e *Error) Message() string { return e.msg }

// Kind returns KindError.
func (*Error) Kind() Kind { return KindError }

// IsEqual compares two errors by message text.
func (e *Error) IsEqual(other Value) bool {
	o, ok := other.(*Error)
	return ok && e.msg == o.msg
}

// String renders the error as "Error: <message>".
func (e *Error) String() string { return "Error: " + e.msg }

// Print writes the canonical "Error: <message>" rendering to w.
func (e *Error) Print(w io.Writer) (int, error) { return io.WriteString(w, e.String()) }

// copyValue returns e unchanged: Errors are immutable and safe to alias.
func (e *Error) copyValue() Value { return e }

// GetError returns v as an *Error, if it is one.
func GetError(v Value) (*Error, bool) {
	e, ok := v.(*Error)
	return e, ok
}
