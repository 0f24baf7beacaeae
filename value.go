// Package wispy provides the runtime value model, lexical environment,
// evaluator and call machinery of the Wispy language.
package wispy

import (
	"fmt"
	"io"
)

// Kind tags the seven variants a Value can take.
type Kind int

// The seven kinds of Value.
const (
	KindNumber Kind = iota
	KindError
	KindSymbol
	KindString
	KindSExpr
	KindQExpr
	KindFunction
)

// String returns the human-readable name of a Kind, as used in error
// messages ("Got Number, Expected Q-Expression").
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindError:
		return "Error"
	case KindSymbol:
		return "Symbol"
	case KindString:
		return "String"
	case KindSExpr:
		return "S-Expression"
	case KindQExpr:
		return "Q-Expression"
	case KindFunction:
		return "Function"
	default:
		return "Unknown"
	}
}

// Value is implemented by every runtime object: Number, *Error, Symbol,
// String, *Expr (both SExpr and QExpr), *Builtin, *Lambda.
type Value interface {
	fmt.Stringer

	// Kind reports which of the seven variants this value is.
	Kind() Kind

	// IsEqual reports structural equality, per the kind-specific rules of
	// the language's equality builtins (==, !=).
	IsEqual(Value) bool
}

// Printable is implemented by Values whose canonical rendering needs more
// than String() alone, so that it can be written directly to a Writer
// without an intermediate allocation.
type Printable interface {
	Print(w io.Writer) (int, error)
}

// Print writes the canonical rendering of v to w, using its Print method if
// it has one, falling back to String() otherwise.
func Print(w io.Writer, v Value) (int, error) {
	if p, ok := v.(Printable); ok {
		return p.Print(w)
	}
	return io.WriteString(w, v.String())
}

// copier is implemented by Values whose children must be deep-copied when
// the value moves into an environment or a parent sequence, preserving the
// single-owner discipline. Atomic values don't need it: they are immutable
// and safe to alias.
type copier interface {
	copyValue() Value
}

// Copy returns an independent value with the same content as v, so the
// caller may retain v without violating the single-owner discipline.
func Copy(v Value) Value {
	if c, ok := v.(copier); ok {
		return c.copyValue()
	}
	return v
}
