package wispy

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
)

// Expr is an ordered sequence of child Values. It backs both sequence
// kinds, SExpr and QExpr: the two differ only in a quoted flag, not in
// representation, so Quote and Unquote turn one into the other in place by
// flipping that flag. The `eval` and `if` builtins copy their QExpr argument
// first and unquote the copy; `list` builds a new QExpr.
type Expr struct {
	children []Value
	quoted   bool
}

// NewSExpr builds an SExpr from the given children, owning the slice.
func NewSExpr(children ...Value) *Expr { return &Expr{children: children} }

// NewQExpr builds a QExpr from the given children, owning the slice.
func NewQExpr(children ...Value) *Expr { return &Expr{children: children, quoted: true} }

// Kind returns KindSExpr or KindQExpr depending on the quoted flag.
func (e *Expr) Kind() Kind {
	if e.quoted {
		return KindQExpr
	}
	return KindSExpr
}

// Quoted reports whether e is currently a QExpr.
func (e *Expr) Quoted() bool { return e.quoted }

// Quote re-tags e as a QExpr in place.
func (e *Expr) Quote() { e.quoted = true }

// Unquote re-tags e as an SExpr in place, used by `eval` and the chosen
// branch of `if`.
func (e *Expr) Unquote() { e.quoted = false }

// ChildSlice returns e's child slice directly. Callers that need to retain
// a reference across a mutation of e should copy it first.
func (e *Expr) ChildSlice() []Value { return e.children }

// Append adds v as a new last child of e, in place.
func (e *Expr) Append(v Value) { e.children = append(e.children, v) }

// IsEqual compares two Exprs: same kind (SExpr vs QExpr), same length, and
// element-wise structural equality.
func (e *Expr) IsEqual(other Value) bool {
	o, ok := other.(*Expr)
	if !ok || e.quoted != o.quoted || len(e.children) != len(o.children) {
		return false
	}
	for i, c := range e.children {
		if !c.IsEqual(o.children[i]) {
			return false
		}
	}
	return true
}

func (e *Expr) String() string {
	var sb strings.Builder
	_, _ = e.Print(&sb)
	return sb.String()
}

// Print renders e as `(a b c)` for an SExpr or `{a b c}` for a QExpr.
func (e *Expr) Print(w io.Writer) (int, error) {
	open, close := "(", ")"
	if e.quoted {
		open, close = "{", "}"
	}
	length, err := io.WriteString(w, open)
	if err != nil {
		return length, err
	}
	for i, c := range e.children {
		if i > 0 {
			l, err2 := io.WriteString(w, " ")
			length += l
			if err2 != nil {
				return length, err2
			}
		}
		l, err2 := Print(w, c)
		length += l
		if err2 != nil {
			return length, err2
		}
	}
	l, err := io.WriteString(w, close)
	return length + l, err
}

// --- Sequence methods

// Length returns the number of children.
func (e *Expr) Length() int { return len(e.children) }

// Nth returns the n-th child, or an error if n is out of range.
func (e *Expr) Nth(n int) (Value, error) {
	if n < 0 || n >= len(e.children) {
		return nil, fmt.Errorf("index out of range: %d (max: %d)", n, len(e.children)-1)
	}
	return e.children[n], nil
}

// Children returns an iterator over e's children in order.
func (e *Expr) Children() iter.Seq[Value] { return slices.Values(e.children) }

// copyValue deep-copies e and all of its children, so that storing it into
// an environment or a parent Expr never aliases the original — every
// Value has exactly one owner at a time.
func (e *Expr) copyValue() Value {
	children := make([]Value, len(e.children))
	for i, c := range e.children {
		children[i] = Copy(c)
	}
	return &Expr{children: children, quoted: e.quoted}
}
