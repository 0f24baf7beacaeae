package wispy

import "io"

// BuiltinFunc is the signature every builtin implements: it owns args (the
// already-evaluated SExpr of call arguments) and returns a result Value,
// which may be an *Error.
type BuiltinFunc func(env *Environment, args *Expr) Value

// Builtin is an opaque callable provided by the host, identified by
// identity rather than value: two Builtins compare equal only when they
// are the literal same callable.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

// NewBuiltin constructs a named Builtin.
func NewBuiltin(name string, fn BuiltinFunc) *Builtin { return &Builtin{Name: name, Fn: fn} }

// Kind returns KindFunction.
func (*Builtin) Kind() Kind { return KindFunction }

// IsEqual compares two Builtins by pointer identity: two Builtins are equal
// only if they are literally the same host-provided callable.
func (b *Builtin) IsEqual(other Value) bool {
	o, ok := other.(*Builtin)
	return ok && b == o
}

// String renders the Builtin as the literal text "<builtin>".
func (*Builtin) String() string { return "<builtin>" }

// Print writes "<builtin>" to w.
func (b *Builtin) Print(w io.Writer) (int, error) { return io.WriteString(w, b.String()) }

// copyValue returns b unchanged: a Builtin carries no mutable state to copy.
func (b *Builtin) copyValue() Value { return b }

// Lambda is a user-defined function: a formals list (a QExpr of Symbols,
// possibly containing the variadic marker `&`), a body (QExpr), and the
// closure's own local Environment.
type Lambda struct {
	Formals *Expr
	Body    *Expr
	Env     *Environment
}

// NewLambda constructs a Lambda with a fresh, parent-less local Environment.
func NewLambda(formals, body *Expr) *Lambda {
	return &Lambda{Formals: formals, Body: body, Env: NewEnvironment(nil)}
}

// Kind returns KindFunction.
func (*Lambda) Kind() Kind { return KindFunction }

// IsEqual compares two Lambdas structurally: same formals and same body.
// The closure environment is not part of the comparison, mirroring the
// source's value semantics for functions (environments are call-scoped
// state, not part of a Lambda's printed/compared identity).
func (l *Lambda) IsEqual(other Value) bool {
	o, ok := other.(*Lambda)
	return ok && l.Formals.IsEqual(o.Formals) && l.Body.IsEqual(o.Body)
}

// String renders the Lambda as "(\ <formals> <body>)".
func (l *Lambda) String() string {
	return "(\\ " + l.Formals.String() + " " + l.Body.String() + ")"
}

// Print writes the Lambda's canonical rendering to w.
func (l *Lambda) Print(w io.Writer) (int, error) {
	length, err := io.WriteString(w, `(\ `)
	if err != nil {
		return length, err
	}
	l1, err := Print(w, l.Formals)
	length += l1
	if err != nil {
		return length, err
	}
	l2, err := io.WriteString(w, " ")
	length += l2
	if err != nil {
		return length, err
	}
	l3, err := Print(w, l.Body)
	length += l3
	if err != nil {
		return length, err
	}
	l4, err := io.WriteString(w, ")")
	return length + l4, err
}

// copyValue deep-copies the Lambda's formals and body, and gives the copy
// a fresh local Environment populated with the same bindings but no parent
// — so that currying can hand out independent partially-applied copies
// without cross-call interference.
func (l *Lambda) copyValue() Value {
	return &Lambda{
		Formals: l.Formals.copyValue().(*Expr),
		Body:    l.Body.copyValue().(*Expr),
		Env:     l.Env.copyLocal(),
	}
}

// GetLambda returns v as a *Lambda, if it is one.
func GetLambda(v Value) (*Lambda, bool) {
	lam, ok := v.(*Lambda)
	return lam, ok
}

// GetBuiltin returns v as a *Builtin, if it is one.
func GetBuiltin(v Value) (*Builtin, bool) {
	b, ok := v.(*Builtin)
	return b, ok
}

// IsFunction reports whether v is a Builtin or a Lambda.
func IsFunction(v Value) bool { return v.Kind() == KindFunction }
