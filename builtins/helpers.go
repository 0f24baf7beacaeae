// Package wispybuiltins implements the language's primitive functions:
// list and quotation operators, variable binding forms, arithmetic,
// comparison, equality, control flow, and I/O/loading. Install binds them
// all into a global Environment.
package wispybuiltins

import "github.com/jasonflorentino/wispy"

// getNumber returns args' n-th child as a Number, or a type-error Value.
func getNumber(fn string, args *wispy.Expr, n int) (wispy.Number, *wispy.Error) {
	v, err := args.Nth(n)
	if err != nil {
		return 0, wispy.ErrWrongArity(fn, args.Length(), n+1)
	}
	num, ok := v.(wispy.Number)
	if !ok {
		return 0, wispy.ErrWrongType(fn, n, v.Kind(), wispy.KindNumber)
	}
	return num, nil
}

// getQExpr returns args' n-th child as a *Expr tagged QExpr, or a type-error.
func getQExpr(fn string, args *wispy.Expr, n int) (*wispy.Expr, *wispy.Error) {
	v, err := args.Nth(n)
	if err != nil {
		return nil, wispy.ErrWrongArity(fn, args.Length(), n+1)
	}
	e, ok := v.(*wispy.Expr)
	if !ok || e.Kind() != wispy.KindQExpr {
		return nil, wispy.ErrWrongType(fn, n, v.Kind(), wispy.KindQExpr)
	}
	return e, nil
}

// getString returns args' n-th child as a String, or a type-error Value.
func getString(fn string, args *wispy.Expr, n int) (wispy.String, *wispy.Error) {
	v, err := args.Nth(n)
	if err != nil {
		return wispy.String{}, wispy.ErrWrongArity(fn, args.Length(), n+1)
	}
	s, ok := wispy.GetString(v)
	if !ok {
		return wispy.String{}, wispy.ErrWrongType(fn, n, v.Kind(), wispy.KindString)
	}
	return s, nil
}

// requireArity returns a wrong-arity Error unless args has exactly n children.
func requireArity(fn string, args *wispy.Expr, n int) *wispy.Error {
	if got := args.Length(); got != n {
		return wispy.ErrWrongArity(fn, got, n)
	}
	return nil
}

// requireNonEmpty returns an empty-arg Error if e has no children.
func requireNonEmpty(fn string, e *wispy.Expr, index int) *wispy.Error {
	if e.Length() == 0 {
		return wispy.ErrEmptyArg(fn, index)
	}
	return nil
}
