package wispybuiltins

import (
	"t73f.de/r/zero/set"

	"github.com/jasonflorentino/wispy"
)

// symbolsOf validates that every child of q is a Symbol, returning them in
// order, or a non-symbol-formal Error naming fn.
func symbolsOf(fn string, q *wispy.Expr) ([]wispy.Symbol, *wispy.Error) {
	syms := make([]wispy.Symbol, 0, q.Length())
	for _, v := range q.ChildSlice() {
		sym, ok := wispy.GetSymbol(v)
		if !ok {
			return nil, wispy.ErrNonSymbolFormal(fn, v.Kind())
		}
		syms = append(syms, sym)
	}
	return syms, nil
}

// bind implements the shared contract of `def` and `=`: bind each symbol in
// the leading QExpr to the corresponding trailing argument, via put.
func bind(fn string, args *wispy.Expr, put func(wispy.Symbol, wispy.Value)) wispy.Value {
	q, e := getQExpr(fn, args, 0)
	if e != nil {
		return e
	}
	syms, e := symbolsOf(fn, q)
	if e != nil {
		return e
	}
	if set.New(syms...).Length() != len(syms) {
		return wispy.ErrDuplicateFormal(fn)
	}
	values := args.ChildSlice()[1:]
	if len(syms) != len(values) {
		return wispy.ErrSymbolCountMismatch(fn, len(syms), len(values))
	}
	for i, sym := range syms {
		put(sym, values[i])
	}
	return wispy.NewSExpr()
}

// Def implements `def {s1 ... sn} v1 ... vn`, binding in the global frame.
var Def = wispy.NewBuiltin("def", func(env *wispy.Environment, args *wispy.Expr) wispy.Value {
	return bind("def", args, env.Def)
})

// Put implements `= {s1 ... sn} v1 ... vn`, binding in the current frame.
var Put = wispy.NewBuiltin("=", func(env *wispy.Environment, args *wispy.Expr) wispy.Value {
	return bind("=", args, env.Put)
})

// LambdaCtor implements `\ {formals} {body}`, constructing a Lambda.
// Duplicate formal names are rejected before the Lambda is built.
var LambdaCtor = wispy.NewBuiltin(`\`, func(_ *wispy.Environment, args *wispy.Expr) wispy.Value {
	if e := requireArity(`\`, args, 2); e != nil {
		return e
	}
	formals, e := getQExpr(`\`, args, 0)
	if e != nil {
		return e
	}
	body, e := getQExpr(`\`, args, 1)
	if e != nil {
		return e
	}
	syms, e := symbolsOf(`\`, formals)
	if e != nil {
		return e
	}
	if set.New(syms...).Length() != len(syms) {
		return wispy.ErrDuplicateFormal(`\`)
	}
	return wispy.NewLambda(wispy.Copy(formals).(*wispy.Expr), wispy.Copy(body).(*wispy.Expr))
})
