package wispybuiltins

import "github.com/jasonflorentino/wispy"

// List implements `list a*` -> QExpr of the arguments.
var List = wispy.NewBuiltin("list", func(_ *wispy.Environment, args *wispy.Expr) wispy.Value {
	children := append([]wispy.Value(nil), args.ChildSlice()...)
	return wispy.NewQExpr(children...)
})

// Head implements `head {x y ...}` -> QExpr containing only x.
var Head = wispy.NewBuiltin("head", func(_ *wispy.Environment, args *wispy.Expr) wispy.Value {
	if e := requireArity("head", args, 1); e != nil {
		return e
	}
	q, e := getQExpr("head", args, 0)
	if e != nil {
		return e
	}
	if e := requireNonEmpty("head", q, 0); e != nil {
		return e
	}
	first, _ := q.Nth(0)
	return wispy.NewQExpr(wispy.Copy(first))
})

// Tail implements `tail {x y ...}` -> QExpr {y ...}.
var Tail = wispy.NewBuiltin("tail", func(_ *wispy.Environment, args *wispy.Expr) wispy.Value {
	if e := requireArity("tail", args, 1); e != nil {
		return e
	}
	q, e := getQExpr("tail", args, 0)
	if e != nil {
		return e
	}
	if e := requireNonEmpty("tail", q, 0); e != nil {
		return e
	}
	rest := append([]wispy.Value(nil), q.ChildSlice()[1:]...)
	for i, v := range rest {
		rest[i] = wispy.Copy(v)
	}
	return wispy.NewQExpr(rest...)
})

// Join implements `join {...} {...} ...` -> concatenated QExpr.
var Join = wispy.NewBuiltin("join", func(_ *wispy.Environment, args *wispy.Expr) wispy.Value {
	var joined []wispy.Value
	for i := range args.Length() {
		q, e := getQExpr("join", args, i)
		if e != nil {
			return e
		}
		for _, v := range q.ChildSlice() {
			joined = append(joined, wispy.Copy(v))
		}
	}
	return wispy.NewQExpr(joined...)
})

// Eval implements `eval {...}` -> evaluate the single QExpr argument as an
// SExpr, re-tagging a copy in place rather than evaluating the original.
var Eval = wispy.NewBuiltin("eval", func(env *wispy.Environment, args *wispy.Expr) wispy.Value {
	if e := requireArity("eval", args, 1); e != nil {
		return e
	}
	q, e := getQExpr("eval", args, 0)
	if e != nil {
		return e
	}
	sexpr := wispy.Copy(q).(*wispy.Expr)
	sexpr.Unquote()
	return wispy.Eval(env, sexpr)
})
