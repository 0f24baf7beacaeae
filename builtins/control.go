package wispybuiltins

import "github.com/jasonflorentino/wispy"

// If implements `if c {then} {else}`: c must be a Number, both branches
// must be QExprs. The non-chosen branch is never evaluated; the chosen
// branch is re-tagged as an SExpr in place before evaluation.
var If = wispy.NewBuiltin("if", func(env *wispy.Environment, args *wispy.Expr) wispy.Value {
	if e := requireArity("if", args, 3); e != nil {
		return e
	}
	cond, e := getNumber("if", args, 0)
	if e != nil {
		return e
	}
	then, e := getQExpr("if", args, 1)
	if e != nil {
		return e
	}
	els, e := getQExpr("if", args, 2)
	if e != nil {
		return e
	}

	branch := els
	if wispy.IsTrue(cond) {
		branch = then
	}
	chosen := wispy.Copy(branch).(*wispy.Expr)
	chosen.Unquote()
	return wispy.Eval(env, chosen)
})
