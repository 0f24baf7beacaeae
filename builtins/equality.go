package wispybuiltins

import "github.com/jasonflorentino/wispy"

// eqOp builds an equality builtin: exactly two args, structural equality
// per Value.IsEqual, returns Number 0 or 1.
func eqOp(name string, want bool) *wispy.Builtin {
	return wispy.NewBuiltin(name, func(_ *wispy.Environment, args *wispy.Expr) wispy.Value {
		if e := requireArity(name, args, 2); e != nil {
			return e
		}
		a, _ := args.Nth(0)
		b, _ := args.Nth(1)
		return wispy.MakeBool(a.IsEqual(b) == want)
	})
}

// Eq implements `== a b`.
var Eq = eqOp("==", true)

// Ne implements `!= a b`.
var Ne = eqOp("!=", false)
