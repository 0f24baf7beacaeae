package wispybuiltins

import "github.com/jasonflorentino/wispy"

// cmpOp builds an ordering comparison builtin: exactly two Number args,
// returns Number 0 or 1.
func cmpOp(name string, less func(a, b wispy.Number) bool) *wispy.Builtin {
	return wispy.NewBuiltin(name, func(_ *wispy.Environment, args *wispy.Expr) wispy.Value {
		if e := requireArity(name, args, 2); e != nil {
			return e
		}
		a, e := getNumber(name, args, 0)
		if e != nil {
			return e
		}
		b, e := getNumber(name, args, 1)
		if e != nil {
			return e
		}
		return wispy.MakeBool(less(a, b))
	})
}

// Lt implements `< a b`.
var Lt = cmpOp("<", func(a, b wispy.Number) bool { return a < b })

// Gt implements `> a b`.
var Gt = cmpOp(">", func(a, b wispy.Number) bool { return a > b })

// Le implements `<= a b`.
var Le = cmpOp("<=", func(a, b wispy.Number) bool { return a <= b })

// Ge implements `>= a b`.
var Ge = cmpOp(">=", func(a, b wispy.Number) bool { return a >= b })
