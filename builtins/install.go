package wispybuiltins

import "github.com/jasonflorentino/wispy"

// all lists every builtin this package provides, alongside the symbol it
// is bound to in the global environment.
var all = []struct {
	sym wispy.Symbol
	fn  *wispy.Builtin
}{
	{"list", List},
	{"head", Head},
	{"tail", Tail},
	{"join", Join},
	{"eval", Eval},

	{"def", Def},
	{"=", Put},
	{`\`, LambdaCtor},

	{"+", Add},
	{"-", Sub},
	{"*", Mul},
	{"/", Div},
	{"%", Mod},

	{">", Gt},
	{"<", Lt},
	{">=", Ge},
	{"<=", Le},

	{"==", Eq},
	{"!=", Ne},

	{"if", If},

	{"print", Print},
	{"error", MakeError},
	{"load", Load},
}

// Install binds every builtin in this package into env, which should be
// the global (root-most) environment: `def`'s effect is only meaningful
// when called from there.
func Install(env *wispy.Environment) {
	for _, b := range all {
		env.Def(b.sym, b.fn)
	}
}
