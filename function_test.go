package wispy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jasonflorentino/wispy"
)

func TestBuiltinPrintsLiteralTag(t *testing.T) {
	b := wispy.NewBuiltin("x", func(*wispy.Environment, *wispy.Expr) wispy.Value { return nil })
	assert.Equal(t, "<builtin>", b.String())
}

func TestBuiltinEqualityIsIdentity(t *testing.T) {
	fn := func(*wispy.Environment, *wispy.Expr) wispy.Value { return nil }
	a := wispy.NewBuiltin("a", fn)
	b := wispy.NewBuiltin("a", fn)
	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b), "Builtins compare by identity, not by name or Fn value")
}

func TestLambdaPrint(t *testing.T) {
	formals := wispy.NewQExpr(wispy.Symbol("x"), wispy.Symbol("y"))
	body := wispy.NewQExpr(wispy.Symbol("+"), wispy.Symbol("x"), wispy.Symbol("y"))
	l := wispy.NewLambda(formals, body)
	assert.Equal(t, `(\ {x y} {+ x y})`, l.String())
}

func TestLambdaEqualityIgnoresEnv(t *testing.T) {
	formals := wispy.NewQExpr(wispy.Symbol("x"))
	body := wispy.NewQExpr(wispy.Symbol("x"))
	a := wispy.NewLambda(formals, body)
	b := wispy.NewLambda(wispy.NewQExpr(wispy.Symbol("x")), wispy.NewQExpr(wispy.Symbol("x")))
	b.Env.Def(wispy.Symbol("unrelated"), wispy.Number(1))

	assert.True(t, a.IsEqual(b))
}
