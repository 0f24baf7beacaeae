package wispybuiltins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	wispybuiltins "github.com/jasonflorentino/wispy/builtins"

	"github.com/jasonflorentino/wispy"
)

func TestIfTrueBranch(t *testing.T) {
	env := wispy.NewEnvironment(nil)
	got := call(wispybuiltins.If, env,
		wispy.Number(1),
		wispy.NewQExpr(wispy.Number(10)),
		wispy.NewQExpr(wispy.Number(20)))
	assert.Equal(t, wispy.Number(10), got)
}

func TestIfFalseBranch(t *testing.T) {
	env := wispy.NewEnvironment(nil)
	got := call(wispybuiltins.If, env,
		wispy.Number(0),
		wispy.NewQExpr(wispy.Number(10)),
		wispy.NewQExpr(wispy.Number(20)))
	assert.Equal(t, wispy.Number(20), got)
}

func TestIfDoesNotEvaluateOtherBranch(t *testing.T) {
	env := wispy.NewEnvironment(nil)
	got := call(wispybuiltins.If, env,
		wispy.Number(1),
		wispy.NewQExpr(wispy.Number(10)),
		wispy.NewQExpr(wispy.Symbol("undefined-symbol")))
	assert.Equal(t, wispy.Number(10), got)
}

func TestIfRequiresQExprBranches(t *testing.T) {
	env := wispy.NewEnvironment(nil)
	got := call(wispybuiltins.If, env, wispy.Number(1), wispy.Number(10), wispy.NewQExpr())
	assert.Equal(t, wispy.KindError, got.Kind())
}
