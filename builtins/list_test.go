package wispybuiltins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	wispybuiltins "github.com/jasonflorentino/wispy/builtins"

	"github.com/jasonflorentino/wispy"
)

func call(fn *wispy.Builtin, env *wispy.Environment, args ...wispy.Value) wispy.Value {
	if env == nil {
		env = wispy.NewEnvironment(nil)
	}
	return fn.Fn(env, wispy.NewSExpr(args...))
}

func TestList(t *testing.T) {
	got := call(wispybuiltins.List, nil, wispy.Number(1), wispy.Number(2))
	want := wispy.NewQExpr(wispy.Number(1), wispy.Number(2))
	assert.True(t, want.IsEqual(got))
}

func TestHead(t *testing.T) {
	got := call(wispybuiltins.Head, nil, wispy.NewQExpr(wispy.Number(1), wispy.Number(2)))
	assert.True(t, wispy.NewQExpr(wispy.Number(1)).IsEqual(got))
}

func TestHeadEmptyIsError(t *testing.T) {
	got := call(wispybuiltins.Head, nil, wispy.NewQExpr())
	assert.Equal(t, wispy.KindError, got.Kind())
}

func TestTail(t *testing.T) {
	got := call(wispybuiltins.Tail, nil, wispy.NewQExpr(wispy.Number(1), wispy.Number(2), wispy.Number(3)))
	assert.True(t, wispy.NewQExpr(wispy.Number(2), wispy.Number(3)).IsEqual(got))
}

func TestJoin(t *testing.T) {
	got := call(wispybuiltins.Join, nil,
		wispy.NewQExpr(wispy.Number(1)),
		wispy.NewQExpr(wispy.Number(2), wispy.Number(3)))
	assert.True(t, wispy.NewQExpr(wispy.Number(1), wispy.Number(2), wispy.Number(3)).IsEqual(got))
}

func TestJoinRejectsNonQExpr(t *testing.T) {
	got := call(wispybuiltins.Join, nil, wispy.Number(1))
	assert.Equal(t, wispy.KindError, got.Kind())
}

func TestEvalBuiltin(t *testing.T) {
	env := wispy.NewEnvironment(nil)
	env.Def(wispy.Symbol("+"), wispybuiltins.Add)
	got := call(wispybuiltins.Eval, env, wispy.NewQExpr(wispy.Symbol("+"), wispy.Number(1), wispy.Number(2)))
	assert.Equal(t, wispy.Number(3), got)
}
