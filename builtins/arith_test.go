package wispybuiltins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	wispybuiltins "github.com/jasonflorentino/wispy/builtins"

	"github.com/jasonflorentino/wispy"
)

func TestAdd(t *testing.T) {
	assert.Equal(t, wispy.Number(7), call(wispybuiltins.Add, nil, wispy.Number(3), wispy.Number(4)))
}

func TestSubUnaryNegates(t *testing.T) {
	assert.Equal(t, wispy.Number(-5), call(wispybuiltins.Sub, nil, wispy.Number(5)))
}

func TestSubFoldsLeft(t *testing.T) {
	assert.Equal(t, wispy.Number(-6), call(wispybuiltins.Sub, nil, wispy.Number(3), wispy.Number(4), wispy.Number(5)))
}

func TestMul(t *testing.T) {
	assert.Equal(t, wispy.Number(24), call(wispybuiltins.Mul, nil, wispy.Number(2), wispy.Number(3), wispy.Number(4)))
}

func TestDivByZero(t *testing.T) {
	got := call(wispybuiltins.Div, nil, wispy.Number(1), wispy.Number(0))
	assert.Equal(t, "Error: Division by zero!", got.String())
}

func TestModByZero(t *testing.T) {
	got := call(wispybuiltins.Mod, nil, wispy.Number(1), wispy.Number(0))
	assert.Equal(t, "Error: Division by zero!", got.String())
}

func TestArithRejectsNonNumber(t *testing.T) {
	got := call(wispybuiltins.Add, nil, wispy.Number(1), wispy.MakeString("x"))
	assert.Equal(t, "Error: Cannot operate on non-number!", got.String())
}

func TestArithNoArgsIsArityError(t *testing.T) {
	got := call(wispybuiltins.Add, nil)
	assert.Equal(t, wispy.KindError, got.Kind())
}
