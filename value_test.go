package wispy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jasonflorentino/wispy"
)

func TestKindString(t *testing.T) {
	cases := []struct {
		k    wispy.Kind
		want string
	}{
		{wispy.KindNumber, "Number"},
		{wispy.KindError, "Error"},
		{wispy.KindSymbol, "Symbol"},
		{wispy.KindString, "String"},
		{wispy.KindSExpr, "S-Expression"},
		{wispy.KindQExpr, "Q-Expression"},
		{wispy.KindFunction, "Function"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.k.String())
	}
}

func TestCopyAtomicIsIdentity(t *testing.T) {
	n := wispy.Number(5)
	assert.Equal(t, wispy.Value(n), wispy.Copy(n))

	e := wispy.NewError("boom")
	assert.Same(t, e, wispy.Copy(e))
}

func TestCopySExprDeep(t *testing.T) {
	inner := wispy.NewQExpr(wispy.Number(1))
	outer := wispy.NewSExpr(inner, wispy.Symbol("x"))

	copied := wispy.Copy(outer).(*wispy.Expr)
	assert.True(t, outer.IsEqual(copied))

	copied.ChildSlice()[0].(*wispy.Expr).Append(wispy.Number(2))
	assert.False(t, outer.IsEqual(copied), "mutating the copy must not affect the original")
}
