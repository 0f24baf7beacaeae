package wispy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jasonflorentino/wispy"
)

func TestExprPrint(t *testing.T) {
	s := wispy.NewSExpr(wispy.Number(1), wispy.Symbol("+"), wispy.Number(2))
	assert.Equal(t, "(1 + 2)", s.String())

	q := wispy.NewQExpr(wispy.Number(1), wispy.Number(2))
	assert.Equal(t, "{1 2}", q.String())
}

func TestExprQuoteUnquoteInPlace(t *testing.T) {
	s := wispy.NewSExpr(wispy.Number(1))
	assert.Equal(t, wispy.KindSExpr, s.Kind())

	s.Quote()
	assert.Equal(t, wispy.KindQExpr, s.Kind())
	assert.Equal(t, "{1}", s.String())

	s.Unquote()
	assert.Equal(t, wispy.KindSExpr, s.Kind())
	assert.Equal(t, "(1)", s.String())
}

func TestExprIsEqual(t *testing.T) {
	a := wispy.NewQExpr(wispy.Number(1), wispy.Number(2))
	b := wispy.NewQExpr(wispy.Number(1), wispy.Number(2))
	c := wispy.NewQExpr(wispy.Number(1), wispy.Number(3))
	d := wispy.NewSExpr(wispy.Number(1), wispy.Number(2))

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(d), "SExpr and QExpr with the same children are not equal")
}

func TestExprNth(t *testing.T) {
	s := wispy.NewSExpr(wispy.Number(10), wispy.Number(20))
	v, err := s.Nth(1)
	assert.NoError(t, err)
	assert.Equal(t, wispy.Number(20), v)

	_, err = s.Nth(5)
	assert.Error(t, err)
}
