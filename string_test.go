package wispy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jasonflorentino/wispy"
)

func TestStringPrintEscapes(t *testing.T) {
	s := wispy.MakeString("a\tb\nc\"d\\e")
	assert.Equal(t, `"a\tb\nc\"d\\e"`, s.String())
}

func TestStringGoStringIsRaw(t *testing.T) {
	s := wispy.MakeString("a\nb")
	assert.Equal(t, "a\nb", s.GoString())
}
