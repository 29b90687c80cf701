package tyson

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComparatorLeafWithRoot(t *testing.T) {
	c := Gt("", Int(5))
	assert.Equal(t, "gt{root: n|5|}", c.String())
}

func TestComparatorLeafWithPath(t *testing.T) {
	c := Gt("num", Int(5))
	assert.Equal(t, "gt{value|num|: n|5|}", c.String())
}

func TestComparatorAnd(t *testing.T) {
	c := And(Gt("num", Int(5)), Lte("num", Int(50)))
	assert.Equal(t, "and[gt{value|num|: n|5|},lte{value|num|: n|50|},]", c.String())
}

func TestComparatorNot(t *testing.T) {
	c := Not("num")
	assert.Equal(t, "not(value|num|)", c.String())
}

func TestComparatorEmptyAndOr(t *testing.T) {
	assert.Equal(t, "and[]", And().String())
	assert.Equal(t, "or[]", Or().String())
}
