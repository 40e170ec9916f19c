package edwards

import (
	"testing"

	"filippo.io/edwards25519/field"
	"github.com/stretchr/testify/assert"
)

func TestInvert_Zero(t *testing.T) {
	_, ok := invert(new(field.Element), new(field.Element))
	assert.Equal(t, 0, ok)

	inv, ok := invert(new(field.Element), feD)
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, new(field.Element).Multiply(inv, feD).Equal(feOne))
}

func TestSqrtRatio_NonResidue(t *testing.T) {
	// d is not a square.
	_, ok := sqrtRatio(new(field.Element), feD, feOne)
	assert.Equal(t, 0, ok)

	four := new(field.Element).Add(feOne, feOne)
	four.Add(four, four)
	r, ok := sqrtRatio(new(field.Element), four, feOne)
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, new(field.Element).Square(r).Equal(four))
}

func TestIsCanonical(t *testing.T) {
	p := mustHex(t, "edffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f")
	assert.Equal(t, 0, isCanonical(p))

	pMinusOne := mustHex(t, "ecffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f")
	assert.Equal(t, 1, isCanonical(pMinusOne))

	// The sign bit is not part of the y-coordinate.
	pMinusOne[31] |= 0x80
	assert.Equal(t, 1, isCanonical(pMinusOne))
	assert.Equal(t, 0, isCanonical(make([]byte, 31)))
}

func TestCurveConstants(t *testing.T) {
	assert.Equal(t, 1, new(field.Element).Add(feD, feD).Equal(feD2))
	// d * 121666 == -121665
	lhs := new(field.Element).Mult32(feD, 121666)
	rhs := new(field.Element).Negate(new(field.Element).Mult32(feOne, 121665))
	assert.Equal(t, 1, lhs.Equal(rhs))
}
