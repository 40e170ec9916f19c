package edwards

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoint_EncodeDecodeRoundTrip(t *testing.T) {
	for i := 0; i < 16; i++ {
		enc := randomPoint(t)
		p, err := new(Point).SetBytes(enc)
		require.NoError(t, err)
		assert.Equal(t, enc, p.Bytes())
		assert.Equal(t, p.Bytes(), p.Bytes(), "encoding must be deterministic")

		q, err := new(Point).SetBytes(p.Bytes())
		require.NoError(t, err)
		assert.Equal(t, 1, p.Equal(q))
	}
}

func TestPoint_SetBytesLeavesReceiverOnError(t *testing.T) {
	p := NewGeneratorPoint()
	_, err := p.SetBytes(scalarInt(2))
	require.ErrorIs(t, err, ErrNotOnCurve)
	assert.Equal(t, basePointHex, hex.EncodeToString(p.Bytes()))
}

func TestPoint_ProjectiveEquality(t *testing.T) {
	g := NewGeneratorPoint()
	// Different Z, same group element.
	viaAdd := new(Point).Add(g, NewIdentityPoint())
	viaAdd.Add(viaAdd, NewIdentityPoint())
	assert.Equal(t, 1, g.Equal(viaAdd))
	assert.Equal(t, 0, g.Equal(new(Point).Double(g)))
}

func TestPoint_DoubleMatchesAdd(t *testing.T) {
	p, err := new(Point).SetBytes(randomPoint(t))
	require.NoError(t, err)
	assert.Equal(t, new(Point).Add(p, p).Bytes(), new(Point).Double(p).Bytes())
	assert.Equal(t, 1, new(Point).Double(NewIdentityPoint()).IsIdentity())
}

func TestPoint_NegateAndSubtract(t *testing.T) {
	p, err := new(Point).SetBytes(randomPoint(t))
	require.NoError(t, err)
	q, err := new(Point).SetBytes(randomPoint(t))
	require.NoError(t, err)

	sum := new(Point).Add(p, new(Point).Negate(p))
	assert.Equal(t, 1, sum.IsIdentity())

	diff := new(Point).Subtract(new(Point).Add(p, q), q)
	assert.Equal(t, 1, diff.Equal(p))
}

func TestPoint_AliasedReceiver(t *testing.T) {
	g := NewGeneratorPoint()
	p := NewGeneratorPoint()
	p.Add(p, p)
	assert.Equal(t, twoGHex, hex.EncodeToString(p.Bytes()))
	p.Double(p)
	assert.Equal(t, 1, p.Equal(new(Point).Add(new(Point).Double(g), new(Point).Double(g))))
}

func TestPoint_TypedScalarMult(t *testing.T) {
	x, err := new(Scalar).SetCanonicalBytes(randomScalar(t))
	require.NoError(t, err)
	a := new(Point).ScalarBaseMult(x)
	b := new(Point).ScalarMult(x, NewGeneratorPoint())
	assert.Equal(t, 1, a.Equal(b))
}

func TestPoint_InPrimeOrderSubgroup(t *testing.T) {
	assert.Equal(t, 1, NewGeneratorPoint().InPrimeOrderSubgroup())
	assert.Equal(t, 1, NewIdentityPoint().InPrimeOrderSubgroup())

	tp, err := new(Point).SetBytes(mustHex(t, torsionHex))
	require.NoError(t, err)
	assert.Equal(t, 0, tp.InPrimeOrderSubgroup())
}

func TestPoint_Select(t *testing.T) {
	g, id := NewGeneratorPoint(), NewIdentityPoint()
	assert.Equal(t, 1, new(Point).Select(g, id, 1).Equal(g))
	assert.Equal(t, 1, new(Point).Select(g, id, 0).IsIdentity())
}

func TestScalar_Arithmetic(t *testing.T) {
	a, err := new(Scalar).SetCanonicalBytes(randomScalar(t))
	require.NoError(t, err)
	b, err := new(Scalar).SetCanonicalBytes(randomScalar(t))
	require.NoError(t, err)

	sum := new(Scalar).Add(a, b)
	assert.Equal(t, 1, new(Scalar).Subtract(sum, b).Equal(a))

	// (a + b) * G == a*G + b*G
	lhs := new(Point).ScalarBaseMult(sum)
	rhs := new(Point).Add(new(Point).ScalarBaseMult(a), new(Point).ScalarBaseMult(b))
	assert.Equal(t, 1, lhs.Equal(rhs))

	// (a * b) * G == a * (b * G)
	prod := new(Scalar).Multiply(a, b)
	lhs = new(Point).ScalarBaseMult(prod)
	rhs = new(Point).ScalarMult(a, new(Point).ScalarBaseMult(b))
	assert.Equal(t, 1, lhs.Equal(rhs))
}

func TestScalar_SetUniformBytesLength(t *testing.T) {
	_, err := new(Scalar).SetUniformBytes(make([]byte, 32))
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestScalar_ZeroValue(t *testing.T) {
	assert.Equal(t, make([]byte, 32), NewScalar().Bytes())
	assert.Equal(t, 1, new(Point).ScalarBaseMult(NewScalar()).IsIdentity())
}
