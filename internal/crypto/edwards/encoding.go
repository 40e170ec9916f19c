package edwards

import (
	"fmt"

	"filippo.io/edwards25519/field"
)

// PointSize is the length of a compressed point encoding.
const PointSize = 32

// SetBytes sets v to the point encoded by x and returns v.
//
// x must be the canonical 32-byte encoding of a point on the curve: the
// little-endian y-coordinate with the sign of x in the top bit. If x is not
// canonical SetBytes returns ErrInvalidEncoding, and if no point has that
// y-coordinate it returns ErrNotOnCurve. On error v is unchanged.
func (v *Point) SetBytes(x []byte) (*Point, error) {
	if len(x) != PointSize {
		return nil, fmt.Errorf("%w: point must be %d bytes, got %d", ErrInvalidEncoding, PointSize, len(x))
	}
	if isCanonical(x) != 1 {
		return nil, fmt.Errorf("%w: y-coordinate is not reduced", ErrInvalidEncoding)
	}
	y, err := new(field.Element).SetBytes(x)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	// -x^2 + y^2 = 1 + d*x^2*y^2  =>  x^2 = (y^2 - 1) / (d*y^2 + 1)
	y2 := new(field.Element).Square(y)
	u := new(field.Element).Subtract(y2, feOne)
	w := new(field.Element).Multiply(y2, feD)
	w.Add(w, feOne)

	xx, wasSquare := sqrtRatio(new(field.Element), u, w)
	if wasSquare == 0 {
		return nil, ErrNotOnCurve
	}

	sign := int(x[31] >> 7)
	if sign == 1 && xx.Equal(new(field.Element)) == 1 {
		return nil, fmt.Errorf("%w: sign bit set for x = 0", ErrInvalidEncoding)
	}
	xx.Select(new(field.Element).Negate(xx), xx, sign)

	v.x.Set(xx)
	v.y.Set(y)
	v.z.One()
	v.t.Multiply(xx, y)
	return v, nil
}

// Bytes returns the canonical 32-byte encoding of v.
func (v *Point) Bytes() []byte {
	var out [PointSize]byte
	return v.bytes(&out)
}

func (v *Point) bytes(out *[PointSize]byte) []byte {
	zInv, ok := invert(new(field.Element), &v.z)
	if ok == 0 {
		// Complete addition never produces Z = 0 from valid inputs.
		panic("edwards: point with Z = 0")
	}
	x := new(field.Element).Multiply(&v.x, zInv)
	y := new(field.Element).Multiply(&v.y, zInv)

	copy(out[:], y.Bytes())
	out[31] |= byte(x.IsNegative() << 7)
	return out[:]
}
