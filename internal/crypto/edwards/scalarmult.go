package edwards

import (
	"crypto/subtle"
)

// groupOrder is L = 2^252 + 27742317777372353535851937790883648493, little-endian.
var groupOrder = [32]byte{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

// nibbleTable holds i*P for i in [0, 16).
type nibbleTable [16]Point

func (t *nibbleTable) init(p *Point) {
	t[0].Identity()
	t[1].Set(p)
	for i := 2; i < 16; i++ {
		t[i].Add(&t[i-1], p)
	}
}

// lookup sets v = t[idx] without branching or indexing on idx.
func (t *nibbleTable) lookup(v *Point, idx byte) {
	v.Identity()
	for i := 1; i < 16; i++ {
		v.Select(&t[i], v, subtle.ConstantTimeByteEq(byte(i), idx))
	}
}

// nibble returns the i-th 4-bit digit of the little-endian scalar n.
func nibble(n *[32]byte, i int) byte {
	return (n[i/2] >> (4 * uint(i%2))) & 0x0f
}

// ScalarMult sets v = x * q and returns v.
func (v *Point) ScalarMult(x *Scalar, q *Point) *Point {
	var n [32]byte
	copy(n[:], x.Bytes())
	return v.scalarMult(&n, q)
}

// scalarMult sets v = n * q for the 256-bit little-endian integer n, using
// unsigned 4-bit windows from the most significant digit down.
func (v *Point) scalarMult(n *[32]byte, q *Point) *Point {
	var table nibbleTable
	table.init(q)

	acc := NewIdentityPoint()
	sel := new(Point)
	for i := 63; i >= 0; i-- {
		acc.Double(acc)
		acc.Double(acc)
		acc.Double(acc)
		acc.Double(acc)
		table.lookup(sel, nibble(n, i))
		acc.Add(acc, sel)
	}
	return v.Set(acc)
}
