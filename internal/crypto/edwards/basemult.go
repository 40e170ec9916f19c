package edwards

import "sync"

// baseTable[j] holds i * 16^j * G for i in [0, 16). It is built on first use
// and read-only afterwards.
var (
	baseTable     *[64]nibbleTable
	baseTableOnce sync.Once
)

func basepointTable() *[64]nibbleTable {
	baseTableOnce.Do(func() {
		t := new([64]nibbleTable)
		step := NewGeneratorPoint()
		for j := range t {
			t[j].init(step)
			step.Add(&t[j][15], step)
		}
		baseTable = t
	})
	return baseTable
}

// ScalarBaseMult sets v = x * G and returns v.
func (v *Point) ScalarBaseMult(x *Scalar) *Point {
	var n [32]byte
	copy(n[:], x.Bytes())
	return v.scalarBaseMult(&n)
}

// scalarBaseMult sets v = n * G for the 256-bit little-endian integer n.
func (v *Point) scalarBaseMult(n *[32]byte) *Point {
	table := basepointTable()

	acc := NewIdentityPoint()
	sel := new(Point)
	for j := 0; j < 64; j++ {
		table[j].lookup(sel, nibble(n, j))
		acc.Add(acc, sel)
	}
	return v.Set(acc)
}
