package edwards

import (
	"filippo.io/edwards25519/field"
)

var (
	feOne = new(field.Element).One()

	// feD is the curve constant d = -121665/121666.
	feD = mustElement([]byte{
		163, 120, 89, 19, 202, 77, 235, 117, 171, 216, 65, 65, 77, 10, 112, 0,
		152, 232, 121, 119, 121, 64, 199, 140, 115, 254, 111, 43, 238, 108, 3, 82,
	})

	// feD2 is 2*d.
	feD2 = mustElement([]byte{
		89, 241, 178, 38, 148, 155, 214, 235, 86, 177, 131, 130, 154, 20, 224, 0,
		48, 209, 243, 238, 242, 128, 142, 25, 231, 252, 223, 86, 220, 217, 6, 36,
	})
)

func mustElement(b []byte) *field.Element {
	e, err := new(field.Element).SetBytes(b)
	if err != nil {
		panic(err)
	}
	return e
}

// invert sets v = 1/x. ok is 0 if x is zero, in which case v is zero.
func invert(v, x *field.Element) (out *field.Element, ok int) {
	zero := new(field.Element)
	ok = 1 - x.Equal(zero)
	return v.Invert(x), ok
}

// sqrtRatio sets v to the non-negative square root of u/w. ok is 0 when u/w is
// not a square (or w is zero and u is not), in which case v must not be used.
func sqrtRatio(v, u, w *field.Element) (out *field.Element, ok int) {
	return v.SqrtRatio(u, w)
}

// isCanonical reports whether the low 255 bits of b encode a value below p.
// It runs in constant time.
func isCanonical(b []byte) int {
	e, err := new(field.Element).SetBytes(b)
	if err != nil {
		return 0
	}
	enc := e.Bytes()
	var diff byte
	for i := 0; i < 31; i++ {
		diff |= enc[i] ^ b[i]
	}
	diff |= enc[31] ^ (b[31] & 0x7f)
	return int((uint32(diff) - 1) >> 31)
}
