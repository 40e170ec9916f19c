package edwards

import (
	"fmt"

	"filippo.io/edwards25519"

	"xmrkeys/internal/util/memzero"
)

const (
	// ScalarSize is the length of a canonical scalar encoding.
	ScalarSize = 32

	// WideScalarSize is the longest input accepted by SetReducedBytes.
	WideScalarSize = 64
)

// Scalar is an integer modulo the group order L. The zero value is zero.
type Scalar struct {
	s edwards25519.Scalar
}

// NewScalar returns a new zero Scalar.
func NewScalar() *Scalar {
	return &Scalar{}
}

// Set sets v = x and returns v.
func (v *Scalar) Set(x *Scalar) *Scalar {
	v.s.Set(&x.s)
	return v
}

// SetCanonicalBytes sets v = x, where x is a 32-byte little-endian value
// in [0, L). Otherwise it returns ErrNonCanonical and leaves v unchanged.
func (v *Scalar) SetCanonicalBytes(x []byte) (*Scalar, error) {
	if len(x) != ScalarSize {
		return nil, fmt.Errorf("%w: scalar must be %d bytes, got %d", ErrInvalidEncoding, ScalarSize, len(x))
	}
	if _, err := v.s.SetCanonicalBytes(x); err != nil {
		return nil, ErrNonCanonical
	}
	return v, nil
}

// SetUniformBytes sets v = x mod L for a 64-byte little-endian x.
func (v *Scalar) SetUniformBytes(x []byte) (*Scalar, error) {
	if len(x) != WideScalarSize {
		return nil, fmt.Errorf("%w: wide scalar must be %d bytes, got %d", ErrInvalidEncoding, WideScalarSize, len(x))
	}
	if _, err := v.s.SetUniformBytes(x); err != nil {
		return nil, err
	}
	return v, nil
}

// SetReducedBytes sets v = x mod L for a little-endian x of at most 64 bytes.
// Shorter inputs are zero-extended to 64 bytes before the reduction.
func (v *Scalar) SetReducedBytes(x []byte) (*Scalar, error) {
	if len(x) > WideScalarSize {
		return nil, fmt.Errorf("%w: input must be at most %d bytes, got %d", ErrInvalidEncoding, WideScalarSize, len(x))
	}
	var wide [WideScalarSize]byte
	copy(wide[:], x)
	_, err := v.SetUniformBytes(wide[:])
	memzero.Zero(wide[:])
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Add sets v = x + y mod L and returns v.
func (v *Scalar) Add(x, y *Scalar) *Scalar {
	v.s.Add(&x.s, &y.s)
	return v
}

// Subtract sets v = x - y mod L and returns v.
func (v *Scalar) Subtract(x, y *Scalar) *Scalar {
	v.s.Subtract(&x.s, &y.s)
	return v
}

// Multiply sets v = x * y mod L and returns v.
func (v *Scalar) Multiply(x, y *Scalar) *Scalar {
	v.s.Multiply(&x.s, &y.s)
	return v
}

// Equal returns 1 if v and x are equal, and 0 otherwise.
func (v *Scalar) Equal(x *Scalar) int {
	return v.s.Equal(&x.s)
}

// Bytes returns the canonical 32-byte little-endian encoding of v.
func (v *Scalar) Bytes() []byte {
	return v.s.Bytes()
}
