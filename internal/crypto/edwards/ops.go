package edwards

import (
	"fmt"

	"xmrkeys/internal/util/memzero"
)

// The functions below are the byte-buffer boundary of the package. Inputs are
// read and never retained; each result is a newly allocated 32-byte slice, and
// on error the result is nil.

// PointAdd returns the encoding of P + Q.
func PointAdd(p, q []byte) ([]byte, error) {
	pp, err := new(Point).SetBytes(p)
	if err != nil {
		return nil, fmt.Errorf("point add: P: %w", err)
	}
	qq, err := new(Point).SetBytes(q)
	if err != nil {
		return nil, fmt.Errorf("point add: Q: %w", err)
	}
	return new(Point).Add(pp, qq).Bytes(), nil
}

// ScalarMultBase returns the encoding of n*G. n is used as given: it is neither
// clamped nor required to be reduced.
func ScalarMultBase(n []byte) ([]byte, error) {
	nn, err := scalarBuffer(n)
	if err != nil {
		return nil, fmt.Errorf("scalar mult base: %w", err)
	}
	defer memzero.Key(nn)
	return new(Point).scalarBaseMult(nn).Bytes(), nil
}

// ScalarMult returns the encoding of n*P. n is used as given. P must be in the
// prime-order subgroup.
func ScalarMult(n, p []byte) ([]byte, error) {
	nn, err := scalarBuffer(n)
	if err != nil {
		return nil, fmt.Errorf("scalar mult: %w", err)
	}
	defer memzero.Key(nn)
	pp, err := new(Point).SetBytes(p)
	if err != nil {
		return nil, fmt.Errorf("scalar mult: P: %w", err)
	}
	if pp.InPrimeOrderSubgroup() != 1 {
		return nil, fmt.Errorf("scalar mult: P: %w", ErrNotInSubgroup)
	}
	return new(Point).scalarMult(nn, pp).Bytes(), nil
}

// ScalarReduce returns s mod L. s may be up to 64 bytes long and is
// zero-extended to 64 bytes first.
func ScalarReduce(s []byte) ([]byte, error) {
	r, err := new(Scalar).SetReducedBytes(s)
	if err != nil {
		return nil, fmt.Errorf("scalar reduce: %w", err)
	}
	return r.Bytes(), nil
}

// ScalarAdd returns p + q mod L. Both inputs must be canonical.
func ScalarAdd(p, q []byte) ([]byte, error) {
	pp, err := new(Scalar).SetCanonicalBytes(p)
	if err != nil {
		return nil, fmt.Errorf("scalar add: p: %w", err)
	}
	qq, err := new(Scalar).SetCanonicalBytes(q)
	if err != nil {
		return nil, fmt.Errorf("scalar add: q: %w", err)
	}
	return new(Scalar).Add(pp, qq).Bytes(), nil
}

func scalarBuffer(n []byte) (*[32]byte, error) {
	if len(n) != ScalarSize {
		return nil, fmt.Errorf("%w: scalar must be %d bytes, got %d", ErrInvalidEncoding, ScalarSize, len(n))
	}
	var out [32]byte
	copy(out[:], n)
	return &out, nil
}
