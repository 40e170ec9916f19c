package edwards

import "errors"

var (
	// ErrInvalidEncoding is returned when a buffer has the wrong length or is not
	// the canonical encoding of a point (y >= p, or a sign bit on x = 0).
	ErrInvalidEncoding = errors.New("edwards: invalid encoding")

	// ErrNotOnCurve is returned when no curve point has the encoded y-coordinate.
	ErrNotOnCurve = errors.New("edwards: point is not on the curve")

	// ErrNotInSubgroup is returned when a point has a small-order component.
	ErrNotInSubgroup = errors.New("edwards: point is not in the prime-order subgroup")

	// ErrNonCanonical is returned when a scalar is not reduced modulo L.
	ErrNonCanonical = errors.New("edwards: scalar is not canonical")
)
