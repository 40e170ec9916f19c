// Package edwards implements the ed25519 group arithmetic used for Monero
// subaddress derivation.
//
// # Contents
//
//   - Point: group elements in extended coordinates with complete addition,
//     fixed-window scalar multiplication and a precomputed base point table.
//   - Scalar: integers modulo the group order L, with wide reduction of hash
//     outputs and canonical decoding.
//   - Byte-buffer operations (PointAdd, ScalarMultBase, ScalarMult,
//     ScalarReduce, ScalarAdd) over fixed 32-byte little-endian encodings.
//
// # Notes
//
// Field arithmetic modulo 2^255-19 is provided by filippo.io/edwards25519/field
// and scalar arithmetic by filippo.io/edwards25519. Everything above that
// (point representation, addition law, encoding and multiplication) lives here.
//
// Scalars given to ScalarMult and ScalarMultBase are used as-is: no clamping is
// applied and all 256 bits take part in the multiplication. All operations run
// in time independent of scalar values and are safe for concurrent use.
//
// # Validation policy
//
// Decoding accepts only canonical encodings of points on the curve. PointAdd
// accepts any such point. ScalarMult also requires its input point to be in the
// prime-order subgroup; the identity is accepted, points with a torsion
// component are rejected with ErrNotInSubgroup.
package edwards
