// Package crypto exposes the hashing and key-parsing helpers used around the
// curve arithmetic in crypto/edwards.
//
// Contents
//
//   - Keccak-256 as used by Monero (the original Keccak padding, not SHA3-256)
//   - Hash-to-scalar Hs(x) = Keccak256(x) mod L (HashToScalar)
//   - Hex parsing of public and secret keys with validation (ParsePublicKey,
//     ParseSecretKey)
//   - Short key fingerprints for display and logging (Fingerprint)
//
// # Notes
//
// Functions return the fixed-size array types defined in internal/domain.
// Secret keys are checked for canonicality on parse; public keys are checked to
// decode as curve points.
package crypto
