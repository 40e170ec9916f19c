// Package amount decodes the encrypted amounts of transaction outputs sent to
// a wallet, given its private view key.
//
// The receiver recomputes the shared derivation 8*a*R from the view key a and
// the transaction public key R, hashes it with the output index into the
// derivation scalar, and uses Keccak256("amount" || scalar) as an 8-byte XOR
// mask over the little-endian amount.
package amount
