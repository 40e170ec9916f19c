package types

import (
	"encoding/hex"
	"fmt"
)

// KeySize is the length of an encoded public or secret key.
const KeySize = 32

// PublicKey is a compressed ed25519 point (public spend or view key).
type PublicKey [KeySize]byte

// Slice returns the key as a []byte.
func (p PublicKey) Slice() []byte { return p[:] }

// String returns the lowercase hex encoding of the key.
func (p PublicKey) String() string { return hex.EncodeToString(p[:]) }

// SecretKey is a canonical scalar modulo the group order (private spend or view key).
type SecretKey [KeySize]byte

// Slice returns the key as a []byte.
func (k SecretKey) Slice() []byte { return k[:] }

// String redacts the key so it cannot leak through logs or %v.
func (k SecretKey) String() string { return "SecretKey(redacted)" }

// Hex returns the lowercase hex encoding of the key.
func (k SecretKey) Hex() string { return hex.EncodeToString(k[:]) }

// MustPublicKey copies b into a PublicKey and panics if b is not 32 bytes.
func MustPublicKey(b []byte) PublicKey {
	if len(b) != KeySize {
		panic(fmt.Errorf("public key: want %d bytes, got %d", KeySize, len(b)))
	}
	var out PublicKey
	copy(out[:], b)
	return out
}

// MustSecretKey copies b into a SecretKey and panics if b is not 32 bytes.
func MustSecretKey(b []byte) SecretKey {
	if len(b) != KeySize {
		panic(fmt.Errorf("secret key: want %d bytes, got %d", KeySize, len(b)))
	}
	var out SecretKey
	copy(out[:], b)
	return out
}
