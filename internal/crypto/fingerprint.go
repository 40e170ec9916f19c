package crypto

import (
	"encoding/hex"

	"xmrkeys/internal/domain"
)

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes with Keccak-256 and truncates to 6 bytes (12 hex chars).
func Fingerprint(pub domain.PublicKey) string {
	sum := Keccak256(pub[:])
	return hex.EncodeToString(sum[:6])
}
