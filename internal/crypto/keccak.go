package crypto

import (
	"golang.org/x/crypto/sha3"

	"xmrkeys/internal/crypto/edwards"
	"xmrkeys/internal/domain"
	"xmrkeys/internal/util/memzero"
)

// Keccak256 returns the Keccak-256 digest of the concatenated parts.
func Keccak256(parts ...[]byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	for _, p := range parts {
		h.Write(p)
	}
	var out [32]byte
	h.Sum(out[:0])
	return out
}

// HashToScalar returns Keccak256(parts...) reduced modulo L.
func HashToScalar(parts ...[]byte) (domain.SecretKey, error) {
	digest := Keccak256(parts...)
	defer memzero.Key(&digest)

	r, err := edwards.ScalarReduce(digest[:])
	if err != nil {
		return domain.SecretKey{}, err
	}
	return domain.MustSecretKey(r), nil
}
