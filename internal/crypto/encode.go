package crypto

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"

	"xmrkeys/internal/crypto/edwards"
	"xmrkeys/internal/domain"
)

// ParsePublicKey decodes a 64-character hex string into a public key that is
// a valid curve point.
func ParsePublicKey(s string) (domain.PublicKey, error) {
	b, err := decodeKeyHex(s)
	if err != nil {
		return domain.PublicKey{}, errors.Wrap(err, "public key")
	}
	if _, err := new(edwards.Point).SetBytes(b); err != nil {
		return domain.PublicKey{}, errors.Wrap(err, "public key")
	}
	return domain.MustPublicKey(b), nil
}

// ParseSecretKey decodes a 64-character hex string into a canonical scalar.
func ParseSecretKey(s string) (domain.SecretKey, error) {
	b, err := decodeKeyHex(s)
	if err != nil {
		return domain.SecretKey{}, errors.Wrap(err, "secret key")
	}
	if _, err := new(edwards.Scalar).SetCanonicalBytes(b); err != nil {
		return domain.SecretKey{}, errors.Wrap(err, "secret key")
	}
	return domain.MustSecretKey(b), nil
}

func decodeKeyHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if err != nil {
		return nil, err
	}
	if len(b) != domain.KeySize {
		return nil, errors.Errorf("want %d bytes, got %d", domain.KeySize, len(b))
	}
	return b, nil
}
