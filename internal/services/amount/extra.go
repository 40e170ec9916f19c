package amount

import (
	"github.com/pkg/errors"

	"xmrkeys/internal/domain"
)

// txPubKeyTag marks the transaction public key field in tx extra.
const txPubKeyTag = 0x01

// ErrNoTxPublicKey is returned when tx extra does not start with a public key field.
var ErrNoTxPublicKey = errors.New("amount: tx extra has no public key")

// TxPublicKeyFromExtra returns the transaction public key R from the leading
// field of tx extra.
func TxPublicKeyFromExtra(extra []byte) (domain.PublicKey, error) {
	if len(extra) == 0 || extra[0] != txPubKeyTag {
		return domain.PublicKey{}, ErrNoTxPublicKey
	}
	if len(extra) < 1+domain.KeySize {
		return domain.PublicKey{}, errors.Wrapf(ErrNoTxPublicKey, "field truncated at %d bytes", len(extra))
	}
	return domain.MustPublicKey(extra[1 : 1+domain.KeySize]), nil
}
