package amount

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"xmrkeys/internal/crypto"
	"xmrkeys/internal/crypto/edwards"
	"xmrkeys/internal/domain"
	"xmrkeys/internal/util/memzero"
)

const amountDomain = "amount"

// Service decodes and checks output amounts.
type Service struct {
	log zerolog.Logger
}

// New returns an amount service logging to log.
func New(log zerolog.Logger) *Service {
	return &Service{log: log.With().Str("component", "amount").Logger()}
}

// DerivationKey returns 8*view*txPub, the key derivation shared between the
// sender and the owner of view.
func DerivationKey(view domain.SecretKey, txPub domain.PublicKey) (domain.PublicKey, error) {
	v2, err := edwards.ScalarAdd(view[:], view[:])
	if err != nil {
		return domain.PublicKey{}, errors.Wrap(err, "derivation: view key")
	}
	defer memzero.Zero(v2)
	v4, err := edwards.ScalarAdd(v2, v2)
	if err != nil {
		return domain.PublicKey{}, errors.Wrap(err, "derivation")
	}
	defer memzero.Zero(v4)
	v8, err := edwards.ScalarAdd(v4, v4)
	if err != nil {
		return domain.PublicKey{}, errors.Wrap(err, "derivation")
	}
	defer memzero.Zero(v8)

	d, err := edwards.ScalarMult(v8, txPub[:])
	if err != nil {
		return domain.PublicKey{}, errors.Wrap(err, "derivation: tx public key")
	}
	return domain.MustPublicKey(d), nil
}

// DerivationScalar returns Hs(derivation || varint(index)).
func DerivationScalar(derivation domain.PublicKey, index uint64) (domain.SecretKey, error) {
	idx := binary.AppendUvarint(nil, index)
	return crypto.HashToScalar(derivation[:], idx)
}

// Mask XORs an 8-byte little-endian amount with the amount key derived from
// the derivation scalar. It both encrypts and decrypts.
func Mask(scalar domain.SecretKey, in [8]byte) [8]byte {
	key := crypto.Keccak256([]byte(amountDomain), scalar[:])
	defer memzero.Key(&key)

	var out [8]byte
	for i := range out {
		out[i] = in[i] ^ key[i]
	}
	return out
}

// DecodeAmount returns the amount, in atomic units, of an output sent to view.
func (s *Service) DecodeAmount(view domain.SecretKey, out domain.Output) (uint64, error) {
	derivation, err := DerivationKey(view, out.TxPublicKey)
	if err != nil {
		return 0, err
	}
	scalar, err := DerivationScalar(derivation, out.Index)
	if err != nil {
		return 0, errors.Wrap(err, "amount: derivation scalar")
	}
	defer memzero.Key((*[32]byte)(&scalar))

	plain := Mask(scalar, out.EncAmount)
	return binary.LittleEndian.Uint64(plain[:]), nil
}

// VerifyAmount reports whether the output carries exactly expected atomic units.
func (s *Service) VerifyAmount(view domain.SecretKey, out domain.Output, expected uint64) (bool, error) {
	got, err := s.DecodeAmount(view, out)
	if err != nil {
		return false, err
	}
	if got != expected {
		s.log.Info().
			Str("required", FormatXMR(expected)).
			Str("detected", FormatXMR(got)).
			Uint64("index", out.Index).
			Msg("amount does not match")
		return false, nil
	}
	s.log.Info().Str("amount", FormatXMR(got)).Uint64("index", out.Index).Msg("amount match")
	return true, nil
}

// Compile-time assertion that Service implements domain.AmountService.
var _ domain.AmountService = (*Service)(nil)
