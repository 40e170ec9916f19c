package subaddress

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"xmrkeys/internal/crypto"
	"xmrkeys/internal/crypto/edwards"
	"xmrkeys/internal/domain"
	"xmrkeys/internal/monero/address"
	"xmrkeys/internal/util/memzero"
)

// hashDomain separates subaddress hashes from other uses of Hs.
const hashDomain = "SubAddr\x00"

var (
	// ErrViewKeyMismatch is returned when the view key does not belong to the address.
	ErrViewKeyMismatch = errors.New("subaddress: view key does not match address")
	// ErrNotPrimary is returned when derivation is asked to start from a subaddress.
	ErrNotPrimary = errors.New("subaddress: base address must be a primary address")
)

// Service derives subaddresses. It holds no key material between calls.
type Service struct {
	log zerolog.Logger
}

// New returns a subaddress service logging to log.
func New(log zerolog.Logger) *Service {
	return &Service{log: log.With().Str("component", "subaddress").Logger()}
}

// DeriveSubaddress returns the subaddress at index for the primary address.
// The view key must be the private view key of primary.
func (s *Service) DeriveSubaddress(
	primary string,
	view domain.SecretKey,
	index domain.SubaddressIndex,
) (string, error) {
	if index.IsPrimary() {
		return primary, nil
	}

	base, err := address.Decode(primary)
	if err != nil {
		return "", err
	}
	if base.Kind == domain.Subaddress {
		return "", ErrNotPrimary
	}
	if err := checkViewKey(view, base.View); err != nil {
		return "", err
	}

	spend, viewPub, err := s.DeriveSubaddressKeys(base.Spend, view, index)
	if err != nil {
		return "", err
	}
	out, err := address.Encode(domain.Address{
		Network: base.Network,
		Kind:    domain.Subaddress,
		Spend:   spend,
		View:    viewPub,
	})
	if err != nil {
		return "", err
	}

	s.log.Debug().
		Str("network", base.Network.String()).
		Uint32("major", index.Major).
		Uint32("minor", index.Minor).
		Str("spend_fp", crypto.Fingerprint(spend)).
		Msg("derived subaddress")
	return out, nil
}

// DeriveSubaddressKeys returns the public spend and view keys (D, C) of the
// subaddress at index. For the primary index it returns spend and view*G.
func (s *Service) DeriveSubaddressKeys(
	spend domain.PublicKey,
	view domain.SecretKey,
	index domain.SubaddressIndex,
) (domain.PublicKey, domain.PublicKey, error) {
	if index.IsPrimary() {
		viewPub, err := edwards.ScalarMultBase(view[:])
		if err != nil {
			return domain.PublicKey{}, domain.PublicKey{}, err
		}
		return spend, domain.MustPublicKey(viewPub), nil
	}

	var major, minor [4]byte
	binary.LittleEndian.PutUint32(major[:], index.Major)
	binary.LittleEndian.PutUint32(minor[:], index.Minor)

	m, err := crypto.HashToScalar([]byte(hashDomain), view[:], major[:], minor[:])
	if err != nil {
		return domain.PublicKey{}, domain.PublicKey{}, errors.Wrap(err, "subaddress: hash index")
	}
	defer memzero.Key((*[32]byte)(&m))

	mG, err := edwards.ScalarMultBase(m[:])
	if err != nil {
		return domain.PublicKey{}, domain.PublicKey{}, errors.Wrap(err, "subaddress: m*G")
	}
	d, err := edwards.PointAdd(spend[:], mG)
	if err != nil {
		return domain.PublicKey{}, domain.PublicKey{}, errors.Wrap(err, "subaddress: spend key")
	}
	c, err := edwards.ScalarMult(view[:], d)
	if err != nil {
		return domain.PublicKey{}, domain.PublicKey{}, errors.Wrap(err, "subaddress: view key")
	}
	return domain.MustPublicKey(d), domain.MustPublicKey(c), nil
}

func checkViewKey(view domain.SecretKey, want domain.PublicKey) error {
	if _, err := new(edwards.Scalar).SetCanonicalBytes(view[:]); err != nil {
		return errors.Wrap(err, "subaddress: view key")
	}
	got, err := edwards.ScalarMultBase(view[:])
	if err != nil {
		return errors.Wrap(err, "subaddress: view key")
	}
	if domain.MustPublicKey(got) != want {
		return ErrViewKeyMismatch
	}
	return nil
}

// Compile-time assertion that Service implements domain.SubaddressService.
var _ domain.SubaddressService = (*Service)(nil)
