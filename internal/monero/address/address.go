// Package address encodes and decodes Monero standard, sub- and integrated
// addresses.
//
// An address is base58(prefix || spend || view [|| payment id] || checksum)
// where the checksum is the first four bytes of Keccak-256 over everything
// before it. The prefix selects both the network and the address kind.
package address

import (
	"bytes"

	"github.com/pkg/errors"

	"xmrkeys/internal/crypto"
	"xmrkeys/internal/crypto/edwards"
	"xmrkeys/internal/domain"
	"xmrkeys/internal/monero/base58"
)

const (
	checksumSize = 4

	standardSize   = 1 + 2*domain.KeySize + checksumSize
	integratedSize = standardSize + domain.PaymentIDSize
)

var (
	// ErrChecksum is returned when the trailing checksum does not match.
	ErrChecksum = errors.New("address: checksum mismatch")
	// ErrUnknownPrefix is returned for a prefix no network uses.
	ErrUnknownPrefix = errors.New("address: unknown network prefix")
	// ErrLength is returned when the decoded payload has the wrong size.
	ErrLength = errors.New("address: invalid length")
)

type prefixKey struct {
	network domain.Network
	kind    domain.AddressKind
}

var prefixes = map[prefixKey]byte{
	{domain.Mainnet, domain.Standard}:    18,
	{domain.Mainnet, domain.Integrated}:  19,
	{domain.Mainnet, domain.Subaddress}:  42,
	{domain.Testnet, domain.Standard}:    53,
	{domain.Testnet, domain.Integrated}:  54,
	{domain.Testnet, domain.Subaddress}:  63,
	{domain.Stagenet, domain.Standard}:   24,
	{domain.Stagenet, domain.Integrated}: 25,
	{domain.Stagenet, domain.Subaddress}: 36,
}

var byPrefix = func() map[byte]prefixKey {
	m := make(map[byte]prefixKey, len(prefixes))
	for k, v := range prefixes {
		m[v] = k
	}
	return m
}()

// Prefix returns the address prefix byte for a network and kind.
func Prefix(network domain.Network, kind domain.AddressKind) (byte, error) {
	p, ok := prefixes[prefixKey{network, kind}]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownPrefix, "%s %s", network, kind)
	}
	return p, nil
}

// Encode returns the base58 string form of addr.
func Encode(addr domain.Address) (string, error) {
	prefix, err := Prefix(addr.Network, addr.Kind)
	if err != nil {
		return "", err
	}
	if addr.Kind == domain.Integrated && len(addr.PaymentID) != domain.PaymentIDSize {
		return "", errors.Wrapf(ErrLength, "payment id must be %d bytes", domain.PaymentIDSize)
	}

	data := make([]byte, 0, integratedSize)
	data = append(data, prefix)
	data = append(data, addr.Spend[:]...)
	data = append(data, addr.View[:]...)
	if addr.Kind == domain.Integrated {
		data = append(data, addr.PaymentID...)
	}
	sum := crypto.Keccak256(data)
	data = append(data, sum[:checksumSize]...)
	return base58.Encode(data), nil
}

// Decode parses and validates an address string. Both keys must decode as
// curve points.
func Decode(s string) (domain.Address, error) {
	data, err := base58.Decode(s)
	if err != nil {
		return domain.Address{}, errors.Wrap(err, "address")
	}
	if len(data) != standardSize && len(data) != integratedSize {
		return domain.Address{}, errors.Wrapf(ErrLength, "got %d bytes", len(data))
	}

	body, check := data[:len(data)-checksumSize], data[len(data)-checksumSize:]
	sum := crypto.Keccak256(body)
	if !bytes.Equal(sum[:checksumSize], check) {
		return domain.Address{}, ErrChecksum
	}

	key, ok := byPrefix[body[0]]
	if !ok {
		return domain.Address{}, errors.Wrapf(ErrUnknownPrefix, "0x%02x", body[0])
	}
	wantSize := standardSize
	if key.kind == domain.Integrated {
		wantSize = integratedSize
	}
	if len(data) != wantSize {
		return domain.Address{}, errors.Wrapf(ErrLength, "%s address with %d bytes", key.kind, len(data))
	}

	addr := domain.Address{
		Network: key.network,
		Kind:    key.kind,
		Spend:   domain.MustPublicKey(body[1 : 1+domain.KeySize]),
		View:    domain.MustPublicKey(body[1+domain.KeySize : 1+2*domain.KeySize]),
	}
	if key.kind == domain.Integrated {
		addr.PaymentID = append([]byte(nil), body[1+2*domain.KeySize:]...)
	}

	if _, err := new(edwards.Point).SetBytes(addr.Spend[:]); err != nil {
		return domain.Address{}, errors.Wrap(err, "address: spend key")
	}
	if _, err := new(edwards.Point).SetBytes(addr.View[:]); err != nil {
		return domain.Address{}, errors.Wrap(err, "address: view key")
	}
	return addr, nil
}

// PublicSpendKey returns the public spend key carried by an address.
func PublicSpendKey(s string) (domain.PublicKey, error) {
	addr, err := Decode(s)
	if err != nil {
		return domain.PublicKey{}, err
	}
	return addr.Spend, nil
}
