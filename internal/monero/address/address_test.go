package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xmrkeys/internal/crypto/edwards"
	"xmrkeys/internal/domain"
	"xmrkeys/internal/monero/base58"
)

const (
	primaryAddress = "4B537zUH1odDbYKBZxohhbgTJv7uKKfdH4FpEJciETsUF1SKeaCEwEWWNCDW3uTorwGaj1gYmSSeuh5fSsvp6awdQETs1rK"
	primarySpend   = "f94abe2bd14ce04b4dbd0b1ed5caf2ebe0af2214b9e50013767f30f9967b4f53"
	primaryView    = "bedb46c25f0b3faf907436277436985d27ca1d4fc98fe2efa0015770720ddccd"
)

func TestDecode_Primary(t *testing.T) {
	addr, err := Decode(primaryAddress)
	require.NoError(t, err)
	assert.Equal(t, domain.Mainnet, addr.Network)
	assert.Equal(t, domain.Standard, addr.Kind)
	assert.Equal(t, primarySpend, addr.Spend.String())
	assert.Equal(t, primaryView, addr.View.String())
	assert.Nil(t, addr.PaymentID)
}

func TestEncode_RoundTrip(t *testing.T) {
	addr, err := Decode(primaryAddress)
	require.NoError(t, err)
	s, err := Encode(addr)
	require.NoError(t, err)
	assert.Equal(t, primaryAddress, s)
}

func TestEncode_AllNetworks(t *testing.T) {
	base, err := Decode(primaryAddress)
	require.NoError(t, err)

	for _, network := range []domain.Network{domain.Mainnet, domain.Testnet, domain.Stagenet} {
		for _, kind := range []domain.AddressKind{domain.Standard, domain.Subaddress, domain.Integrated} {
			addr := base
			addr.Network, addr.Kind = network, kind
			if kind == domain.Integrated {
				addr.PaymentID = []byte{1, 2, 3, 4, 5, 6, 7, 8}
			}
			s, err := Encode(addr)
			require.NoError(t, err)

			got, err := Decode(s)
			require.NoError(t, err, "%s %s", network, kind)
			assert.Equal(t, addr, got)
		}
	}
}

func TestEncode_SubaddressStartsWith8(t *testing.T) {
	addr, err := Decode(primaryAddress)
	require.NoError(t, err)
	addr.Kind = domain.Subaddress
	s, err := Encode(addr)
	require.NoError(t, err)
	assert.Equal(t, byte('8'), s[0])
}

func TestEncode_IntegratedNeedsPaymentID(t *testing.T) {
	addr, err := Decode(primaryAddress)
	require.NoError(t, err)
	addr.Kind = domain.Integrated
	_, err = Encode(addr)
	assert.ErrorIs(t, err, ErrLength)
}

func TestDecode_BadChecksum(t *testing.T) {
	data, err := base58.Decode(primaryAddress)
	require.NoError(t, err)
	data[len(data)-1] ^= 1
	_, err = Decode(base58.Encode(data))
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestDecode_UnknownPrefix(t *testing.T) {
	addr, err := Decode(primaryAddress)
	require.NoError(t, err)
	data := append([]byte{0x7f}, addr.Spend[:]...)
	data = append(data, addr.View[:]...)
	sum := keccakChecksum(data)
	_, err = Decode(base58.Encode(append(data, sum...)))
	assert.ErrorIs(t, err, ErrUnknownPrefix)
}

func TestDecode_InvalidSpendKey(t *testing.T) {
	addr, err := Decode(primaryAddress)
	require.NoError(t, err)
	addr.Spend = domain.PublicKey{2}
	s, err := Encode(addr)
	require.NoError(t, err)
	_, err = Decode(s)
	assert.ErrorIs(t, err, edwards.ErrNotOnCurve)
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode("not an address")
	assert.Error(t, err)

	_, err = Decode(base58.Encode([]byte{18, 1, 2, 3}))
	assert.ErrorIs(t, err, ErrLength)
}

func TestPublicSpendKey(t *testing.T) {
	k, err := PublicSpendKey(primaryAddress)
	require.NoError(t, err)
	assert.Equal(t, primarySpend, k.String())
}
