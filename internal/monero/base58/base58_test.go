package base58

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_BlockSizes(t *testing.T) {
	for n := 0; n <= 24; n++ {
		b := bytes.Repeat([]byte{0xff}, n)
		want := (n/8)*11 + encodedBlockSizes[n%8]
		assert.Len(t, Encode(b), want, "n = %d", n)
	}
}

func TestEncode_Zeros(t *testing.T) {
	assert.Equal(t, "11111111111", Encode(make([]byte, 8)))
	assert.Equal(t, "11", Encode([]byte{0}))
	assert.Equal(t, "1z", Encode([]byte{57}))
	assert.Equal(t, "21", Encode([]byte{58}))
}

func TestRoundTrip(t *testing.T) {
	for n := 0; n < 80; n++ {
		b := make([]byte, n)
		_, err := rand.Read(b)
		require.NoError(t, err)

		got, err := Decode(Encode(b))
		require.NoError(t, err)
		assert.Equal(t, b, got, "n = %d", n)
	}
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode("1")
	assert.ErrorIs(t, err, ErrInvalidBlockSize)

	_, err = Decode("11111111110")
	assert.ErrorIs(t, err, ErrInvalidSymbol)

	_, err = Decode("1I")
	assert.ErrorIs(t, err, ErrInvalidSymbol)

	// 58^11 - 1 does not fit in 64 bits.
	_, err = Decode("zzzzzzzzzzz")
	assert.ErrorIs(t, err, ErrOverflow)

	// Two characters can hold up to 58^2 - 1, more than one byte.
	_, err = Decode("zz")
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestDecode_MaxFullBlock(t *testing.T) {
	max := bytes.Repeat([]byte{0xff}, 8)
	got, err := Decode(Encode(max))
	require.NoError(t, err)
	assert.Equal(t, max, got)
}
