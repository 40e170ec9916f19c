package amount

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatXMR(t *testing.T) {
	cases := map[uint64]string{
		0:                 "0",
		1:                 "0.000000000001",
		1_500_000_000_000: "1.5",
		2_000_000_000_000: "2",
		123_456_789:       "0.000123456789",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatXMR(in))
	}
}

func TestParseXMR(t *testing.T) {
	cases := map[string]uint64{
		"1.5":            1_500_000_000_000,
		"0.000000000001": 1,
		"2":              2_000_000_000_000,
		".25":            250_000_000_000,
		" 3. ":           3_000_000_000_000,
	}
	for in, want := range cases {
		got, err := ParseXMR(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseXMR_Errors(t *testing.T) {
	for _, in := range []string{"", ".", "1.0000000000001", "-1", "abc", "18446744073709551615"} {
		_, err := ParseXMR(in)
		assert.Error(t, err, in)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 7, 1_000_000_000_000, 987_654_321_012_345} {
		got, err := ParseXMR(FormatXMR(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}
