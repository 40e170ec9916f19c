package amount

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// AtomicUnitsPerXMR is the number of piconero in one XMR.
const AtomicUnitsPerXMR = 1_000_000_000_000

const fracDigits = 12

// FormatXMR renders atomic units as a decimal XMR amount without trailing zeros.
func FormatXMR(atomic uint64) string {
	whole, frac := atomic/AtomicUnitsPerXMR, atomic%AtomicUnitsPerXMR
	if frac == 0 {
		return strconv.FormatUint(whole, 10)
	}
	s := fmt.Sprintf("%d.%012d", whole, frac)
	return strings.TrimRight(s, "0")
}

// ParseXMR parses a decimal XMR amount such as "1.5" into atomic units.
func ParseXMR(s string) (uint64, error) {
	wholeStr, fracStr, _ := strings.Cut(strings.TrimSpace(s), ".")
	if wholeStr == "" && fracStr == "" {
		return 0, errors.Errorf("amount: empty value %q", s)
	}
	if len(fracStr) > fracDigits {
		return 0, errors.Errorf("amount: more than %d decimal places in %q", fracDigits, s)
	}

	var whole, frac uint64
	var err error
	if wholeStr != "" {
		if whole, err = strconv.ParseUint(wholeStr, 10, 64); err != nil {
			return 0, errors.Wrapf(err, "amount: %q", s)
		}
	}
	if fracStr != "" {
		padded := fracStr + strings.Repeat("0", fracDigits-len(fracStr))
		if frac, err = strconv.ParseUint(padded, 10, 64); err != nil {
			return 0, errors.Wrapf(err, "amount: %q", s)
		}
	}
	if whole > (^uint64(0)-frac)/AtomicUnitsPerXMR {
		return 0, errors.Errorf("amount: %q overflows", s)
	}
	return whole*AtomicUnitsPerXMR + frac, nil
}
