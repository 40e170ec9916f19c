package commands

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// decodeHex decodes a hex argument of exactly n bytes, or at most n bytes when
// upTo is set.
func decodeHex(name, s string, n int, upTo bool) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	if upTo && len(b) > n {
		return nil, errors.Errorf("%s: want at most %d bytes, got %d", name, n, len(b))
	}
	if !upTo && len(b) != n {
		return nil, errors.Errorf("%s: want %d bytes, got %d", name, n, len(b))
	}
	return b, nil
}

// requiredSetting returns the value of a flag that may also come from the
// environment or the config file. Cobra's required-flag check only sees the
// command line, so presence is checked here instead.
func requiredSetting(name string) (string, error) {
	s := settings.GetString(name)
	if s == "" {
		envName := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
		return "", errors.Errorf("%s required (--%s or %s)", name, name, envName)
	}
	return s, nil
}
