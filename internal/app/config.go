package app

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"xmrkeys/internal/domain"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Network  domain.Network // network for newly encoded addresses
	LogLevel string         // zerolog level name, e.g. "info" or "debug"
	LogJSON  bool           // emit JSON lines instead of console output
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Network:  domain.Mainnet,
		LogLevel: zerolog.InfoLevel.String(),
	}
}

// Validate checks that every field holds a supported value.
func (c Config) Validate() error {
	switch c.Network {
	case domain.Mainnet, domain.Testnet, domain.Stagenet:
	default:
		return errors.Errorf("config: unknown network %q", c.Network)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "config: log level")
	}
	return nil
}
