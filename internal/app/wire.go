package app

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"xmrkeys/internal/domain"
	amountsvc "xmrkeys/internal/services/amount"
	subaddresssvc "xmrkeys/internal/services/subaddress"
)

// Wire bundles the logger and services for the CLI.
type Wire struct {
	Log          zerolog.Logger
	Subaddresses domain.SubaddressService
	Amounts      domain.AmountService
}

// NewWire constructs the dependency graph from cfg. Logs go to w, or to
// stderr when w is nil.
func NewWire(cfg Config, w io.Writer) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := newLogger(cfg, w)

	return &Wire{
		Log:          log,
		Subaddresses: subaddresssvc.New(log),
		Amounts:      amountsvc.New(log),
	}, nil
}

func newLogger(cfg Config, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if !cfg.LogJSON {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	// Validate has already accepted the level.
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
