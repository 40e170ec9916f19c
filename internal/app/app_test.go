package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xmrkeys/internal/crypto"
	"xmrkeys/internal/domain"
)

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Network = "regtest"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.LogLevel = "loud"
	assert.Error(t, cfg.Validate())
}

func TestNewWire_BuildsServices(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.LogLevel = "debug"
	cfg.LogJSON = true

	w, err := NewWire(cfg, &buf)
	require.NoError(t, err)
	require.NotNil(t, w.Subaddresses)
	require.NotNil(t, w.Amounts)

	view, err := crypto.ParseSecretKey("ad57cd54224e8e16a8f10a289f44a6a48e11785c89e7d1cf8b515626738cb600")
	require.NoError(t, err)
	_, err = w.Subaddresses.DeriveSubaddress(
		"4B537zUH1odDbYKBZxohhbgTJv7uKKfdH4FpEJciETsUF1SKeaCEwEWWNCDW3uTorwGaj1gYmSSeuh5fSsvp6awdQETs1rK",
		view,
		domain.SubaddressIndex{Minor: 1},
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"derived subaddress"`)
	assert.False(t, strings.Contains(out, view.Hex()), "secret key must not be logged")
}

func TestNewWire_RejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Network = ""
	_, err := NewWire(cfg, nil)
	assert.Error(t, err)
}
