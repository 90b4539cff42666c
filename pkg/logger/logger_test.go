package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verboso"))
}

func TestNew_JSONConServicioYComponente(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: "production", Level: "info", Out: &buf, Service: "mate-social"})

	log.Named("session").Info().Str("user", "ana").Msg("sesión iniciada")
	log.Debug().Msg("no se escribe")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line), "una sola línea JSON")
	assert.Equal(t, "mate-social", line["service"])
	assert.Equal(t, "session", line["component"])
	assert.Equal(t, "ana", line["user"])
	assert.Equal(t, "sesión iniciada", line["message"])
}

func TestNewNop_NoEscribe(t *testing.T) {
	log := NewNop()
	assert.NotPanics(t, func() { log.Named("x").Error().Msg("nada") })
}
