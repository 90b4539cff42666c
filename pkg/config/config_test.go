package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, TargetWeb, cfg.API.Target)
	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, DriverFile, cfg.TokenStore.Driver)
	assert.Equal(t, "userToken", cfg.TokenStore.Key)
	assert.True(t, cfg.Session.LogoutOn401)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr())
}

func TestFromViper_EmuladorUsaLoopback(t *testing.T) {
	v := viper.New()
	v.Set("API_TARGET", "emulator")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.2.2:8000", cfg.API.BaseURL)
}

func TestFromViper_URLExplicitaGana(t *testing.T) {
	v := viper.New()
	v.Set("API_TARGET", "emulator")
	v.Set("API_BASE_URL", "https://mate.example.com/")
	v.Set("SESSION_LOGOUT_ON_401", "false")
	v.Set("REDIS_PORT", "6380")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "https://mate.example.com", cfg.API.BaseURL)
	assert.False(t, cfg.Session.LogoutOn401)
	assert.Equal(t, "localhost:6380", cfg.Redis.Addr())
}

func TestFromViper_ValoresInvalidos(t *testing.T) {
	v := viper.New()
	v.Set("API_TARGET", "tv")
	_, err := fromViper(v)
	assert.Error(t, err)

	v = viper.New()
	v.Set("TOKEN_STORE_DRIVER", "sqlite")
	_, err = fromViper(v)
	assert.Error(t, err)
}
