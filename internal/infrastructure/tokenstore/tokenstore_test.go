package tokenstore_test

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mate-social/internal/infrastructure/tokenstore"
	"github.com/jhoicas/mate-social/pkg/config"
	"github.com/jhoicas/mate-social/pkg/logger"
)

// ─── FileStore ───────────────────────────────────────────────────────────────

func TestFileStore_SinArchivoDevuelveVacio(t *testing.T) {
	s := tokenstore.NewFileStore(filepath.Join(t.TempDir(), "no", "existe.json"), "userToken", nil)

	token, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.NoError(t, s.Delete(context.Background()))
}

func TestFileStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "storage.json")
	s := tokenstore.NewFileStore(path, "userToken", nil)

	require.NoError(t, s.Set(ctx, "abc123"))
	token, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// Otra instancia sobre el mismo archivo ve el valor persistido.
	token, err = tokenstore.NewFileStore(path, "userToken", nil).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	require.NoError(t, s.Delete(ctx))
	token, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestFileStore_PreservaOtrasClaves(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"dark"}`), 0o600))

	s := tokenstore.NewFileStore(path, "userToken", nil)
	require.NoError(t, s.Set(ctx, "abc123"))
	require.NoError(t, s.Delete(ctx))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"theme": "dark"`)
	assert.NotContains(t, string(raw), "abc123")
}

func TestFileStore_ArchivoCorrupto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(path, []byte("{no es json"), 0o600))

	_, err := tokenstore.NewFileStore(path, "userToken", nil).Get(context.Background())
	assert.Error(t, err)
}

// ─── Sealer ──────────────────────────────────────────────────────────────────

func TestFileStore_Sellado(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "storage.json")
	s := tokenstore.NewFileStore(path, "userToken", tokenstore.NewSealer("clave"))

	require.NoError(t, s.Set(ctx, "abc123"))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "abc123")

	token, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = tokenstore.NewFileStore(path, "userToken", tokenstore.NewSealer("otra")).Get(ctx)
	assert.Error(t, err)
}

func TestSealer_NonceAleatorio(t *testing.T) {
	s := tokenstore.NewSealer("clave")
	a, err := s.Seal("abc123")
	require.NoError(t, err)
	b, err := s.Seal("abc123")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	_, err = s.Open("corto")
	assert.Error(t, err)
}

// ─── Memory / Redis / Open ───────────────────────────────────────────────────

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := tokenstore.NewMemoryStore()
	require.NoError(t, s.Set(ctx, "x"))
	v, _ := s.Get(ctx)
	assert.Equal(t, "x", v)
	require.NoError(t, s.Delete(ctx))
	v, _ = s.Get(ctx)
	assert.Empty(t, v)
}

func TestRedisStore(t *testing.T) {
	host := os.Getenv("TEST_REDIS_HOST")
	if host == "" {
		t.Skip("TEST_REDIS_HOST no definido")
	}
	port := 6379
	if p, err := strconv.Atoi(os.Getenv("TEST_REDIS_PORT")); err == nil {
		port = p
	}
	ctx := context.Background()
	s, err := tokenstore.NewRedisStore(ctx, config.RedisConfig{Host: host, Port: port}, "test:userToken")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Delete(ctx))
	v, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.Set(ctx, "abc123"))
	v, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc123", v)
	require.NoError(t, s.Delete(ctx))
}

func TestOpen_Drivers(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{TokenStore: config.TokenStoreConfig{Driver: config.DriverMemory, Key: "userToken"}}

	s, closeFn, err := tokenstore.Open(ctx, cfg, logger.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &tokenstore.MemoryStore{}, s)
	assert.NoError(t, closeFn())

	cfg.TokenStore = config.TokenStoreConfig{Driver: config.DriverFile, Path: filepath.Join(t.TempDir(), "s.json"), Key: "userToken"}
	s, _, err = tokenstore.Open(ctx, cfg, logger.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &tokenstore.FileStore{}, s)

	cfg.TokenStore.Driver = "sqlite"
	_, _, err = tokenstore.Open(ctx, cfg, logger.NewNop())
	assert.Error(t, err)
}
