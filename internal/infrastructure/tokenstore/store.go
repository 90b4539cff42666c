// Package tokenstore persiste el token de sesión (un único valor bajo una clave fija).
package tokenstore

import (
	"context"
	"fmt"

	"github.com/jhoicas/mate-social/internal/domain/repository"
	"github.com/jhoicas/mate-social/pkg/config"
	"github.com/jhoicas/mate-social/pkg/logger"
)

// Verificar en tiempo de compilación que los drivers implementan el repositorio.
var (
	_ repository.TokenRepository = (*FileStore)(nil)
	_ repository.TokenRepository = (*RedisStore)(nil)
	_ repository.TokenRepository = (*MemoryStore)(nil)
)

// Open construye el driver configurado. El closer libera conexiones (no-op salvo redis).
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.TokenRepository, func() error, error) {
	noop := func() error { return nil }
	ts := cfg.TokenStore

	switch ts.Driver {
	case config.DriverMemory:
		log.Debug().Msg("token store en memoria")
		return NewMemoryStore(), noop, nil

	case config.DriverRedis:
		store, err := NewRedisStore(ctx, cfg.Redis, ts.Key)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("addr", cfg.Redis.Addr()).Str("key", ts.Key).Msg("token store redis")
		return store, store.Close, nil

	case config.DriverFile, "":
		var sealer *Sealer
		if ts.Secret != "" {
			sealer = NewSealer(ts.Secret)
		}
		log.Info().Str("path", ts.Path).Bool("sealed", sealer != nil).Msg("token store en archivo")
		return NewFileStore(ts.Path, ts.Key, sealer), noop, nil
	}
	return nil, nil, fmt.Errorf("tokenstore: driver desconocido %q", ts.Driver)
}
