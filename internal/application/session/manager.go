// Package session es el dueño único del estado de sesión: token persistido y perfil.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/jhoicas/mate-social/internal/application/ports"
	"github.com/jhoicas/mate-social/internal/domain"
	"github.com/jhoicas/mate-social/internal/domain/entity"
	"github.com/jhoicas/mate-social/internal/domain/repository"
	"github.com/jhoicas/mate-social/pkg/logger"
)

// Config política de sesión.
type Config struct {
	// LogoutOn401 cierra la sesión cuando el backend rechaza el token al pedir el perfil.
	LogoutOn401 bool
}

// Manager Session Store + Profile Fetcher. Seguro para uso concurrente.
// Es el único escritor del token persistido (CheckAuth, Login, Logout).
type Manager struct {
	tokens   repository.TokenRepository
	profiles ports.ProfileGateway
	log      *logger.Logger
	cfg      Config

	// writeMu ordena las escrituras del token (memoria + almacenamiento) entre Login y Logout.
	writeMu sync.Mutex

	mu         sync.RWMutex
	gen        uint64 // se incrementa en cada Login/Logout
	token      string
	loading    bool
	profile    *entity.Profile
	profileErr error
	inflight   int
	seq        uint64 // último número de pedido de perfil emitido
	applied    uint64 // último número aplicado (o invalidado por logout)
}

// NewManager crea el estado inicial: sin token y cargando hasta el primer CheckAuth.
func NewManager(tokens repository.TokenRepository, profiles ports.ProfileGateway, log *logger.Logger, cfg Config) *Manager {
	if log == nil {
		log = logger.NewNop()
	}
	return &Manager{
		tokens:   tokens,
		profiles: profiles,
		log:      log.Named("session"),
		cfg:      cfg,
		loading:  true,
	}
}

// CheckAuth lee el token persistido. Un fallo de lectura equivale a "sin token".
// El flag de carga se limpia siempre. Si hay token se pide el perfil; el error
// del perfil se devuelve pero no invalida la sesión. Si un Login o Logout ocurre
// mientras se lee el almacenamiento, el resultado de la lectura se descarta.
func (m *Manager) CheckAuth(ctx context.Context) error {
	m.mu.RLock()
	gen := m.gen
	m.mu.RUnlock()

	token, err := m.tokens.Get(ctx)
	if err != nil {
		m.log.Warn().Err(err).Msg("no se pudo leer el token persistido")
		token = ""
	}

	m.mu.Lock()
	if m.gen != gen {
		m.mu.Unlock()
		m.log.Debug().Msg("lectura del token superada por un login/logout")
		return nil
	}
	m.loading = false
	m.token = token
	if token == "" {
		m.clearProfileLocked()
	}
	m.mu.Unlock()

	if token == "" {
		return nil
	}
	_, err = m.RefreshProfile(ctx)
	return err
}

// Login persiste el token y lo activa. Si la persistencia falla la sesión sigue
// activa en memoria durante la vida del proceso.
func (m *Manager) Login(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.NewValidationError("token", "El token no puede estar vacío")
	}
	m.writeMu.Lock()
	if err := m.tokens.Set(ctx, token); err != nil {
		m.log.Error().Err(err).Msg("no se pudo persistir el token; la sesión queda solo en memoria")
	}

	m.mu.Lock()
	m.gen++
	m.loading = false
	m.token = token
	m.clearProfileLocked()
	m.mu.Unlock()
	m.writeMu.Unlock()

	_, err := m.RefreshProfile(ctx)
	return err
}

// Logout borra el token persistido y limpia el estado en memoria. El estado se
// limpia aunque falle el borrado; ese error se devuelve para informarlo.
func (m *Manager) Logout(ctx context.Context) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	return m.logoutLocked(ctx, "")
}

// expire cierra la sesión solo si el token activo sigue siendo el rechazado.
func (m *Manager) expire(ctx context.Context, rejected string) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	return m.logoutLocked(ctx, rejected)
}

// logoutLocked requiere writeMu. Con only != "" no hace nada si el token activo cambió.
func (m *Manager) logoutLocked(ctx context.Context, only string) error {
	m.mu.Lock()
	if only != "" && m.token != only {
		m.mu.Unlock()
		m.log.Debug().Msg("token rechazado ya no es el activo; no se cierra la sesión")
		return nil
	}
	m.gen++
	m.token = ""
	m.loading = false
	m.clearProfileLocked()
	m.applied = m.seq // los pedidos de perfil en vuelo quedan obsoletos
	m.mu.Unlock()

	if err := m.tokens.Delete(ctx); err != nil {
		m.log.Error().Err(err).Msg("no se pudo borrar el token persistido")
		return err
	}
	return nil
}

// RefreshProfile pide el perfil para el token actual. Gana la respuesta del pedido
// más reciente: una respuesta anterior a la última aplicada, o de otro token, se
// descarta con domain.ErrStaleResponse.
func (m *Manager) RefreshProfile(ctx context.Context) (*entity.Profile, error) {
	m.mu.Lock()
	token := m.token
	if token == "" {
		m.mu.Unlock()
		return nil, domain.ErrNoSession
	}
	m.seq++
	seq := m.seq
	m.inflight++
	m.mu.Unlock()

	profile, err := m.profiles.GetProfile(ctx, token)

	m.mu.Lock()
	m.inflight--
	if seq <= m.applied || m.token != token {
		m.mu.Unlock()
		m.log.Debug().Uint64("seq", seq).Msg("respuesta de perfil descartada")
		return nil, domain.ErrStaleResponse
	}
	m.applied = seq

	if err == nil {
		m.profile = profile
		m.profileErr = nil
		m.mu.Unlock()
		return profile, nil
	}

	m.profile = nil
	m.profileErr = err
	expire := m.cfg.LogoutOn401 && errors.Is(err, domain.ErrUnauthorized)
	m.mu.Unlock()

	if expire {
		m.log.Info().Msg("token rechazado por el backend; cerrando sesión")
		if lerr := m.expire(ctx, token); lerr != nil {
			m.log.Warn().Err(lerr).Msg("logout tras 401 incompleto")
		}
	} else {
		m.log.Warn().Err(err).Msg("no se pudo obtener el perfil; se conserva el token")
	}
	return nil, err
}

// Snapshot copia del estado actual.
func (m *Manager) Snapshot() entity.SessionState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return entity.SessionState{
		Token:          m.token,
		Loading:        m.loading,
		Profile:        m.profile,
		ProfileLoading: m.inflight > 0,
		ProfileErr:     m.profileErr,
	}
}

// Token devuelve el token actual ("" sin sesión).
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Profile devuelve el perfil cacheado (nil si no hay).
func (m *Manager) Profile() *entity.Profile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.profile
}

// Capabilities flags de rol derivados del perfil actual; se recalculan en cada llamada.
func (m *Manager) Capabilities() entity.Capabilities {
	return m.Profile().Capabilities()
}

func (m *Manager) clearProfileLocked() {
	m.profile = nil
	m.profileErr = nil
}
