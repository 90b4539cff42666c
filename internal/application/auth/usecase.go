package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/mate-social/internal/application/dto"
	"github.com/jhoicas/mate-social/internal/application/ports"
	"github.com/jhoicas/mate-social/internal/domain"
	"github.com/jhoicas/mate-social/internal/domain/entity"
	"github.com/jhoicas/mate-social/pkg/logger"
)

// SessionManager parte de session.Manager que usa el caso de uso.
type SessionManager interface {
	Login(ctx context.Context, token string) error
	Logout(ctx context.Context) error
	Token() string
	Capabilities() entity.Capabilities
	Snapshot() entity.SessionState
}

// AuthUseCase casos de uso de cuentas: login con credenciales, registro y alta de empleados.
type AuthUseCase struct {
	gw   ports.AuthGateway
	sess SessionManager
	log  *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(gw ports.AuthGateway, sess SessionManager, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.NewNop()
	}
	return &AuthUseCase{gw: gw, sess: sess, log: log.Named("auth")}
}

// Login obtiene un token con usuario y contraseña y abre la sesión. Un fallo al
// obtener el perfil no invalida el login, salvo que el backend rechace el token.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (entity.SessionState, error) {
	username := strings.TrimSpace(in.Username)
	password := strings.TrimSpace(in.Password)
	if username == "" || password == "" {
		return entity.SessionState{}, domain.NewValidationError("", "Por favor ingresa usuario y contraseña")
	}

	token, err := uc.gw.ObtainToken(ctx, username, password)
	if err != nil {
		uc.log.Warn().Err(err).Str("username", username).Msg("login rechazado")
		return entity.SessionState{}, err
	}

	if err := uc.sess.Login(ctx, token); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrInvalidInput) {
			return entity.SessionState{}, err
		}
		uc.log.Warn().Err(err).Msg("sesión abierta sin perfil")
	}
	uc.log.Info().Str("username", username).Msg("sesión iniciada")
	return uc.sess.Snapshot(), nil
}

// Logout cierra la sesión actual.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return uc.sess.Logout(ctx)
}

// Register crea una cuenta de usuario común tras validar localmente.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) error {
	account, err := ValidateRegistration(in)
	if err != nil {
		return err
	}
	if err := uc.gw.Register(ctx, account); err != nil {
		uc.log.Warn().Err(err).Str("username", account.Username).Msg("registro rechazado")
		return err
	}
	return nil
}

// CreateAdminEmployee crea un "Administrador Empleado" (solo administradores).
func (uc *AuthUseCase) CreateAdminEmployee(ctx context.Context, in dto.RegisterRequest) error {
	token := uc.sess.Token()
	if token == "" {
		return domain.ErrNoSession
	}
	if !uc.sess.Capabilities().IsAdmin {
		return domain.ErrForbidden
	}
	account, err := ValidateEmployee(in)
	if err != nil {
		return err
	}
	if err := uc.gw.CreateAdminEmployee(ctx, token, account); err != nil {
		uc.log.Warn().Err(err).Str("username", account.Username).Msg("alta de empleado rechazada")
		return err
	}
	uc.log.Info().Str("username", account.Username).Msg("administrador empleado creado")
	return nil
}
