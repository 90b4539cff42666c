package dto

import (
	"time"

	"github.com/jhoicas/mate-social/internal/domain"
	"github.com/jhoicas/mate-social/internal/domain/entity"
)

// LoginRequest credenciales para obtener un token.
type LoginRequest struct {
	Username string `json:"username" example:"ana"`
	Password string `json:"password" example:"Secret123"`
}

// RegisterRequest alta de cuenta (registro público o empleado creado por un administrador).
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// PersonaResponse datos personales del perfil.
type PersonaResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	LastName  string     `json:"last_name"`
	Address   string     `json:"address,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

// ProfileResponse perfil con los flags de rol ya derivados.
type ProfileResponse struct {
	ID                int64            `json:"id"`
	Username          string           `json:"username"`
	Email             string           `json:"email"`
	FirstName         string           `json:"first_name"`
	LastName          string           `json:"last_name"`
	DisplayName       string           `json:"display_name"`
	Persona           *PersonaResponse `json:"persona,omitempty"`
	Groups            []string         `json:"groups"`
	IsAdmin           bool             `json:"is_admin"`
	IsAdminOrEmployee bool             `json:"is_admin_or_employee"`
	IsNormalUser      bool             `json:"is_normal_user"`
}

// SessionResponse estado de sesión visible para la UI (el token nunca se expone).
type SessionResponse struct {
	Authenticated  bool             `json:"authenticated"`
	Loading        bool             `json:"loading"`
	ProfileLoading bool             `json:"profile_loading"`
	Profile        *ProfileResponse `json:"profile,omitempty"`
	ProfileError   string           `json:"profile_error,omitempty"`
}

// NewProfileResponse mapea el perfil de dominio; nil si no hay perfil.
func NewProfileResponse(p *entity.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}
	caps := p.Capabilities()
	out := &ProfileResponse{
		ID:                p.ID,
		Username:          p.Username,
		Email:             p.Email,
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		DisplayName:       p.DisplayName(),
		Groups:            append([]string{}, p.Groups...),
		IsAdmin:           caps.IsAdmin,
		IsAdminOrEmployee: caps.IsAdminOrEmployee,
		IsNormalUser:      caps.IsNormalUser,
	}
	if p.Persona != nil {
		out.Persona = &PersonaResponse{
			ID:       p.Persona.ID,
			Name:     p.Persona.Name,
			LastName: p.Persona.LastName,
			Address:  p.Persona.Address,
			Phone:    p.Persona.Phone,
		}
		if !p.Persona.BirthDate.IsZero() {
			bd := p.Persona.BirthDate
			out.Persona.BirthDate = &bd
		}
	}
	return out
}

// NewSessionResponse mapea el estado de sesión.
func NewSessionResponse(s entity.SessionState) SessionResponse {
	out := SessionResponse{
		Authenticated:  s.Authenticated(),
		Loading:        s.Loading,
		ProfileLoading: s.ProfileLoading,
		Profile:        NewProfileResponse(s.Profile),
	}
	if s.ProfileErr != nil {
		out.ProfileError = domain.UserMessage(s.ProfileErr)
	}
	return out
}
