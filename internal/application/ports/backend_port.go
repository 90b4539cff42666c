package ports

import (
	"context"

	"github.com/jhoicas/mate-social/internal/domain/entity"
)

// Puertos de salida hacia el backend REST. La capa de aplicación solo conoce estos
// contratos; el adaptador HTTP vive en infrastructure/backend.
// Todas las operaciones autenticadas reciben el token explícitamente: el estado de
// sesión pertenece a session.Manager, no al cliente HTTP.

// AuthGateway obtención de token y alta de cuentas.
type AuthGateway interface {
	ObtainToken(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, in entity.AccountInput) error
	CreateAdminEmployee(ctx context.Context, token string, in entity.AccountInput) error
}

// ProfileGateway lectura del perfil del usuario autenticado.
type ProfileGateway interface {
	GetProfile(ctx context.Context, token string) (*entity.Profile, error)
}

// DispenserGateway CRUD de dispensers. El listado acepta token vacío (lectura pública).
type DispenserGateway interface {
	ListDispensers(ctx context.Context, token string) ([]entity.Dispenser, error)
	CreateDispenser(ctx context.Context, token string, in entity.DispenserInput) (*entity.Dispenser, error)
	UpdateDispenser(ctx context.Context, token string, id int64, in entity.DispenserInput) (*entity.Dispenser, error)
	DeleteDispenser(ctx context.Context, token string, id int64) error
}

// SuggestionGateway solicitudes de ubicación y su aceptación por un administrador.
type SuggestionGateway interface {
	ListSuggestions(ctx context.Context, token string) ([]entity.LocationSuggestion, error)
	AcceptSuggestion(ctx context.Context, token string, locationID int64, name string, photo entity.Photo) (*entity.Dispenser, error)
	CreatePlacementRequest(ctx context.Context, token string, at entity.Coordinate) (*entity.PlacementRequest, error)
}
