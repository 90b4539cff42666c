package repository

import "context"

// TokenRepository define el puerto de persistencia del token de sesión (DIP).
// Cada implementación guarda un único token bajo una clave fija.
// Solo el Session Store debe escribirlo.
type TokenRepository interface {
	// Get devuelve el token guardado o "" si no hay ninguno.
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}
