package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jhoicas/mate-social/internal/domain"
	"github.com/jhoicas/mate-social/internal/domain/entity"
)

const (
	pathToken               = "/api-token-auth/"
	pathRegister            = "/api/users/register/"
	pathProfile             = "/api/users/profile/"
	pathCreateAdminEmployee = "/api/users/admin/create-admin-employee/"
)

// ObtainToken intercambia usuario y contraseña por un token opaco.
// El backend responde 400 ante credenciales inválidas; se reporta como KindAuth.
func (c *Client) ObtainToken(ctx context.Context, username, password string) (string, error) {
	r, err := jsonRequest(http.MethodPost, pathToken, "", tokenRequest{Username: username, Password: password})
	if err != nil {
		return "", err
	}
	var out tokenResponse
	if err := c.do(ctx, r, &out); err != nil {
		var ae *domain.APIError
		if errors.As(err, &ae) && ae.Status == http.StatusBadRequest {
			ae.Kind = domain.KindAuth
		}
		return "", err
	}
	if out.Token == "" {
		return "", &domain.APIError{Kind: domain.KindUnexpected, Status: http.StatusOK, Err: errors.New("respuesta sin token")}
	}
	return out.Token, nil
}

// Register crea una cuenta de usuario común.
func (c *Client) Register(ctx context.Context, in entity.AccountInput) error {
	r, err := jsonRequest(http.MethodPost, pathRegister, "", accountRequest(in))
	if err != nil {
		return err
	}
	return c.do(ctx, r, nil)
}

// CreateAdminEmployee crea una cuenta con rol "Administrador Empleado" (solo administradores).
func (c *Client) CreateAdminEmployee(ctx context.Context, token string, in entity.AccountInput) error {
	r, err := jsonRequest(http.MethodPost, pathCreateAdminEmployee, token, accountRequest(in))
	if err != nil {
		return err
	}
	return c.do(ctx, r, nil)
}

// GetProfile obtiene el perfil del dueño del token.
func (c *Client) GetProfile(ctx context.Context, token string) (*entity.Profile, error) {
	var out profileDTO
	if err := c.do(ctx, request{method: http.MethodGet, path: pathProfile, token: token}, &out); err != nil {
		return nil, fmt.Errorf("perfil: %w", err)
	}
	return out.toEntity(), nil
}
