package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/mate-social/internal/domain/entity"
)

const pathDispensers = "/api/dispensers/"

func dispenserPath(id int64) string {
	return fmt.Sprintf("%s%d/", pathDispensers, id)
}

// ListDispensers devuelve todos los dispensers. token puede ser vacío.
func (c *Client) ListDispensers(ctx context.Context, token string) ([]entity.Dispenser, error) {
	var out []dispenserDTO
	if err := c.do(ctx, request{method: http.MethodGet, path: pathDispensers, token: token}, &out); err != nil {
		return nil, fmt.Errorf("listar dispensers: %w", err)
	}
	items := make([]entity.Dispenser, 0, len(out))
	for _, d := range out {
		items = append(items, d.toEntity())
	}
	return items, nil
}

// CreateDispenser alta multipart.
func (c *Client) CreateDispenser(ctx context.Context, token string, in entity.DispenserInput) (*entity.Dispenser, error) {
	return c.sendDispenser(ctx, http.MethodPost, pathDispensers, token, in)
}

// UpdateDispenser edición multipart (mismos campos que el alta).
func (c *Client) UpdateDispenser(ctx context.Context, token string, id int64, in entity.DispenserInput) (*entity.Dispenser, error) {
	return c.sendDispenser(ctx, http.MethodPut, dispenserPath(id), token, in)
}

// DeleteDispenser baja; el backend responde 204.
func (c *Client) DeleteDispenser(ctx context.Context, token string, id int64) error {
	if err := c.do(ctx, request{method: http.MethodDelete, path: dispenserPath(id), token: token}, nil); err != nil {
		return fmt.Errorf("eliminar dispenser %d: %w", id, err)
	}
	return nil
}

func (c *Client) sendDispenser(ctx context.Context, method, path, token string, in entity.DispenserInput) (*entity.Dispenser, error) {
	body, contentType, err := dispenserForm(in)
	if err != nil {
		return nil, err
	}
	var out dispenserDTO
	if err := c.do(ctx, request{method: method, path: path, token: token, body: body, contentType: contentType}, &out); err != nil {
		return nil, fmt.Errorf("guardar dispenser: %w", err)
	}
	d := out.toEntity()
	return &d, nil
}
