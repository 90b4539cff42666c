package backend

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jhoicas/mate-social/internal/domain/entity"
)

const (
	pathSolicitudes        = "/api/solicitudes/"
	pathSolicitudesResumen = "/api/solicitudes/summary/"
	pathSolicitudesAccept  = "/api/solicitudes/accept/"
)

// ListSuggestions resumen de solicitudes pendientes agrupadas por ubicación.
// Se respeta el orden del backend (mayor cantidad primero).
func (c *Client) ListSuggestions(ctx context.Context, token string) ([]entity.LocationSuggestion, error) {
	var out []suggestionDTO
	if err := c.do(ctx, request{method: http.MethodGet, path: pathSolicitudesResumen, token: token}, &out); err != nil {
		return nil, fmt.Errorf("resumen de solicitudes: %w", err)
	}
	items := make([]entity.LocationSuggestion, 0, len(out))
	for _, s := range out {
		items = append(items, s.toEntity())
	}
	return items, nil
}

// AcceptSuggestion convierte las solicitudes de una ubicación en un dispenser nuevo.
func (c *Client) AcceptSuggestion(ctx context.Context, token string, locationID int64, name string, photo entity.Photo) (*entity.Dispenser, error) {
	body, contentType, err := newFormBuilder().
		field("codigo_ubicacion", strconv.FormatInt(locationID, 10)).
		field("nombre_dispenser", name).
		file("foto", &photo).
		build()
	if err != nil {
		return nil, err
	}
	var out dispenserDTO
	r := request{method: http.MethodPost, path: pathSolicitudesAccept, token: token, body: body, contentType: contentType}
	if err := c.do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("aceptar solicitud %d: %w", locationID, err)
	}
	d := out.toEntity()
	return &d, nil
}

// CreatePlacementRequest registra una solicitud de instalación (usuarios comunes).
func (c *Client) CreatePlacementRequest(ctx context.Context, token string, at entity.Coordinate) (*entity.PlacementRequest, error) {
	n := at.Normalized()
	r, err := jsonRequest(http.MethodPost, pathSolicitudes, token, placementRequestDTO{Latitud: n.Latitude, Longitud: n.Longitude})
	if err != nil {
		return nil, err
	}
	var out placementResponseDTO
	if err := c.do(ctx, r, &out); err != nil {
		return nil, fmt.Errorf("crear solicitud: %w", err)
	}
	return &entity.PlacementRequest{
		ID:          out.CodigoSolicitud,
		RequestedAt: out.FechaSolicitud,
		Location:    out.Ubicacion.toEntity(),
	}, nil
}
