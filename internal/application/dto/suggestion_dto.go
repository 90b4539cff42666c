package dto

import (
	"time"

	"github.com/jhoicas/mate-social/internal/domain/entity"
)

// SuggestionResponse fila del resumen de solicitudes.
type SuggestionResponse struct {
	LocationID      int64      `json:"location_id"`
	RequestCount    int        `json:"request_count"`
	LastRequestedAt *time.Time `json:"last_requested_at,omitempty"`
	Accepting       bool       `json:"accepting"`
	CoordinateDTO
}

// SuggestionListResponse resumen en el orden del backend.
type SuggestionListResponse struct {
	Items     []SuggestionResponse `json:"items"`
	Accepting int64                `json:"accepting,omitempty"`
	Error     string               `json:"error,omitempty"`
}

// AcceptSuggestionRequest campos multipart del alta desde una solicitud (más el archivo "photo").
type AcceptSuggestionRequest struct {
	Name string `form:"name"`
}

// PlacementRequestResponse solicitud registrada.
type PlacementRequestResponse struct {
	ID          int64            `json:"id"`
	RequestedAt time.Time        `json:"requested_at"`
	Location    LocationResponse `json:"location"`
}

// NewSuggestionListResponse mapea el resumen marcando la ubicación en modo "aceptar".
func NewSuggestionListResponse(items []entity.LocationSuggestion, accepting int64) SuggestionListResponse {
	out := SuggestionListResponse{Items: make([]SuggestionResponse, 0, len(items)), Accepting: accepting}
	for _, s := range items {
		out.Items = append(out.Items, SuggestionResponse{
			LocationID:      s.LocationID,
			RequestCount:    s.RequestCount,
			LastRequestedAt: s.LastRequestedAt,
			Accepting:       s.LocationID == accepting,
			CoordinateDTO:   NewCoordinateDTO(s.Coordinate),
		})
	}
	return out
}

// NewPlacementRequestResponse mapea una solicitud creada.
func NewPlacementRequestResponse(r *entity.PlacementRequest) PlacementRequestResponse {
	return PlacementRequestResponse{
		ID:          r.ID,
		RequestedAt: r.RequestedAt,
		Location: LocationResponse{
			ID:            r.Location.ID,
			CoordinateDTO: NewCoordinateDTO(r.Location.Coordinate),
		},
	}
}
