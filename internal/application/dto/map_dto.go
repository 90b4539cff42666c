package dto

import "github.com/jhoicas/mate-social/internal/domain/entity"

// MarkerResponse pin del mapa.
type MarkerResponse struct {
	DispenserID int64  `json:"dispenser_id"`
	Title       string `json:"title"`
	Active      bool   `json:"active"`
	CoordinateDTO
}

// MapResponse estado de la vista de mapa.
type MapResponse struct {
	Center    CoordinateDTO    `json:"center"`
	Zoom      int              `json:"zoom"`
	Markers   []MarkerResponse `json:"markers"`
	Selecting bool             `json:"selecting"`
	Error     string           `json:"error,omitempty"`
}

// MapClickResponse resultado de un click: Captured indica si la selección estaba armada.
type MapClickResponse struct {
	Captured bool         `json:"captured"`
	Form     FormResponse `json:"form"`
}

// NewMarkers mapea los marcadores.
func NewMarkers(markers []entity.Marker) []MarkerResponse {
	out := make([]MarkerResponse, 0, len(markers))
	for _, m := range markers {
		out = append(out, MarkerResponse{
			DispenserID:   m.DispenserID,
			Title:         m.Title,
			Active:        m.Active,
			CoordinateDTO: NewCoordinateDTO(m.Coordinate),
		})
	}
	return out
}
