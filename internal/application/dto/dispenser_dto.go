package dto

import "github.com/jhoicas/mate-social/internal/domain/entity"

// ImageResponse foto de un dispenser.
type ImageResponse struct {
	ID   int64  `json:"id"`
	Path string `json:"path"`
}

// LocationResponse ubicación de un dispenser.
type LocationResponse struct {
	ID int64 `json:"id"`
	CoordinateDTO
}

// DispenserResponse dispenser tal como lo consume la UI.
type DispenserResponse struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	Active    bool             `json:"active"`
	Permanent bool             `json:"permanent"`
	Location  LocationResponse `json:"location"`
	Images    []ImageResponse  `json:"images"`
}

// DispenserListResponse listado; Error se completa cuando se muestra la última lista válida.
type DispenserListResponse struct {
	Items []DispenserResponse `json:"items"`
	Error string              `json:"error,omitempty"`
}

// DispenserFormRequest campos del formulario (multipart: name, active, permanent,
// latitude, longitude y el archivo opcional "photo").
type DispenserFormRequest struct {
	Name      string `form:"name"`
	Active    bool   `form:"active"`
	Permanent bool   `form:"permanent"`
	Latitude  string `form:"latitude"`
	Longitude string `form:"longitude"`
}

// FormResponse estado del formulario pendiente.
type FormResponse struct {
	EditingID  int64          `json:"editing_id,omitempty"`
	Name       string         `json:"name"`
	Active     bool           `json:"active"`
	Permanent  bool           `json:"permanent"`
	Coordinate *CoordinateDTO `json:"coordinate,omitempty"`
	HasPhoto   bool           `json:"has_photo"`
	Selecting  bool           `json:"selecting"`
}

// NewDispenserResponse mapea un dispenser de dominio.
func NewDispenserResponse(d entity.Dispenser) DispenserResponse {
	out := DispenserResponse{
		ID:        d.ID,
		Name:      d.Name,
		Active:    d.Active,
		Permanent: d.Permanent,
		Location: LocationResponse{
			ID:            d.Location.ID,
			CoordinateDTO: NewCoordinateDTO(d.Location.Coordinate),
		},
		Images: make([]ImageResponse, 0, len(d.Images)),
	}
	for _, img := range d.Images {
		out.Images = append(out.Images, ImageResponse{ID: img.ID, Path: img.Path})
	}
	return out
}

// NewDispenserListResponse mapea una lista.
func NewDispenserListResponse(items []entity.Dispenser) DispenserListResponse {
	out := DispenserListResponse{Items: make([]DispenserResponse, 0, len(items))}
	for _, d := range items {
		out.Items = append(out.Items, NewDispenserResponse(d))
	}
	return out
}
