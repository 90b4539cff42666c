package entity

import "time"

// LocationSuggestion agregado de solicitudes pendientes sobre una misma ubicación.
// Es de solo lectura; el orden (mayor cantidad primero) lo define el backend.
type LocationSuggestion struct {
	LocationID      int64
	Coordinate      Coordinate
	RequestCount    int
	LastRequestedAt *time.Time
}

// PlacementRequest solicitud de un usuario común para instalar un dispenser en una coordenada.
type PlacementRequest struct {
	ID          int64
	RequestedAt time.Time
	Location    Location
}
