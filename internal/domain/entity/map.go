package entity

import "github.com/shopspring/decimal"

// DefaultMapZoom zoom inicial del mapa.
const DefaultMapZoom = 13

// DefaultMapCenter centro inicial del mapa (Buenos Aires).
var DefaultMapCenter = Coordinate{
	Latitude:  decimal.RequireFromString("-34.6037"),
	Longitude: decimal.RequireFromString("-58.3816"),
}

// Marker pin dibujado en el mapa por cada dispenser.
type Marker struct {
	DispenserID int64
	Title       string
	Coordinate  Coordinate
	Active      bool
}

// MarkersFor deriva los marcadores de una lista de dispensers.
func MarkersFor(items []Dispenser) []Marker {
	out := make([]Marker, 0, len(items))
	for _, d := range items {
		out = append(out, Marker{
			DispenserID: d.ID,
			Title:       d.Name,
			Coordinate:  d.Location.Coordinate,
			Active:      d.Active,
		})
	}
	return out
}
