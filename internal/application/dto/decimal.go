package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mate-social/internal/domain/entity"
)

// Decimal alias para que los DTOs no repitan el import.
type Decimal = decimal.Decimal

// NewCoordinateDTO convierte una coordenada de dominio.
func NewCoordinateDTO(c entity.Coordinate) CoordinateDTO {
	return CoordinateDTO{Latitude: c.Latitude, Longitude: c.Longitude}
}

// Entity convierte a coordenada de dominio.
func (c CoordinateDTO) Entity() entity.Coordinate {
	return entity.Coordinate{Latitude: c.Latitude, Longitude: c.Longitude}
}
