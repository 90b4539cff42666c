package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CoordinateDecimals precisión con la que el backend normaliza las coordenadas.
const CoordinateDecimals = 4

var (
	maxLatitude  = decimal.NewFromInt(90)
	maxLongitude = decimal.NewFromInt(180)
)

// Coordinate par latitud/longitud en grados decimales.
// Se usa decimal porque el backend intercambia las coordenadas como strings decimales.
type Coordinate struct {
	Latitude  decimal.Decimal
	Longitude decimal.Decimal
}

// NewCoordinate construye una coordenada desde floats (p. ej. un click en el mapa).
func NewCoordinate(lat, lng float64) Coordinate {
	return Coordinate{Latitude: decimal.NewFromFloat(lat), Longitude: decimal.NewFromFloat(lng)}
}

// Normalized redondea a CoordinateDecimals (mitad hacia arriba, alejándose de cero),
// igual que el backend antes de buscar o crear la ubicación.
func (c Coordinate) Normalized() Coordinate {
	return Coordinate{
		Latitude:  c.Latitude.Round(CoordinateDecimals),
		Longitude: c.Longitude.Round(CoordinateDecimals),
	}
}

// Validate verifica los rangos geográficos.
func (c Coordinate) Validate() error {
	if c.Latitude.Abs().GreaterThan(maxLatitude) {
		return fmt.Errorf("latitud fuera de rango: %s", c.Latitude)
	}
	if c.Longitude.Abs().GreaterThan(maxLongitude) {
		return fmt.Errorf("longitud fuera de rango: %s", c.Longitude)
	}
	return nil
}

// Equal compara por valor.
func (c Coordinate) Equal(o Coordinate) bool {
	return c.Latitude.Equal(o.Latitude) && c.Longitude.Equal(o.Longitude)
}

func (c Coordinate) String() string {
	return c.Latitude.String() + "," + c.Longitude.String()
}
