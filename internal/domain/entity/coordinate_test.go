package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/mate-social/internal/domain/entity"
)

func TestCoordinate_NormalizadaCuatroDecimales(t *testing.T) {
	c := entity.Coordinate{
		Latitude:  decimal.RequireFromString("-34.60375"),
		Longitude: decimal.RequireFromString("-58.38164"),
	}
	n := c.Normalized()
	assert.Equal(t, "-34.6038", n.Latitude.String())
	assert.Equal(t, "-58.3816", n.Longitude.String())
}

func TestCoordinate_Validate(t *testing.T) {
	assert.NoError(t, entity.NewCoordinate(-34.6, -58.4).Validate())
	assert.Error(t, entity.NewCoordinate(91, 0).Validate())
	assert.Error(t, entity.NewCoordinate(0, -181).Validate())
}

func TestMarkersFor(t *testing.T) {
	items := []entity.Dispenser{
		{ID: 1, Name: "Plaza", Location: entity.Location{Coordinate: entity.NewCoordinate(-34.6, -58.4)}},
	}
	markers := entity.MarkersFor(items)
	assert.Len(t, markers, 1)
	assert.Equal(t, int64(1), markers[0].DispenserID)
	assert.Equal(t, "Plaza", markers[0].Title)

	assert.Empty(t, entity.MarkersFor(nil))
}
