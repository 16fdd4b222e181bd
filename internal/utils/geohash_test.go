package utils

import (
	"testing"

	"github.com/piresc/routecalc/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestEncodeCoordinate(t *testing.T) {
	saoPaulo := models.Coordinate{Latitude: -23.5505, Longitude: -46.6333}

	hash := EncodeCoordinate(saoPaulo, 5)
	assert.Len(t, hash, 5)

	center := DecodeGeohash(hash)
	assert.InDelta(t, saoPaulo.Latitude, center.Latitude, 0.05)
	assert.InDelta(t, saoPaulo.Longitude, center.Longitude, 0.05)
}

func TestCellWithNeighbors(t *testing.T) {
	c := models.Coordinate{Latitude: -22.9068, Longitude: -43.1729}

	cells := CellWithNeighbors(c, 5)

	assert.Len(t, cells, 9)
	assert.Equal(t, EncodeCoordinate(c, 5), cells[0])
	seen := map[string]bool{}
	for _, cell := range cells {
		assert.False(t, seen[cell], "duplicate cell %s", cell)
		seen[cell] = true
	}
}
