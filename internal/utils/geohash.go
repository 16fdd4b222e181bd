package utils

import (
	"github.com/mmcloughlin/geohash"
	"github.com/piresc/routecalc/internal/pkg/models"
)

// EncodeCoordinate converts a coordinate to a geohash string
func EncodeCoordinate(c models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision)
}

// DecodeGeohash returns the center of a geohash cell
func DecodeGeohash(hash string) models.Coordinate {
	lat, lng := geohash.DecodeCenter(hash)
	return models.Coordinate{Latitude: lat, Longitude: lng}
}

// GetNeighbors returns the neighboring geohashes of a given geohash
func GetNeighbors(hash string) []string {
	return geohash.Neighbors(hash)
}

// CellWithNeighbors returns the cell containing c followed by its eight neighbours
func CellWithNeighbors(c models.Coordinate, precision uint) []string {
	cell := EncodeCoordinate(c, precision)
	return append([]string{cell}, GetNeighbors(cell)...)
}
