package models

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// coordinatePrecision is the number of decimal digits kept when addressing the segment cache
const coordinatePrecision = 6

// PathResult is what a routing backend returns for a pair of coordinates
type PathResult struct {
	Distance        float64         `json:"distance"`
	Duration        float64         `json:"duration"`
	Geometry        string          `json:"geometry"`
	RawInstructions json.RawMessage `json:"raw_instructions,omitempty"`
}

// CacheEntry is a cached path result addressed by coordinates and profile
type CacheEntry struct {
	Distance  float64   `json:"distance"`
	Duration  float64   `json:"duration"`
	Geometry  string    `json:"geometry"`
	Profile   string    `json:"profile"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	// Origin is the start coordinate, used to index the entry by area
	Origin Coordinate `json:"origin"`
}

// Expired reports whether the entry must be treated as a miss at the given instant
func (e CacheEntry) Expired(now time.Time) bool {
	return !e.ExpiresAt.After(now)
}

// ConnectivityReport is the outcome of a routing backend round trip
type ConnectivityReport struct {
	Success   bool   `json:"success"`
	LatencyMS int64  `json:"latency_ms"`
	Backend   string `json:"backend"`
	Error     string `json:"error,omitempty"`
}

// RoundCoordinate rounds a coordinate component to the cache precision
func RoundCoordinate(v float64) float64 {
	pow := math.Pow(10, coordinatePrecision)
	r := math.Round(v*pow) / pow
	if r == 0 {
		// collapse -0 so that both signs share a key
		return 0
	}
	return r
}

// SegmentCacheKey derives the cache key of a coordinate pair for a travel profile.
// It depends on nothing but rounded coordinates and the profile.
func SegmentCacheKey(start, end Coordinate, profile string) string {
	return fmt.Sprintf("%.*f,%.*f:%.*f,%.*f:%s",
		coordinatePrecision, RoundCoordinate(start.Latitude),
		coordinatePrecision, RoundCoordinate(start.Longitude),
		coordinatePrecision, RoundCoordinate(end.Latitude),
		coordinatePrecision, RoundCoordinate(end.Longitude),
		profile)
}
