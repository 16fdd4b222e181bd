package models

import (
	"time"

	"github.com/google/uuid"
)

// CalculationStatus represents the calculation state of a route
type CalculationStatus string

const (
	CalculationNotStarted CalculationStatus = "not_started"
	CalculationInProgress CalculationStatus = "calculating"
	CalculationCompleted  CalculationStatus = "completed"
	CalculationError      CalculationStatus = "error"
	CalculationFailed     CalculationStatus = "failed"
)

// DefaultProfile is the travel profile used when a route does not name one
const DefaultProfile = "driving-car"

// Coordinate is a WGS84 latitude/longitude pair
type Coordinate struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// Route is the aggregate owning waypoints and segments
type Route struct {
	ID                     uuid.UUID         `json:"id" db:"id"`
	Name                   string            `json:"name" db:"name"`
	OwnerID                string            `json:"owner_id,omitempty" db:"owner_id"`
	Profile                string            `json:"profile" db:"profile"`
	TotalDistance          float64           `json:"total_distance" db:"total_distance"`
	TotalDuration          float64           `json:"total_duration" db:"total_duration"`
	LastCalculatedAt       *time.Time        `json:"last_calculated_at,omitempty" db:"last_calculated_at"`
	CalculationStatus      CalculationStatus `json:"calculation_status" db:"calculation_status"`
	CalculationError       *string           `json:"calculation_error,omitempty" db:"calculation_error"`
	CalculationStartedAt   *time.Time        `json:"calculation_started_at,omitempty" db:"calculation_started_at"`
	CalculationCompletedAt *time.Time        `json:"calculation_completed_at,omitempty" db:"calculation_completed_at"`
	CreatedAt              time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt              time.Time         `json:"updated_at" db:"updated_at"`
}

// Waypoint is a user-specified stop of a route
type Waypoint struct {
	ID          uuid.UUID `json:"id" db:"id"`
	RouteID     uuid.UUID `json:"route_id" db:"route_id"`
	Sequence    int       `json:"sequence" db:"sequence"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Coordinate returns the waypoint position
func (w Waypoint) Coordinate() Coordinate {
	return Coordinate{Latitude: w.Latitude, Longitude: w.Longitude}
}

// Segment is the computed path between two sequence-adjacent waypoints
type Segment struct {
	ID              uuid.UUID `json:"id" db:"id"`
	RouteID         uuid.UUID `json:"route_id" db:"route_id"`
	Sequence        int       `json:"sequence" db:"sequence"`
	StartWaypointID uuid.UUID `json:"start_waypoint_id" db:"start_waypoint_id"`
	EndWaypointID   uuid.UUID `json:"end_waypoint_id" db:"end_waypoint_id"`
	Distance        float64   `json:"distance" db:"distance"`
	Duration        float64   `json:"duration" db:"duration"`
	Geometry        string    `json:"geometry" db:"geometry"`
	Profile         string    `json:"profile" db:"profile"`
	CacheKey        string    `json:"cache_key" db:"cache_key"`
	ExpiresAt       time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// Expired reports whether the segment may no longer be reused at the given instant
func (s Segment) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// RouteTotals holds the aggregate distance (meters) and duration (seconds) of a route
type RouteTotals struct {
	Distance float64 `json:"distance" db:"distance"`
	Duration float64 `json:"duration" db:"duration"`
}

// RouteDetail is a route together with its ordered waypoints and segments
type RouteDetail struct {
	Route     *Route     `json:"route"`
	Waypoints []Waypoint `json:"waypoints"`
	Segments  []Segment  `json:"segments"`
}

// CalculationStatusReport is the polling view of a route calculation
type CalculationStatusReport struct {
	RouteID               uuid.UUID         `json:"route_id"`
	Status                CalculationStatus `json:"status"`
	StartedAt             *time.Time        `json:"started_at,omitempty"`
	CompletedAt           *time.Time        `json:"completed_at,omitempty"`
	Error                 *string           `json:"error,omitempty"`
	ElapsedSeconds        *float64          `json:"elapsed_seconds,omitempty"`
	EstimatedTotalSeconds *float64          `json:"estimated_total_seconds,omitempty"`
	ProgressPercentage    *float64          `json:"progress_percentage,omitempty"`
	TotalDistance         float64           `json:"total_distance"`
	TotalDuration         float64           `json:"total_duration"`
	Waypoints             []Waypoint        `json:"waypoints,omitempty"`
	Segments              []Segment         `json:"segments,omitempty"`
}
