package models

// CreateRouteRequest is the body of a route creation call
type CreateRouteRequest struct {
	Name      string            `json:"name" validate:"required,max=255"`
	OwnerID   string            `json:"owner_id" validate:"max=128"`
	Profile   string            `json:"profile" validate:"omitempty,oneof=driving-car driving-hgv cycling-regular foot-walking"`
	Waypoints []WaypointRequest `json:"waypoints" validate:"dive"`
	Calculate bool              `json:"calculate"`
}

// WaypointRequest describes a waypoint to add to a route
type WaypointRequest struct {
	AfterSequence *int    `json:"after_sequence,omitempty" validate:"omitempty,gte=-1"`
	Latitude      float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude     float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Name          string  `json:"name" validate:"max=255"`
	Description   *string `json:"description,omitempty"`
}

// MoveWaypointRequest carries the new coordinates of an existing waypoint
type MoveWaypointRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// CalculateRequest triggers a route calculation
type CalculateRequest struct {
	Force bool  `json:"force"`
	Async *bool `json:"async,omitempty"`
}

// TriggerResult tells the caller how a calculation trigger was handled
type TriggerResult struct {
	Status     CalculationStatus `json:"status"`
	Dispatched bool              `json:"dispatched"`
	Async      bool              `json:"async"`
}
