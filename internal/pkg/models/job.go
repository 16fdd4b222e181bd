package models

import (
	"time"

	"github.com/google/uuid"
)

// CalculationReason tells the worker which engine operation a job should run
type CalculationReason string

const (
	ReasonFull            CalculationReason = "full"
	ReasonWaypointRemoved CalculationReason = "waypoint_removed"
)

// CalculationJob is the message dispatched to background calculation workers.
// RequestedAt equals the calculation_started_at stamped by the trigger, which ties
// redeliveries to the attempt that enqueued them.
type CalculationJob struct {
	RouteID     uuid.UUID         `json:"route_id"`
	Force       bool              `json:"force"`
	Reason      CalculationReason `json:"reason"`
	RequestedAt time.Time         `json:"requested_at"`
}

// MessageID returns the de-duplication id used when publishing the job
func (j CalculationJob) MessageID() string {
	return j.RouteID.String() + "-" + j.RequestedAt.UTC().Format(time.RFC3339Nano)
}
