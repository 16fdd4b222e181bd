package route

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientWaypoints is returned when a route has fewer than two waypoints to calculate
	ErrInsufficientWaypoints = errors.New("route needs at least 2 waypoints to be calculated")
	// ErrRouteNotFound is returned when the route does not exist
	ErrRouteNotFound = errors.New("route not found")
	// ErrWaypointNotFound is returned when the waypoint does not belong to the route
	ErrWaypointNotFound = errors.New("waypoint not found")
	// ErrCalculationInProgress is returned when a route is already being calculated
	ErrCalculationInProgress = errors.New("route calculation already in progress")

	ErrBackendUnreachable  = errors.New("routing backend unreachable")
	ErrBackendBadResponse  = errors.New("routing backend returned an invalid response")
	ErrBackendUnauthorized = errors.New("routing backend rejected the credentials")
)

// BackendError is a classified routing backend failure.
// errors.Is matches it against its Kind.
type BackendError struct {
	Backend string
	Kind    error
	Message string
	Err     error
}

// NewBackendError builds a BackendError of the given kind
func NewBackendError(backend string, kind error, message string, cause error) *BackendError {
	return &BackendError{Backend: backend, Kind: kind, Message: message, Err: cause}
}

func (e *BackendError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		return fmt.Sprintf("%s (%s)", e.Kind, e.Backend)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Backend, msg)
}

func (e *BackendError) Is(target error) bool {
	return target == e.Kind
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
