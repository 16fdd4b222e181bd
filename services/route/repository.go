package route

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/routecalc/services/route SegmentStore,RouteRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/routecalc/internal/pkg/models"
)

// SegmentStore holds the ordered waypoints and computed segments of routes.
// Every mutating method is atomic on its own.
type SegmentStore interface {
	ListWaypoints(ctx context.Context, routeID uuid.UUID) ([]models.Waypoint, error)
	SaveWaypoints(ctx context.Context, waypoints []models.Waypoint) error
	DeleteWaypoint(ctx context.Context, routeID, waypointID uuid.UUID) error

	ListSegments(ctx context.Context, routeID uuid.UUID) ([]models.Segment, error)
	ReplaceAll(ctx context.Context, routeID uuid.UUID, segments []models.Segment) error
	InsertSegment(ctx context.Context, segment *models.Segment) error
	DeleteSegments(ctx context.Context, segmentIDs []uuid.UUID) error
	DeleteRange(ctx context.Context, routeID uuid.UUID, from, to int) error
	Renumber(ctx context.Context, routeID uuid.UUID) error
	SumTotals(ctx context.Context, routeID uuid.UUID) (models.RouteTotals, error)
}

// RouteRepo defines the interface for route data access operations
type RouteRepo interface {
	SegmentStore

	// CreateRoute stores the route together with its initial waypoints
	CreateRoute(ctx context.Context, route *models.Route, waypoints []models.Waypoint) error
	GetRoute(ctx context.Context, routeID uuid.UUID) (*models.Route, error)
	ListRoutesByOwner(ctx context.Context, ownerID string) ([]*models.Route, error)
	DeleteRoute(ctx context.Context, routeID uuid.UUID) error

	// StartCalculation moves the route into calculating unless it already is.
	// It reports whether the transition happened.
	StartCalculation(ctx context.Context, routeID uuid.UUID, startedAt time.Time) (bool, error)
	SaveCalculationResult(ctx context.Context, routeID uuid.UUID, totals models.RouteTotals, completedAt time.Time) error
	SaveCalculationError(ctx context.Context, routeID uuid.UUID, status models.CalculationStatus, message string, completedAt time.Time) error

	AcquireCalculationLock(ctx context.Context, routeID uuid.UUID, ttl time.Duration) (bool, error)
	ReleaseCalculationLock(ctx context.Context, routeID uuid.UUID) error

	// Atomic runs fn in a single transaction
	Atomic(ctx context.Context, fn func(store SegmentStore) error) error
}
