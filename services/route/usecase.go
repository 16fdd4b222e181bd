package route

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/routecalc/services/route RouteUC

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/routecalc/internal/pkg/models"
)

// RouteUC defines the interface for route business logic
type RouteUC interface {
	CreateRoute(ctx context.Context, req models.CreateRouteRequest) (*models.RouteDetail, error)
	GetRoute(ctx context.Context, routeID uuid.UUID) (*models.RouteDetail, error)
	ListRoutes(ctx context.Context, ownerID string) ([]*models.Route, error)
	DeleteRoute(ctx context.Context, routeID uuid.UUID) error

	InsertWaypoint(ctx context.Context, routeID uuid.UUID, req models.WaypointRequest) (*models.Waypoint, *models.TriggerResult, error)
	MoveWaypoint(ctx context.Context, routeID, waypointID uuid.UUID, req models.MoveWaypointRequest) (*models.Waypoint, *models.TriggerResult, error)
	DeleteWaypoint(ctx context.Context, routeID, waypointID uuid.UUID) (*models.TriggerResult, error)

	TriggerCalculation(ctx context.Context, routeID uuid.UUID, req models.CalculateRequest) (*models.TriggerResult, error)
	CalculateFull(ctx context.Context, routeID uuid.UUID, force bool) error
	RecalculateAfterWaypointRemoval(ctx context.Context, routeID uuid.UUID, removedSequence int) error
	EstimateCalculationTime(waypointCount int) float64
	GetStatus(ctx context.Context, routeID uuid.UUID) (*models.CalculationStatusReport, error)

	ProcessCalculationJob(ctx context.Context, job models.CalculationJob) error
	MarkCalculationFailed(ctx context.Context, job models.CalculationJob, cause error) error

	TestConnectivity(ctx context.Context) models.ConnectivityReport
	InvalidateCacheArea(ctx context.Context, c models.Coordinate) (int, error)
}
