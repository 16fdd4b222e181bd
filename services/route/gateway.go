package route

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/routecalc/services/route RoutingBackend,JobGW

import (
	"context"

	"github.com/piresc/routecalc/internal/pkg/models"
)

// RoutingBackend computes the path between two coordinates.
// Failures are returned as *BackendError.
type RoutingBackend interface {
	Name() string
	Kind() models.BackendKind
	ComputePath(ctx context.Context, start, end models.Coordinate, profile string) (*models.PathResult, error)
	TestConnectivity(ctx context.Context) models.ConnectivityReport
}

// JobGW dispatches calculation jobs to background workers
type JobGW interface {
	PublishCalculationJob(ctx context.Context, job models.CalculationJob) error
}
