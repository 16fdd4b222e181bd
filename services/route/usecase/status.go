package usecase

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/piresc/routecalc/internal/pkg/models"
)

const maxInFlightProgress = 95.0

// GetStatus reports the calculation state of a route. While calculating it adds
// elapsed time and a progress estimate that never reaches 100.
func (uc *RouteUC) GetStatus(ctx context.Context, routeID uuid.UUID) (*models.CalculationStatusReport, error) {
	rt, err := uc.routeRepo.GetRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}

	report := &models.CalculationStatusReport{
		RouteID:       rt.ID,
		Status:        rt.CalculationStatus,
		StartedAt:     rt.CalculationStartedAt,
		CompletedAt:   rt.CalculationCompletedAt,
		Error:         rt.CalculationError,
		TotalDistance: rt.TotalDistance,
		TotalDuration: rt.TotalDuration,
	}

	switch rt.CalculationStatus {
	case models.CalculationInProgress:
		if rt.CalculationStartedAt == nil {
			break
		}
		waypoints, err := uc.routeRepo.ListWaypoints(ctx, routeID)
		if err != nil {
			return nil, err
		}

		elapsed := math.Max(0, uc.now().Sub(*rt.CalculationStartedAt).Seconds())
		estimated := uc.EstimateCalculationTime(len(waypoints))
		progress := math.Min(maxInFlightProgress, elapsed/estimated*100)

		report.ElapsedSeconds = &elapsed
		report.EstimatedTotalSeconds = &estimated
		report.ProgressPercentage = &progress

	case models.CalculationCompleted:
		waypoints, err := uc.routeRepo.ListWaypoints(ctx, routeID)
		if err != nil {
			return nil, err
		}
		segments, err := uc.routeRepo.ListSegments(ctx, routeID)
		if err != nil {
			return nil, err
		}
		report.Waypoints = waypoints
		report.Segments = segments
	}

	return report, nil
}
