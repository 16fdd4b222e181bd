package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/routecalc/internal/pkg/logger"
	"github.com/piresc/routecalc/internal/pkg/models"
	"github.com/piresc/routecalc/services/route"
)

// ProcessCalculationJob runs a dispatched calculation. Jobs whose route is no longer
// calculating for the same trigger are skipped, as are jobs another worker holds the
// lock for. A returned error asks the transport to redeliver.
func (uc *RouteUC) ProcessCalculationJob(ctx context.Context, job models.CalculationJob) error {
	rt, err := uc.routeRepo.GetRoute(ctx, job.RouteID)
	if errors.Is(err, route.ErrRouteNotFound) {
		logger.InfoCtx(ctx, "Skipping calculation job for deleted route", logger.RouteID(job.RouteID))
		return nil
	}
	if err != nil {
		return err
	}

	if !belongsToAttempt(rt, job) {
		logger.InfoCtx(ctx, "Skipping stale calculation job",
			logger.RouteID(job.RouteID),
			logger.String("status", string(rt.CalculationStatus)))
		return nil
	}

	acquired, err := uc.routeRepo.AcquireCalculationLock(ctx, job.RouteID, uc.lockTTL())
	if err != nil {
		return fmt.Errorf("failed to acquire calculation lock: %w", err)
	}
	if !acquired {
		logger.InfoCtx(ctx, "Route is being calculated by another worker", logger.RouteID(job.RouteID))
		return nil
	}
	defer func() {
		if err := uc.routeRepo.ReleaseCalculationLock(context.WithoutCancel(ctx), job.RouteID); err != nil {
			logger.WarnCtx(ctx, "Failed to release calculation lock", logger.RouteID(job.RouteID), logger.Err(err))
		}
	}()

	// a redelivery after a failed attempt puts the route back in flight
	if rt.CalculationStatus != models.CalculationInProgress {
		if _, err := uc.routeRepo.StartCalculation(ctx, job.RouteID, *rt.CalculationStartedAt); err != nil {
			return err
		}
	}

	logger.InfoCtx(ctx, "Processing calculation job",
		logger.RouteID(job.RouteID),
		logger.String("reason", string(job.Reason)),
		logger.Bool("force", job.Force))

	err = uc.CalculateFull(ctx, job.RouteID, job.Force)
	if errors.Is(err, route.ErrInsufficientWaypoints) {
		// retrying cannot add waypoints
		uc.recordFailure(ctx, job.RouteID, models.CalculationError, err)
		return nil
	}
	return err
}

// MarkCalculationFailed records that a job gave up after its last attempt
func (uc *RouteUC) MarkCalculationFailed(ctx context.Context, job models.CalculationJob, cause error) error {
	rt, err := uc.routeRepo.GetRoute(ctx, job.RouteID)
	if errors.Is(err, route.ErrRouteNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !belongsToAttempt(rt, job) {
		return nil
	}

	logger.ErrorCtx(ctx, "Route calculation failed after retries",
		logger.RouteID(job.RouteID),
		logger.Err(cause))
	return uc.routeRepo.SaveCalculationError(ctx, job.RouteID, models.CalculationFailed,
		fmt.Sprintf("calculation failed after retries: %v", cause), uc.now())
}

// belongsToAttempt reports whether job may still act on rt: the route is calculating for
// the trigger that enqueued job, or an earlier attempt of that trigger left it in error.
func belongsToAttempt(rt *models.Route, job models.CalculationJob) bool {
	switch rt.CalculationStatus {
	case models.CalculationInProgress, models.CalculationError:
		return rt.CalculationStartedAt != nil && rt.CalculationStartedAt.Equal(job.RequestedAt)
	default:
		return false
	}
}
