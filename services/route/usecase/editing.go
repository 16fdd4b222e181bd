package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/routecalc/internal/pkg/logger"
	"github.com/piresc/routecalc/internal/pkg/models"
	"github.com/piresc/routecalc/services/route"
)

// CreateRoute stores a route with its initial waypoints and optionally calculates it
func (uc *RouteUC) CreateRoute(ctx context.Context, req models.CreateRouteRequest) (*models.RouteDetail, error) {
	now := uc.now()
	rt := &models.Route{
		ID:                uuid.New(),
		Name:              req.Name,
		OwnerID:           req.OwnerID,
		Profile:           req.Profile,
		CalculationStatus: models.CalculationNotStarted,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	rt.Profile = uc.profileOf(rt)

	waypoints := make([]models.Waypoint, len(req.Waypoints))
	for i, w := range req.Waypoints {
		waypoints[i] = newWaypoint(rt.ID, i, w, now)
	}

	if err := uc.routeRepo.CreateRoute(ctx, rt, waypoints); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Route created",
		logger.RouteID(rt.ID),
		logger.String("profile", rt.Profile),
		logger.Int("waypoints", len(waypoints)))

	if !req.Calculate || len(waypoints) < 2 {
		return &models.RouteDetail{Route: rt, Waypoints: waypoints, Segments: []models.Segment{}}, nil
	}

	// the route exists either way, a failed calculation shows up in its status
	if _, err := uc.TriggerCalculation(ctx, rt.ID, models.CalculateRequest{}); err != nil {
		logger.WarnCtx(ctx, "Initial route calculation failed",
			logger.RouteID(rt.ID),
			logger.Err(err))
	}
	return uc.GetRoute(ctx, rt.ID)
}

// GetRoute returns a route with its ordered waypoints and segments
func (uc *RouteUC) GetRoute(ctx context.Context, routeID uuid.UUID) (*models.RouteDetail, error) {
	rt, err := uc.routeRepo.GetRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}
	waypoints, err := uc.routeRepo.ListWaypoints(ctx, routeID)
	if err != nil {
		return nil, err
	}
	segments, err := uc.routeRepo.ListSegments(ctx, routeID)
	if err != nil {
		return nil, err
	}

	if waypoints == nil {
		waypoints = []models.Waypoint{}
	}
	if segments == nil {
		segments = []models.Segment{}
	}
	return &models.RouteDetail{Route: rt, Waypoints: waypoints, Segments: segments}, nil
}

// ListRoutes returns the routes of an owner, newest first
func (uc *RouteUC) ListRoutes(ctx context.Context, ownerID string) ([]*models.Route, error) {
	return uc.routeRepo.ListRoutesByOwner(ctx, ownerID)
}

// DeleteRoute removes a route together with its waypoints and segments
func (uc *RouteUC) DeleteRoute(ctx context.Context, routeID uuid.UUID) error {
	if err := uc.routeRepo.DeleteRoute(ctx, routeID); err != nil {
		return err
	}
	logger.InfoCtx(ctx, "Route deleted", logger.RouteID(routeID))
	return nil
}

// InsertWaypoint adds a waypoint after the given sequence, or at the end when none is given.
// An AfterSequence of -1 inserts before the first waypoint.
func (uc *RouteUC) InsertWaypoint(ctx context.Context, routeID uuid.UUID, req models.WaypointRequest) (*models.Waypoint, *models.TriggerResult, error) {
	rt, err := uc.editableRoute(ctx, routeID)
	if err != nil {
		return nil, nil, err
	}
	waypoints, err := uc.routeRepo.ListWaypoints(ctx, routeID)
	if err != nil {
		return nil, nil, err
	}

	pos := len(waypoints)
	if req.AfterSequence != nil {
		after := *req.AfterSequence
		if after < -1 || after >= len(waypoints) {
			return nil, nil, fmt.Errorf("%w: no waypoint at sequence %d", route.ErrWaypointNotFound, after)
		}
		pos = after + 1
	}

	wp := newWaypoint(routeID, pos, req, uc.now())
	updated := renumber(insertAt(waypoints, pos, wp))

	result, err := uc.applyEdit(ctx, rt, updated)
	if err != nil {
		return nil, nil, err
	}
	return &updated[pos], result, nil
}

// MoveWaypoint changes the coordinates of a waypoint and recalculates what it touches
func (uc *RouteUC) MoveWaypoint(ctx context.Context, routeID, waypointID uuid.UUID, req models.MoveWaypointRequest) (*models.Waypoint, *models.TriggerResult, error) {
	rt, err := uc.editableRoute(ctx, routeID)
	if err != nil {
		return nil, nil, err
	}
	waypoints, err := uc.routeRepo.ListWaypoints(ctx, routeID)
	if err != nil {
		return nil, nil, err
	}

	idx := indexOf(waypoints, waypointID)
	if idx < 0 {
		return nil, nil, route.ErrWaypointNotFound
	}

	updated := renumber(waypoints)
	updated[idx].Latitude = req.Latitude
	updated[idx].Longitude = req.Longitude
	updated[idx].UpdatedAt = uc.now()

	result, err := uc.applyEdit(ctx, rt, updated)
	if err != nil {
		return nil, nil, err
	}
	return &updated[idx], result, nil
}

// DeleteWaypoint removes a waypoint and bridges its neighbours
func (uc *RouteUC) DeleteWaypoint(ctx context.Context, routeID, waypointID uuid.UUID) (*models.TriggerResult, error) {
	if _, err := uc.editableRoute(ctx, routeID); err != nil {
		return nil, err
	}
	waypoints, err := uc.routeRepo.ListWaypoints(ctx, routeID)
	if err != nil {
		return nil, err
	}

	idx := indexOf(waypoints, waypointID)
	if idx < 0 {
		return nil, route.ErrWaypointNotFound
	}

	job := models.CalculationJob{RouteID: routeID, Reason: models.ReasonWaypointRemoved}
	if uc.asyncEnabled(nil) && len(waypoints) > 2 {
		startedAt, err := uc.claim(ctx, routeID)
		if err != nil {
			return nil, err
		}
		// remove now, the worker only has the gap left to compute
		if _, err := uc.removeWaypoint(ctx, routeID, waypoints, idx); err != nil {
			return nil, uc.failCalculation(ctx, routeID, err)
		}
		result, err := uc.dispatch(ctx, job, startedAt, true, nil)
		return settleEdit(ctx, routeID, result, err), nil
	}

	removedSequence := waypoints[idx].Sequence
	result, err := uc.trigger(ctx, job, false, func(ctx context.Context) error {
		return uc.RecalculateAfterWaypointRemoval(ctx, routeID, removedSequence)
	})
	// the waypoint is gone once the backend is asked for the bridging segment
	var backendErr *route.BackendError
	if errors.As(err, &backendErr) {
		return settleEdit(ctx, routeID, result, err), nil
	}
	return result, err
}

// TriggerCalculation starts a full calculation of a route
func (uc *RouteUC) TriggerCalculation(ctx context.Context, routeID uuid.UUID, req models.CalculateRequest) (*models.TriggerResult, error) {
	if _, err := uc.routeRepo.GetRoute(ctx, routeID); err != nil {
		return nil, err
	}
	waypoints, err := uc.routeRepo.ListWaypoints(ctx, routeID)
	if err != nil {
		return nil, err
	}
	if len(waypoints) < 2 {
		return nil, route.ErrInsufficientWaypoints
	}

	job := models.CalculationJob{RouteID: routeID, Force: req.Force, Reason: models.ReasonFull}
	return uc.trigger(ctx, job, uc.asyncEnabled(req.Async), func(ctx context.Context) error {
		return uc.CalculateFull(ctx, routeID, req.Force)
	})
}

// applyEdit stores an edited waypoint list, drops the segments it invalidated and
// recalculates the rest of the route. A route with two or more waypoints is claimed
// before anything is written, so an edit never lands under a running calculation.
func (uc *RouteUC) applyEdit(ctx context.Context, rt *models.Route, updated []models.Waypoint) (*models.TriggerResult, error) {
	if len(updated) < 2 {
		if err := uc.storeEdit(ctx, rt, updated); err != nil {
			return nil, err
		}
		return &models.TriggerResult{Status: rt.CalculationStatus}, nil
	}

	startedAt, err := uc.claim(ctx, rt.ID)
	if err != nil {
		return nil, err
	}
	if err := uc.storeEdit(ctx, rt, updated); err != nil {
		return nil, uc.failCalculation(ctx, rt.ID, err)
	}

	job := models.CalculationJob{RouteID: rt.ID, Reason: models.ReasonFull}
	result, err := uc.dispatch(ctx, job, startedAt, uc.asyncEnabled(nil), func(ctx context.Context) error {
		return uc.CalculateFull(ctx, rt.ID, false)
	})
	return settleEdit(ctx, rt.ID, result, err), nil
}

func (uc *RouteUC) storeEdit(ctx context.Context, rt *models.Route, updated []models.Waypoint) error {
	segments, err := uc.routeRepo.ListSegments(ctx, rt.ID)
	if err != nil {
		return err
	}
	_, stale := pruneInvalidSegments(segments, updated, uc.profileOf(rt))

	err = uc.routeRepo.Atomic(ctx, func(store route.SegmentStore) error {
		if err := store.DeleteSegments(ctx, segmentIDs(stale)); err != nil {
			return err
		}
		if err := store.SaveWaypoints(ctx, updated); err != nil {
			return err
		}
		return store.Renumber(ctx, rt.ID)
	})
	if err != nil {
		return fmt.Errorf("failed to apply waypoint edit: %w", err)
	}

	logger.InfoCtx(ctx, "Waypoints updated",
		logger.RouteID(rt.ID),
		logger.Int("waypoints", len(updated)),
		logger.Int("stale_segments", len(stale)))
	return nil
}

// settleEdit reports a calculation that failed after an edit was committed through the
// returned status instead of failing the edit
func settleEdit(ctx context.Context, routeID uuid.UUID, result *models.TriggerResult, err error) *models.TriggerResult {
	if err == nil {
		return result
	}
	logger.WarnCtx(ctx, "Recalculation after edit did not complete",
		logger.RouteID(routeID),
		logger.Err(err))
	if result == nil {
		result = &models.TriggerResult{Status: models.CalculationError}
	}
	return result
}

// trigger moves the route to calculating, then either enqueues job or runs the calculation
// in place. A route that is already calculating is left alone.
func (uc *RouteUC) trigger(ctx context.Context, job models.CalculationJob, async bool, run func(context.Context) error) (*models.TriggerResult, error) {
	startedAt, err := uc.claim(ctx, job.RouteID)
	if errors.Is(err, route.ErrCalculationInProgress) {
		return &models.TriggerResult{Status: models.CalculationInProgress, Async: async}, err
	}
	if err != nil {
		return nil, err
	}
	return uc.dispatch(ctx, job, startedAt, async, run)
}

// claim moves the route to calculating and returns the start time that identifies
// this trigger. It fails with ErrCalculationInProgress when another request got there first.
func (uc *RouteUC) claim(ctx context.Context, routeID uuid.UUID) (time.Time, error) {
	startedAt := uc.now().UTC().Truncate(time.Microsecond)
	started, err := uc.routeRepo.StartCalculation(ctx, routeID, startedAt)
	if err != nil {
		return time.Time{}, err
	}
	if !started {
		return time.Time{}, route.ErrCalculationInProgress
	}
	return startedAt, nil
}

// dispatch enqueues job or runs the calculation in place for a route claimed at startedAt
func (uc *RouteUC) dispatch(ctx context.Context, job models.CalculationJob, startedAt time.Time, async bool, run func(context.Context) error) (*models.TriggerResult, error) {
	if async {
		job.RequestedAt = startedAt
		if err := uc.jobGW.PublishCalculationJob(ctx, job); err != nil {
			return nil, uc.failCalculation(ctx, job.RouteID, err)
		}
		logger.InfoCtx(ctx, "Route calculation dispatched",
			logger.RouteID(job.RouteID),
			logger.String("reason", string(job.Reason)))
		return &models.TriggerResult{Status: models.CalculationInProgress, Dispatched: true, Async: true}, nil
	}

	if err := run(ctx); err != nil {
		// validation failures return before the engine records anything
		if errors.Is(err, route.ErrInsufficientWaypoints) || errors.Is(err, route.ErrWaypointNotFound) {
			uc.recordFailure(ctx, job.RouteID, models.CalculationError, err)
		}
		return &models.TriggerResult{Status: models.CalculationError, Dispatched: true}, err
	}
	return &models.TriggerResult{Status: models.CalculationCompleted, Dispatched: true}, nil
}

// editableRoute loads a route, refusing edits while a calculation is in flight
func (uc *RouteUC) editableRoute(ctx context.Context, routeID uuid.UUID) (*models.Route, error) {
	rt, err := uc.routeRepo.GetRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}
	if rt.CalculationStatus == models.CalculationInProgress {
		return nil, route.ErrCalculationInProgress
	}
	return rt, nil
}

func (uc *RouteUC) asyncEnabled(override *bool) bool {
	if uc.jobGW == nil {
		return false
	}
	if override != nil {
		return *override
	}
	return uc.cfg.Jobs.AsyncCalculation
}

func newWaypoint(routeID uuid.UUID, sequence int, req models.WaypointRequest, now time.Time) models.Waypoint {
	return models.Waypoint{
		ID:          uuid.New(),
		RouteID:     routeID,
		Sequence:    sequence,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func indexOf(waypoints []models.Waypoint, id uuid.UUID) int {
	for i, wp := range waypoints {
		if wp.ID == id {
			return i
		}
	}
	return -1
}
