package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/routecalc/internal/pkg/logger"
	"github.com/piresc/routecalc/internal/pkg/models"
	nrpkg "github.com/piresc/routecalc/internal/pkg/newrelic"
	"github.com/piresc/routecalc/services/route"
)

// CalculateFull computes every segment of a route and stores the totals.
// Unless force is set, segments that still join adjacent waypoints at their current
// coordinates and have not expired are reused as they are.
// The new segment set is persisted only once every pair succeeded.
func (uc *RouteUC) CalculateFull(ctx context.Context, routeID uuid.UUID, force bool) error {
	rt, err := uc.routeRepo.GetRoute(ctx, routeID)
	if err != nil {
		return err
	}

	waypoints, err := uc.routeRepo.ListWaypoints(ctx, routeID)
	if err != nil {
		return uc.failCalculation(ctx, routeID, err)
	}
	if len(waypoints) < 2 {
		return route.ErrInsufficientWaypoints
	}

	profile := uc.profileOf(rt)
	existing, err := uc.routeRepo.ListSegments(ctx, routeID)
	if err != nil {
		return uc.failCalculation(ctx, routeID, err)
	}

	reusable := make(map[uuid.UUID]models.Segment)
	if !force {
		kept, _ := pruneInvalidSegments(existing, waypoints, profile)
		now := uc.now()
		for _, seg := range kept {
			if !seg.Expired(now) {
				reusable[seg.StartWaypointID] = seg
			}
		}
	}

	// nothing survives, start from a clean slate
	if len(reusable) == 0 && len(existing) > 0 {
		if err := uc.routeRepo.ReplaceAll(ctx, routeID, nil); err != nil {
			return uc.failCalculation(ctx, routeID, err)
		}
	}

	logger.InfoCtx(ctx, "Calculating route",
		logger.RouteID(routeID),
		logger.Int("waypoints", len(waypoints)),
		logger.Int("reusable_segments", len(reusable)),
		logger.Bool("force", force))

	started := time.Now()
	segments := make([]models.Segment, 0, len(waypoints)-1)
	for i := 0; i < len(waypoints)-1; i++ {
		if seg, ok := reusable[waypoints[i].ID]; ok {
			seg.Sequence = i
			segments = append(segments, seg)
			continue
		}

		seg, err := uc.resolveSegment(ctx, routeID, i, waypoints[i], waypoints[i+1], profile)
		if err != nil {
			return uc.failCalculation(ctx, routeID, err)
		}
		segments = append(segments, *seg)
	}

	if err := uc.routeRepo.ReplaceAll(ctx, routeID, segments); err != nil {
		return uc.failCalculation(ctx, routeID, err)
	}

	totals := sumSegments(segments)
	if err := uc.routeRepo.SaveCalculationResult(ctx, routeID, totals, uc.now()); err != nil {
		return uc.failCalculation(ctx, routeID, err)
	}

	logger.InfoCtx(ctx, "Route calculated",
		logger.RouteID(routeID),
		logger.Int("segments", len(segments)),
		logger.Float64("total_distance", totals.Distance),
		logger.Float64("total_duration", totals.Duration),
		logger.Duration("elapsed", time.Since(started)))
	return nil
}

// RecalculateAfterWaypointRemoval removes the waypoint at removedSequence and bridges the gap
// it leaves. Segments not touching the removed waypoint are kept; only the segment joining
// its two neighbours is computed.
func (uc *RouteUC) RecalculateAfterWaypointRemoval(ctx context.Context, routeID uuid.UUID, removedSequence int) error {
	rt, err := uc.routeRepo.GetRoute(ctx, routeID)
	if err != nil {
		return err
	}

	waypoints, err := uc.routeRepo.ListWaypoints(ctx, routeID)
	if err != nil {
		return uc.failCalculation(ctx, routeID, err)
	}

	idx := -1
	for i, wp := range waypoints {
		if wp.Sequence == removedSequence {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: no waypoint at sequence %d", route.ErrWaypointNotFound, removedSequence)
	}

	remaining, err := uc.removeWaypoint(ctx, routeID, waypoints, idx)
	if err != nil {
		return uc.failCalculation(ctx, routeID, err)
	}

	// an interior waypoint leaves its neighbours unconnected
	if idx > 0 && idx < len(remaining) {
		seg, err := uc.resolveSegment(ctx, routeID, idx-1, remaining[idx-1], remaining[idx], uc.profileOf(rt))
		if err != nil {
			return uc.failCalculation(ctx, routeID, err)
		}
		if err := uc.routeRepo.InsertSegment(ctx, seg); err != nil {
			return uc.failCalculation(ctx, routeID, err)
		}
	}

	totals, err := uc.routeRepo.SumTotals(ctx, routeID)
	if err != nil {
		return uc.failCalculation(ctx, routeID, err)
	}
	if err := uc.routeRepo.SaveCalculationResult(ctx, routeID, totals, uc.now()); err != nil {
		return uc.failCalculation(ctx, routeID, err)
	}

	logger.InfoCtx(ctx, "Route recalculated after waypoint removal",
		logger.RouteID(routeID),
		logger.Int("removed_sequence", removedSequence),
		logger.Float64("total_distance", totals.Distance))
	return nil
}

// removeWaypoint drops waypoints[idx] together with the segments touching it and
// closes the sequence gap. It returns the remaining waypoints.
func (uc *RouteUC) removeWaypoint(ctx context.Context, routeID uuid.UUID, waypoints []models.Waypoint, idx int) ([]models.Waypoint, error) {
	removed := waypoints[idx]
	remaining := renumber(removeAt(waypoints, idx))

	err := uc.routeRepo.Atomic(ctx, func(store route.SegmentStore) error {
		if err := store.DeleteRange(ctx, routeID, removed.Sequence-1, removed.Sequence); err != nil {
			return err
		}
		if err := store.DeleteWaypoint(ctx, routeID, removed.ID); err != nil {
			return err
		}
		if err := store.SaveWaypoints(ctx, remaining[idx:]); err != nil {
			return err
		}
		return store.Renumber(ctx, routeID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to remove waypoint %s: %w", removed.ID, err)
	}
	return remaining, nil
}

// resolveSegment returns the path between two waypoints, from the cache when possible.
// Cache failures degrade to a backend call.
func (uc *RouteUC) resolveSegment(ctx context.Context, routeID uuid.UUID, sequence int, start, end models.Waypoint, profile string) (*models.Segment, error) {
	from, to := start.Coordinate(), end.Coordinate()
	key := models.SegmentCacheKey(from, to, profile)
	now := uc.now()

	seg := &models.Segment{
		ID:              uuid.New(),
		RouteID:         routeID,
		Sequence:        sequence,
		StartWaypointID: start.ID,
		EndWaypointID:   end.ID,
		Profile:         profile,
		CacheKey:        key,
		CreatedAt:       now,
	}

	entry, err := uc.segmentCache.Get(ctx, key)
	if err != nil {
		logger.WarnCtx(ctx, "Segment cache read failed, calling routing backend",
			logger.RouteID(routeID),
			logger.String("cache_key", key),
			logger.Err(err))
	}
	if entry != nil {
		seg.Distance = entry.Distance
		seg.Duration = entry.Duration
		seg.Geometry = entry.Geometry
		seg.ExpiresAt = entry.ExpiresAt
		return seg, nil
	}

	var result *models.PathResult
	err = nrpkg.WithSegment(ctx, "routing."+uc.backend.Name(), func() error {
		var callErr error
		result, callErr = uc.backend.ComputePath(ctx, from, to, profile)
		return callErr
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to compute segment",
			logger.RouteID(routeID),
			logger.Int("sequence", sequence),
			logger.String("backend", uc.backend.Name()),
			logger.Err(err))
		return nil, err
	}

	ttl := uc.cacheTTL()
	seg.Distance = result.Distance
	seg.Duration = result.Duration
	seg.Geometry = result.Geometry
	seg.ExpiresAt = now.Add(ttl)

	if err := uc.segmentCache.Put(ctx, key, models.CacheEntry{
		Distance:  result.Distance,
		Duration:  result.Duration,
		Geometry:  result.Geometry,
		Profile:   profile,
		CreatedAt: now,
		ExpiresAt: seg.ExpiresAt,
		Origin:    from,
	}, ttl); err != nil {
		logger.WarnCtx(ctx, "Failed to store segment in cache",
			logger.RouteID(routeID),
			logger.String("cache_key", key),
			logger.Err(err))
	}
	return seg, nil
}

// failCalculation records err as the calculation error of the route and returns it
func (uc *RouteUC) failCalculation(ctx context.Context, routeID uuid.UUID, err error) error {
	uc.recordFailure(ctx, routeID, models.CalculationError, err)
	return err
}

func (uc *RouteUC) recordFailure(ctx context.Context, routeID uuid.UUID, status models.CalculationStatus, cause error) {
	// the status must land even when the caller's context is done
	ctx = context.WithoutCancel(ctx)
	if err := uc.routeRepo.SaveCalculationError(ctx, routeID, status, cause.Error(), uc.now()); err != nil {
		logger.ErrorCtx(ctx, "Failed to record calculation error",
			logger.RouteID(routeID),
			logger.String("status", string(status)),
			logger.Err(err))
	}
}

// EstimateCalculationTime returns the expected duration in seconds of a calculation
// over n waypoints. Remote backends are slower per segment than a local one.
func (uc *RouteUC) EstimateCalculationTime(n int) float64 {
	pairs := float64(n - 1)
	if uc.backend.Kind() == models.BackendExternal {
		return math.Max(5, 2*pairs)
	}
	return math.Max(2, pairs)
}
