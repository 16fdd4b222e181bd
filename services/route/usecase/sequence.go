package usecase

import (
	"github.com/google/uuid"
	"github.com/piresc/routecalc/internal/pkg/models"
)

// renumber returns a copy of waypoints with sequences 0..n-1 in slice order
func renumber(waypoints []models.Waypoint) []models.Waypoint {
	out := make([]models.Waypoint, len(waypoints))
	copy(out, waypoints)
	for i := range out {
		out[i].Sequence = i
	}
	return out
}

func insertAt(waypoints []models.Waypoint, pos int, wp models.Waypoint) []models.Waypoint {
	out := make([]models.Waypoint, 0, len(waypoints)+1)
	out = append(out, waypoints[:pos]...)
	out = append(out, wp)
	return append(out, waypoints[pos:]...)
}

func removeAt(waypoints []models.Waypoint, idx int) []models.Waypoint {
	out := make([]models.Waypoint, 0, len(waypoints)-1)
	out = append(out, waypoints[:idx]...)
	return append(out, waypoints[idx+1:]...)
}

// pruneInvalidSegments splits segments into those that still connect two adjacent
// waypoints at their current coordinates, and stale ones. Kept segments get the
// sequence of their start waypoint.
func pruneInvalidSegments(segments []models.Segment, waypoints []models.Waypoint, profile string) (kept, stale []models.Segment) {
	position := make(map[uuid.UUID]int, len(waypoints))
	for i, wp := range waypoints {
		position[wp.ID] = i
	}

	taken := make(map[uuid.UUID]bool, len(segments))
	for _, seg := range segments {
		i, ok := position[seg.StartWaypointID]
		if !ok || i+1 >= len(waypoints) || waypoints[i+1].ID != seg.EndWaypointID || taken[seg.StartWaypointID] {
			stale = append(stale, seg)
			continue
		}
		if seg.Profile != profile || seg.CacheKey != models.SegmentCacheKey(waypoints[i].Coordinate(), waypoints[i+1].Coordinate(), profile) {
			stale = append(stale, seg)
			continue
		}

		taken[seg.StartWaypointID] = true
		seg.Sequence = i
		kept = append(kept, seg)
	}
	return kept, stale
}

func segmentIDs(segments []models.Segment) []uuid.UUID {
	ids := make([]uuid.UUID, len(segments))
	for i, seg := range segments {
		ids[i] = seg.ID
	}
	return ids
}

func sumSegments(segments []models.Segment) models.RouteTotals {
	var totals models.RouteTotals
	for _, seg := range segments {
		totals.Distance += seg.Distance
		totals.Duration += seg.Duration
	}
	return totals
}
