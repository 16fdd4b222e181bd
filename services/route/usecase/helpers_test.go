package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/routecalc/internal/pkg/models"
	"github.com/piresc/routecalc/services/route"
	"github.com/piresc/routecalc/services/route/mocks"
)

var (
	saoPaulo = models.Coordinate{Latitude: -23.5505, Longitude: -46.6333}
	campinas = models.Coordinate{Latitude: -22.9099, Longitude: -47.0626}
	rio      = models.Coordinate{Latitude: -22.9068, Longitude: -43.1729}
	santos   = models.Coordinate{Latitude: -23.9608, Longitude: -46.3336}
)

type fixture struct {
	repo    *mocks.MockRouteRepo
	store   *mocks.MockSegmentStore
	backend *mocks.MockRoutingBackend
	jobGW   *mocks.MockJobGW
	uc      *RouteUC
	now     time.Time
}

func newFixture(t *testing.T, segmentCache route.SegmentCache, kind models.BackendKind) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		repo:    mocks.NewMockRouteRepo(ctrl),
		store:   mocks.NewMockSegmentStore(ctrl),
		backend: mocks.NewMockRoutingBackend(ctrl),
		jobGW:   mocks.NewMockJobGW(ctrl),
		now:     time.Now().UTC().Truncate(time.Second),
	}
	f.backend.EXPECT().Name().Return("osrm").AnyTimes()
	f.backend.EXPECT().Kind().Return(kind).AnyTimes()

	cfg := &models.Config{
		Routing: models.RoutingConfig{DefaultProfile: "driving-car"},
		Cache:   models.CacheConfig{Enabled: true, TTLHours: 24},
		Jobs:    models.JobsConfig{LockTTL: 60},
	}
	f.uc = NewRouteUC(cfg, f.repo, segmentCache, f.backend, f.jobGW)
	f.uc.now = func() time.Time { return f.now }
	return f
}

// expectAtomic runs the grouped statements against the segment store mock
func (f *fixture) expectAtomic() {
	f.repo.EXPECT().Atomic(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(route.SegmentStore) error) error {
			return fn(f.store)
		})
}

func testRoute(status models.CalculationStatus) *models.Route {
	return &models.Route{
		ID:                uuid.New(),
		Name:              "Test route",
		Profile:           "driving-car",
		CalculationStatus: status,
	}
}

func testWaypoints(routeID uuid.UUID, coords ...models.Coordinate) []models.Waypoint {
	waypoints := make([]models.Waypoint, len(coords))
	for i, c := range coords {
		waypoints[i] = models.Waypoint{
			ID:        uuid.New(),
			RouteID:   routeID,
			Sequence:  i,
			Latitude:  c.Latitude,
			Longitude: c.Longitude,
		}
	}
	return waypoints
}

func testSegment(routeID uuid.UUID, start, end models.Waypoint, expiresAt time.Time) models.Segment {
	return models.Segment{
		ID:              uuid.New(),
		RouteID:         routeID,
		Sequence:        start.Sequence,
		StartWaypointID: start.ID,
		EndWaypointID:   end.ID,
		Distance:        1000,
		Duration:        100,
		Profile:         "driving-car",
		CacheKey:        models.SegmentCacheKey(start.Coordinate(), end.Coordinate(), "driving-car"),
		ExpiresAt:       expiresAt,
	}
}

func path(distance, duration float64) *models.PathResult {
	return &models.PathResult{Distance: distance, Duration: duration, Geometry: "geom"}
}
