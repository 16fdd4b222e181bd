package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/routecalc/internal/pkg/models"
	"github.com/piresc/routecalc/services/route"
	segmentcache "github.com/piresc/routecalc/services/route/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateFull_StoresOneSegmentPerPair(t *testing.T) {
	// Arrange
	f := newFixture(t, segmentcache.NoopCache{}, models.BackendLocal)
	rt := testRoute(models.CalculationInProgress)
	waypoints := testWaypoints(rt.ID, saoPaulo, campinas, santos, rio)

	f.repo.EXPECT().GetRoute(gomock.Any(), rt.ID).Return(rt, nil)
	f.repo.EXPECT().ListWaypoints(gomock.Any(), rt.ID).Return(waypoints, nil)
	f.repo.EXPECT().ListSegments(gomock.Any(), rt.ID).Return(nil, nil)
	gomock.InOrder(
		f.backend.EXPECT().ComputePath(gomock.Any(), saoPaulo, campinas, "driving-car").Return(path(100, 10), nil),
		f.backend.EXPECT().ComputePath(gomock.Any(), campinas, santos, "driving-car").Return(path(200, 20), nil),
		f.backend.EXPECT().ComputePath(gomock.Any(), santos, rio, "driving-car").Return(path(300, 30), nil),
	)

	var saved []models.Segment
	f.repo.EXPECT().ReplaceAll(gomock.Any(), rt.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, segments []models.Segment) error {
			saved = segments
			return nil
		})
	f.repo.EXPECT().SaveCalculationResult(gomock.Any(), rt.ID, models.RouteTotals{Distance: 600, Duration: 60}, f.now).Return(nil)

	// Act
	err := f.uc.CalculateFull(context.Background(), rt.ID, false)

	// Assert
	require.NoError(t, err)
	require.Len(t, saved, len(waypoints)-1)
	for i, seg := range saved {
		assert.Equal(t, i, seg.Sequence)
		assert.Equal(t, waypoints[i].ID, seg.StartWaypointID)
		assert.Equal(t, waypoints[i+1].ID, seg.EndWaypointID)
		assert.Equal(t, models.SegmentCacheKey(waypoints[i].Coordinate(), waypoints[i+1].Coordinate(), "driving-car"), seg.CacheKey)
	}
}

func TestCalculateFull_SaoPauloToRio(t *testing.T) {
	// Arrange
	f := newFixture(t, segmentcache.NewMemoryCache(), models.BackendExternal)
	rt := testRoute(models.CalculationInProgress)
	waypoints := testWaypoints(rt.ID, saoPaulo, rio)

	f.repo.EXPECT().GetRoute(gomock.Any(), rt.ID).Return(rt, nil)
	f.repo.EXPECT().ListWaypoints(gomock.Any(), rt.ID).Return(waypoints, nil)
	f.repo.EXPECT().ListSegments(gomock.Any(), rt.ID).Return(nil, nil)
	f.backend.EXPECT().ComputePath(gomock.Any(), saoPaulo, rio, "driving-car").Return(path(430000, 18000), nil)

	var saved []models.Segment
	f.repo.EXPECT().ReplaceAll(gomock.Any(), rt.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, segments []models.Segment) error {
			saved = segments
			return nil
		})
	f.repo.EXPECT().SaveCalculationResult(gomock.Any(), rt.ID, models.RouteTotals{Distance: 430000, Duration: 18000}, f.now).Return(nil)

	// Act
	err := f.uc.CalculateFull(context.Background(), rt.ID, false)

	// Assert
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, 430000.0, saved[0].Distance)
	assert.Equal(t, 18000.0, saved[0].Duration)
	assert.Equal(t, "-23.550500,-46.633300:-22.906800,-43.172900:driving-car", saved[0].CacheKey)
	assert.True(t, saved[0].ExpiresAt.Equal(f.now.Add(24*time.Hour)))
}

func TestCalculateFull_CacheMakesBackendCallOnce(t *testing.T) {
	// Arrange
	f := newFixture(t, segmentcache.NewMemoryCache(), models.BackendLocal)
	rt := testRoute(models.CalculationInProgress)
	waypoints := testWaypoints(rt.ID, saoPaulo, rio)

	f.repo.EXPECT().GetRoute(gomock.Any(), rt.ID).Return(rt, nil).Times(2)
	f.repo.EXPECT().ListWaypoints(gomock.Any(), rt.ID).Return(waypoints, nil).Times(2)
	f.repo.EXPECT().ListSegments(gomock.Any(), rt.ID).Return(nil, nil).Times(2)
	f.backend.EXPECT().ComputePath(gomock.Any(), saoPaulo, rio, "driving-car").Return(path(430000, 18000), nil).Times(1)

	var runs [][]models.Segment
	f.repo.EXPECT().ReplaceAll(gomock.Any(), rt.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, segments []models.Segment) error {
			runs = append(runs, segments)
			return nil
		}).Times(2)
	f.repo.EXPECT().SaveCalculationResult(gomock.Any(), rt.ID, models.RouteTotals{Distance: 430000, Duration: 18000}, f.now).Return(nil).Times(2)

	// Act
	require.NoError(t, f.uc.CalculateFull(context.Background(), rt.ID, true))
	require.NoError(t, f.uc.CalculateFull(context.Background(), rt.ID, true))

	// Assert
	require.Len(t, runs, 2)
	assert.Equal(t, runs[0][0].Distance, runs[1][0].Distance)
	assert.Equal(t, runs[0][0].Geometry, runs[1][0].Geometry)
	assert.Equal(t, runs[0][0].CacheKey, runs[1][0].CacheKey)
}

func TestCalculateFull_ReusesValidSegments(t *testing.T) {
	// Arrange
	f := newFixture(t, segmentcache.NoopCache{}, models.BackendLocal)
	rt := testRoute(models.CalculationInProgress)
	waypoints := testWaypoints(rt.ID, saoPaulo, campinas, rio)
	kept := testSegment(rt.ID, waypoints[0], waypoints[1], f.now.Add(time.Hour))

	f.repo.EXPECT().GetRoute(gomock.Any(), rt.ID).Return(rt, nil)
	f.repo.EXPECT().ListWaypoints(gomock.Any(), rt.ID).Return(waypoints, nil)
	f.repo.EXPECT().ListSegments(gomock.Any(), rt.ID).Return([]models.Segment{kept}, nil)
	f.backend.EXPECT().ComputePath(gomock.Any(), campinas, rio, "driving-car").Return(path(500, 50), nil)

	var saved []models.Segment
	f.repo.EXPECT().ReplaceAll(gomock.Any(), rt.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, segments []models.Segment) error {
			saved = segments
			return nil
		})
	f.repo.EXPECT().SaveCalculationResult(gomock.Any(), rt.ID, models.RouteTotals{Distance: 1500, Duration: 150}, f.now).Return(nil)

	// Act
	err := f.uc.CalculateFull(context.Background(), rt.ID, false)

	// Assert
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, kept.ID, saved[0].ID)
}

func TestCalculateFull_ExpiredSegmentIsRecomputed(t *testing.T) {
	// Arrange
	f := newFixture(t, segmentcache.NoopCache{}, models.BackendLocal)
	rt := testRoute(models.CalculationInProgress)
	waypoints := testWaypoints(rt.ID, saoPaulo, rio)
	// expires_at <= now is no longer reusable
	expired := testSegment(rt.ID, waypoints[0], waypoints[1], f.now)

	f.repo.EXPECT().GetRoute(gomock.Any(), rt.ID).Return(rt, nil)
	f.repo.EXPECT().ListWaypoints(gomock.Any(), rt.ID).Return(waypoints, nil)
	f.repo.EXPECT().ListSegments(gomock.Any(), rt.ID).Return([]models.Segment{expired}, nil)
	f.backend.EXPECT().ComputePath(gomock.Any(), saoPaulo, rio, "driving-car").Return(path(430000, 18000), nil)

	gomock.InOrder(
		f.repo.EXPECT().ReplaceAll(gomock.Any(), rt.ID, nil).Return(nil),
		f.repo.EXPECT().ReplaceAll(gomock.Any(), rt.ID, gomock.Len(1)).Return(nil),
	)
	f.repo.EXPECT().SaveCalculationResult(gomock.Any(), rt.ID, models.RouteTotals{Distance: 430000, Duration: 18000}, f.now).Return(nil)

	// Act
	err := f.uc.CalculateFull(context.Background(), rt.ID, false)

	// Assert
	assert.NoError(t, err)
}

func TestCalculateFull_CacheEntryExpiry(t *testing.T) {
	// Arrange
	memory := segmentcache.NewMemoryCache()
	f := newFixture(t, memory, models.BackendLocal)
	rt := testRoute(models.CalculationInProgress)
	waypoints := testWaypoints(rt.ID, saoPaulo, rio)

	key := models.SegmentCacheKey(saoPaulo, rio, "driving-car")
	require.NoError(t, memory.Put(context.Background(), key, models.CacheEntry{
		Distance:  1,
		Duration:  1,
		Profile:   "driving-car",
		CreatedAt: time.Now().Add(-time.Hour),
		ExpiresAt: time.Now().Add(-time.Second),
		Origin:    saoPaulo,
	}, time.Hour))

	f.repo.EXPECT().GetRoute(gomock.Any(), rt.ID).Return(rt, nil)
	f.repo.EXPECT().ListWaypoints(gomock.Any(), rt.ID).Return(waypoints, nil)
	f.repo.EXPECT().ListSegments(gomock.Any(), rt.ID).Return(nil, nil)
	f.backend.EXPECT().ComputePath(gomock.Any(), saoPaulo, rio, "driving-car").Return(path(430000, 18000), nil)
	f.repo.EXPECT().ReplaceAll(gomock.Any(), rt.ID, gomock.Len(1)).Return(nil)
	f.repo.EXPECT().SaveCalculationResult(gomock.Any(), rt.ID, models.RouteTotals{Distance: 430000, Duration: 18000}, f.now).Return(nil)

	// Act
	err := f.uc.CalculateFull(context.Background(), rt.ID, false)

	// Assert
	require.NoError(t, err)
	entry, err := memory.Get(context.Background(), key)
	require.NoError(t, err)
	require.NotNil(t, entry, "fresh result replaces the expired entry")
	assert.Equal(t, 430000.0, entry.Distance)
}

func TestCalculateFull_InsufficientWaypoints(t *testing.T) {
	// Arrange
	f := newFixture(t, segmentcache.NoopCache{}, models.BackendLocal)
	rt := testRoute(models.CalculationCompleted)

	f.repo.EXPECT().GetRoute(gomock.Any(), rt.ID).Return(rt, nil)
	f.repo.EXPECT().ListWaypoints(gomock.Any(), rt.ID).Return(testWaypoints(rt.ID, saoPaulo), nil)

	// Act
	err := f.uc.CalculateFull(context.Background(), rt.ID, false)

	// Assert
	assert.ErrorIs(t, err, route.ErrInsufficientWaypoints)
}

func TestCalculateFull_BackendFailureMidRoute(t *testing.T) {
	// Arrange
	f := newFixture(t, segmentcache.NoopCache{}, models.BackendLocal)
	rt := testRoute(models.CalculationInProgress)
	waypoints := testWaypoints(rt.ID, saoPaulo, campinas, santos, rio)
	backendErr := route.NewBackendError("osrm", route.ErrBackendUnreachable, "connection refused", nil)

	f.repo.EXPECT().GetRoute(gomock.Any(), rt.ID).Return(rt, nil)
	f.repo.EXPECT().ListWaypoints(gomock.Any(), rt.ID).Return(waypoints, nil)
	f.repo.EXPECT().ListSegments(gomock.Any(), rt.ID).Return(nil, nil)
	gomock.InOrder(
		f.backend.EXPECT().ComputePath(gomock.Any(), saoPaulo, campinas, "driving-car").Return(path(100, 10), nil),
		f.backend.EXPECT().ComputePath(gomock.Any(), campinas, santos, "driving-car").Return(nil, backendErr),
	)

	var message string
	f.repo.EXPECT().SaveCalculationError(gomock.Any(), rt.ID, models.CalculationError, gomock.Any(), f.now).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ models.CalculationStatus, msg string, _ time.Time) error {
			message = msg
			return nil
		})

	// Act
	err := f.uc.CalculateFull(context.Background(), rt.ID, false)

	// Assert
	assert.ErrorIs(t, err, route.ErrBackendUnreachable)
	assert.Contains(t, message, "connection refused")
	assert.Contains(t, message, "osrm")
}

func TestRecalculateAfterWaypointRemoval_BridgesNeighbours(t *testing.T) {
	// Arrange
	f := newFixture(t, segmentcache.NoopCache{}, models.BackendLocal)
	rt := testRoute(models.CalculationInProgress)
	waypoints := testWaypoints(rt.ID, saoPaulo, campinas, santos, rio) // A B C D
	a, b, c, d := waypoints[0], waypoints[1], waypoints[2], waypoints[3]

	f.repo.EXPECT().GetRoute(gomock.Any(), rt.ID).Return(rt, nil)
	f.repo.EXPECT().ListWaypoints(gomock.Any(), rt.ID).Return(waypoints, nil)

	f.expectAtomic()
	var shifted []models.Waypoint
	gomock.InOrder(
		f.store.EXPECT().DeleteRange(gomock.Any(), rt.ID, 0, 1).Return(nil),
		f.store.EXPECT().DeleteWaypoint(gomock.Any(), rt.ID, b.ID).Return(nil),
		f.store.EXPECT().SaveWaypoints(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, w []models.Waypoint) error {
				shifted = w
				return nil
			}),
		f.store.EXPECT().Renumber(gomock.Any(), rt.ID).Return(nil),
	)

	f.backend.EXPECT().ComputePath(gomock.Any(), a.Coordinate(), c.Coordinate(), "driving-car").Return(path(700, 70), nil)

	var bridge *models.Segment
	f.repo.EXPECT().InsertSegment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, seg *models.Segment) error {
			bridge = seg
			return nil
		})
	f.repo.EXPECT().SumTotals(gomock.Any(), rt.ID).Return(models.RouteTotals{Distance: 1700, Duration: 170}, nil)
	f.repo.EXPECT().SaveCalculationResult(gomock.Any(), rt.ID, models.RouteTotals{Distance: 1700, Duration: 170}, f.now).Return(nil)

	// Act
	err := f.uc.RecalculateAfterWaypointRemoval(context.Background(), rt.ID, 1)

	// Assert
	require.NoError(t, err)
	require.Len(t, shifted, 2)
	assert.Equal(t, c.ID, shifted[0].ID)
	assert.Equal(t, 1, shifted[0].Sequence)
	assert.Equal(t, d.ID, shifted[1].ID)
	assert.Equal(t, 2, shifted[1].Sequence)

	require.NotNil(t, bridge)
	assert.Equal(t, 0, bridge.Sequence)
	assert.Equal(t, a.ID, bridge.StartWaypointID)
	assert.Equal(t, c.ID, bridge.EndWaypointID)
}

func TestRecalculateAfterWaypointRemoval_Endpoint(t *testing.T) {
	// Arrange
	f := newFixture(t, segmentcache.NoopCache{}, models.BackendLocal)
	rt := testRoute(models.CalculationInProgress)
	waypoints := testWaypoints(rt.ID, saoPaulo, campinas, rio)

	f.repo.EXPECT().GetRoute(gomock.Any(), rt.ID).Return(rt, nil)
	f.repo.EXPECT().ListWaypoints(gomock.Any(), rt.ID).Return(waypoints, nil)
	f.expectAtomic()
	f.store.EXPECT().DeleteRange(gomock.Any(), rt.ID, 1, 2).Return(nil)
	f.store.EXPECT().DeleteWaypoint(gomock.Any(), rt.ID, waypoints[2].ID).Return(nil)
	f.store.EXPECT().SaveWaypoints(gomock.Any(), gomock.Len(0)).Return(nil)
	f.store.EXPECT().Renumber(gomock.Any(), rt.ID).Return(nil)
	f.repo.EXPECT().SumTotals(gomock.Any(), rt.ID).Return(models.RouteTotals{Distance: 100, Duration: 10}, nil)
	f.repo.EXPECT().SaveCalculationResult(gomock.Any(), rt.ID, models.RouteTotals{Distance: 100, Duration: 10}, f.now).Return(nil)

	// Act
	err := f.uc.RecalculateAfterWaypointRemoval(context.Background(), rt.ID, 2)

	// Assert
	assert.NoError(t, err)
}

func TestRecalculateAfterWaypointRemoval_BackendFailure(t *testing.T) {
	// Arrange
	f := newFixture(t, segmentcache.NoopCache{}, models.BackendLocal)
	rt := testRoute(models.CalculationInProgress)
	waypoints := testWaypoints(rt.ID, saoPaulo, campinas, rio)

	f.repo.EXPECT().GetRoute(gomock.Any(), rt.ID).Return(rt, nil)
	f.repo.EXPECT().ListWaypoints(gomock.Any(), rt.ID).Return(waypoints, nil)
	f.expectAtomic()
	f.store.EXPECT().DeleteRange(gomock.Any(), rt.ID, 0, 1).Return(nil)
	f.store.EXPECT().DeleteWaypoint(gomock.Any(), rt.ID, waypoints[1].ID).Return(nil)
	f.store.EXPECT().SaveWaypoints(gomock.Any(), gomock.Len(1)).Return(nil)
	f.store.EXPECT().Renumber(gomock.Any(), rt.ID).Return(nil)
	f.backend.EXPECT().ComputePath(gomock.Any(), saoPaulo, rio, "driving-car").
		Return(nil, route.NewBackendError("osrm", route.ErrBackendBadResponse, "NoRoute", nil))
	f.repo.EXPECT().SaveCalculationError(gomock.Any(), rt.ID, models.CalculationError, gomock.Any(), f.now).Return(nil)

	// Act
	err := f.uc.RecalculateAfterWaypointRemoval(context.Background(), rt.ID, 1)

	// Assert
	assert.ErrorIs(t, err, route.ErrBackendBadResponse)
}

func TestRecalculateAfterWaypointRemoval_UnknownSequence(t *testing.T) {
	f := newFixture(t, segmentcache.NoopCache{}, models.BackendLocal)
	rt := testRoute(models.CalculationInProgress)

	f.repo.EXPECT().GetRoute(gomock.Any(), rt.ID).Return(rt, nil)
	f.repo.EXPECT().ListWaypoints(gomock.Any(), rt.ID).Return(testWaypoints(rt.ID, saoPaulo, rio), nil)

	err := f.uc.RecalculateAfterWaypointRemoval(context.Background(), rt.ID, 5)

	assert.ErrorIs(t, err, route.ErrWaypointNotFound)
}

func TestEstimateCalculationTime(t *testing.T) {
	tests := []struct {
		name      string
		kind      models.BackendKind
		waypoints int
		expected  float64
	}{
		{name: "external floor", kind: models.BackendExternal, waypoints: 2, expected: 5},
		{name: "external scales", kind: models.BackendExternal, waypoints: 11, expected: 20},
		{name: "local floor", kind: models.BackendLocal, waypoints: 2, expected: 2},
		{name: "local scales", kind: models.BackendLocal, waypoints: 11, expected: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, segmentcache.NoopCache{}, tt.kind)
			assert.Equal(t, tt.expected, f.uc.EstimateCalculationTime(tt.waypoints))
		})
	}
}
