package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/routecalc/internal/pkg/database"
	"github.com/piresc/routecalc/internal/pkg/models"
	"github.com/piresc/routecalc/services/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func routeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "owner_id", "profile", "total_distance", "total_duration", "last_calculated_at",
		"calculation_status", "calculation_error", "calculation_started_at", "calculation_completed_at",
		"created_at", "updated_at",
	})
}

func TestRouteRepo_GetRoute(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRouteRepository(&models.Config{}, db, nil)
	ctx := context.Background()

	routeID := uuid.New()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM routes WHERE id = $1")).
			WithArgs(routeID).
			WillReturnRows(routeRows().AddRow(
				routeID.String(), "Delivery", "owner-1", "driving-car", 430000.0, 18000.0, now,
				"completed", nil, now, now, now, now,
			))

		rt, err := repo.GetRoute(ctx, routeID)

		require.NoError(t, err)
		assert.Equal(t, routeID, rt.ID)
		assert.Equal(t, models.CalculationCompleted, rt.CalculationStatus)
		assert.Equal(t, 430000.0, rt.TotalDistance)
		assert.Nil(t, rt.CalculationError)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM routes WHERE id = $1")).
			WithArgs(routeID).
			WillReturnError(sql.ErrNoRows)

		rt, err := repo.GetRoute(ctx, routeID)

		assert.Nil(t, rt)
		assert.ErrorIs(t, err, route.ErrRouteNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouteRepo_CreateRoute(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRouteRepository(&models.Config{}, db, nil)

	now := time.Now()
	rt := &models.Route{
		ID: uuid.New(), Name: "Delivery", Profile: models.DefaultProfile,
		CalculationStatus: models.CalculationNotStarted, CreatedAt: now, UpdatedAt: now,
	}
	waypoints := []models.Waypoint{
		{ID: uuid.New(), RouteID: rt.ID, Sequence: 0, Latitude: -23.5505, Longitude: -46.6333, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New(), RouteID: rt.ID, Sequence: 1, Latitude: -22.9068, Longitude: -43.1729, CreatedAt: now, UpdatedAt: now},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO routes")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO route_waypoints")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO route_waypoints")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreateRoute(context.Background(), rt, waypoints)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouteRepo_CreateRoute_WaypointFailureRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRouteRepository(&models.Config{}, db, nil)

	rt := &models.Route{ID: uuid.New(), Name: "Delivery"}
	waypoints := []models.Waypoint{{ID: uuid.New(), RouteID: rt.ID}}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO routes")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO route_waypoints")).WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	err := repo.CreateRoute(context.Background(), rt, waypoints)

	assert.ErrorContains(t, err, "failed to save waypoint")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouteRepo_StartCalculation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRouteRepository(&models.Config{}, db, nil)
	routeID := uuid.New()
	startedAt := time.Now()

	tests := []struct {
		name     string
		affected int64
		expected bool
	}{
		{name: "transitions into calculating", affected: 1, expected: true},
		{name: "no-op while calculating", affected: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock.ExpectExec(regexp.QuoteMeta("WHERE id = $1 AND calculation_status <> $2")).
				WithArgs(routeID, models.CalculationInProgress, startedAt).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			started, err := repo.StartCalculation(context.Background(), routeID, startedAt)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, started)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouteRepo_SaveCalculationResult(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRouteRepository(&models.Config{}, db, nil)
	routeID := uuid.New()
	at := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("SET total_distance = $2")).
		WithArgs(routeID, 430000.0, 18000.0, at, models.CalculationCompleted).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("SET total_distance = $2")).
		WithArgs(routeID, 1.0, 2.0, at, models.CalculationCompleted).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SaveCalculationResult(context.Background(), routeID, models.RouteTotals{Distance: 430000, Duration: 18000}, at)
	assert.NoError(t, err)

	err = repo.SaveCalculationResult(context.Background(), routeID, models.RouteTotals{Distance: 1, Duration: 2}, at)
	assert.ErrorIs(t, err, route.ErrRouteNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouteRepo_SaveCalculationError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRouteRepository(&models.Config{}, db, nil)
	routeID := uuid.New()
	at := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("SET calculation_status = $2,")).
		WithArgs(routeID, models.CalculationError, "routing backend unreachable (osrm)", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveCalculationError(context.Background(), routeID, models.CalculationError, "routing backend unreachable (osrm)", at)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouteRepo_DeleteRoute(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRouteRepository(&models.Config{}, db, nil)
	routeID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM routes WHERE id = $1")).
		WithArgs(routeID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM routes WHERE id = $1")).
		WithArgs(routeID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteRoute(context.Background(), routeID))
	assert.ErrorIs(t, repo.DeleteRoute(context.Background(), routeID), route.ErrRouteNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouteRepo_ListRoutesByOwner(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRouteRepository(&models.Config{}, db, nil)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM routes WHERE owner_id = $1 ORDER BY created_at DESC")).
		WithArgs("owner-1").
		WillReturnRows(routeRows().
			AddRow(uuid.NewString(), "B", "owner-1", "driving-car", 0.0, 0.0, nil, "not_started", nil, nil, nil, now, now).
			AddRow(uuid.NewString(), "A", "owner-1", "driving-car", 0.0, 0.0, nil, "error", "boom", now, now, now, now))

	routes, err := repo.ListRoutesByOwner(context.Background(), "owner-1")

	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.Equal(t, "B", routes[0].Name)
	require.NotNil(t, routes[1].CalculationError)
	assert.Equal(t, "boom", *routes[1].CalculationError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouteRepo_CalculationLock(t *testing.T) {
	mr := miniredis.RunT(t)
	redisClient := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	db, _ := setupMockDB(t)
	ctx := context.Background()
	routeID := uuid.New()

	workerA := NewRouteRepository(&models.Config{}, db, redisClient)
	workerB := NewRouteRepository(&models.Config{}, db, redisClient)

	acquired, err := workerA.AcquireCalculationLock(ctx, routeID, time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)

	acquired, err = workerB.AcquireCalculationLock(ctx, routeID, time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired, "second worker must not take a held lock")

	// only the holder can release it
	require.NoError(t, workerB.ReleaseCalculationLock(ctx, routeID))
	assert.True(t, mr.Exists("route:calc:lock:"+routeID.String()))

	require.NoError(t, workerA.ReleaseCalculationLock(ctx, routeID))
	assert.False(t, mr.Exists("route:calc:lock:"+routeID.String()))

	acquired, err = workerB.AcquireCalculationLock(ctx, routeID, time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)

	// the lock expires on its own
	mr.FastForward(2 * time.Minute)
	acquired, err = workerA.AcquireCalculationLock(ctx, routeID, time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestRouteRepo_CalculationLock_WithoutRedis(t *testing.T) {
	db, _ := setupMockDB(t)
	repo := NewRouteRepository(&models.Config{}, db, nil)

	acquired, err := repo.AcquireCalculationLock(context.Background(), uuid.New(), time.Minute)

	assert.NoError(t, err)
	assert.True(t, acquired)
	assert.NoError(t, repo.ReleaseCalculationLock(context.Background(), uuid.New()))
}
