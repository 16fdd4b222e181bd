package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/routecalc/internal/pkg/constants"
	"github.com/piresc/routecalc/internal/pkg/database"
	"github.com/piresc/routecalc/internal/pkg/models"
	"github.com/piresc/routecalc/services/route"
)

const routeColumns = `id, name, owner_id, profile, total_distance, total_duration, last_calculated_at,
	calculation_status, calculation_error, calculation_started_at, calculation_completed_at,
	created_at, updated_at`

// RouteRepo implements the route repository interface
type RouteRepo struct {
	segmentStore
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
	lockOwner   string
}

// NewRouteRepository creates a new route repository.
// Without a Redis client the calculation lock is always granted.
func NewRouteRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *RouteRepo {
	return &RouteRepo{
		segmentStore: segmentStore{db: db},
		cfg:          cfg,
		db:           db,
		redisClient:  redisClient,
		lockOwner:    uuid.NewString(),
	}
}

// Atomic runs fn inside one transaction
func (r *RouteRepo) Atomic(ctx context.Context, fn func(store route.SegmentStore) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&segmentStore{db: r.db, tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// CreateRoute inserts a route and its initial waypoints
func (r *RouteRepo) CreateRoute(ctx context.Context, rt *models.Route, waypoints []models.Waypoint) error {
	query := `
		INSERT INTO routes (` + routeColumns + `)
		VALUES (:id, :name, :owner_id, :profile, :total_distance, :total_duration, :last_calculated_at,
			:calculation_status, :calculation_error, :calculation_started_at, :calculation_completed_at,
			:created_at, :updated_at)
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.NamedExecContext(ctx, query, rt); err != nil {
		return fmt.Errorf("failed to insert route: %w", err)
	}

	store := &segmentStore{db: r.db, tx: tx}
	if err := store.SaveWaypoints(ctx, waypoints); err != nil {
		return err
	}

	return tx.Commit()
}

// GetRoute retrieves a route by ID
func (r *RouteRepo) GetRoute(ctx context.Context, routeID uuid.UUID) (*models.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE id = $1`

	var rt models.Route
	if err := r.db.GetContext(ctx, &rt, query, routeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, route.ErrRouteNotFound
		}
		return nil, fmt.Errorf("failed to get route: %w", err)
	}
	return &rt, nil
}

// ListRoutesByOwner returns the routes of an owner, newest first
func (r *RouteRepo) ListRoutesByOwner(ctx context.Context, ownerID string) ([]*models.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE owner_id = $1 ORDER BY created_at DESC`

	routes := []*models.Route{}
	if err := r.db.SelectContext(ctx, &routes, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	return routes, nil
}

// DeleteRoute removes a route, its waypoints and its segments
func (r *RouteRepo) DeleteRoute(ctx context.Context, routeID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM routes WHERE id = $1`, routeID)
	if err != nil {
		return fmt.Errorf("failed to delete route: %w", err)
	}
	return expectOneRow(result)
}

// StartCalculation moves the route into calculating unless it is already there
func (r *RouteRepo) StartCalculation(ctx context.Context, routeID uuid.UUID, startedAt time.Time) (bool, error) {
	query := `
		UPDATE routes
		SET calculation_status = $2,
			calculation_started_at = $3,
			calculation_completed_at = NULL,
			calculation_error = NULL,
			updated_at = $3
		WHERE id = $1 AND calculation_status <> $2
	`

	result, err := r.db.ExecContext(ctx, query, routeID, models.CalculationInProgress, startedAt)
	if err != nil {
		return false, fmt.Errorf("failed to start calculation: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows == 1, nil
}

// SaveCalculationResult stores the totals of a successful calculation
func (r *RouteRepo) SaveCalculationResult(ctx context.Context, routeID uuid.UUID, totals models.RouteTotals, completedAt time.Time) error {
	query := `
		UPDATE routes
		SET total_distance = $2,
			total_duration = $3,
			last_calculated_at = $4,
			calculation_completed_at = $4,
			calculation_status = $5,
			calculation_error = NULL,
			updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, routeID, totals.Distance, totals.Duration, completedAt, models.CalculationCompleted)
	if err != nil {
		return fmt.Errorf("failed to save calculation result: %w", err)
	}
	return expectOneRow(result)
}

// SaveCalculationError records a failed attempt. Totals are left untouched.
func (r *RouteRepo) SaveCalculationError(ctx context.Context, routeID uuid.UUID, status models.CalculationStatus, message string, completedAt time.Time) error {
	query := `
		UPDATE routes
		SET calculation_status = $2,
			calculation_error = $3,
			calculation_completed_at = $4,
			updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, routeID, status, message, completedAt)
	if err != nil {
		return fmt.Errorf("failed to save calculation error: %w", err)
	}
	return expectOneRow(result)
}

// AcquireCalculationLock takes the per-route worker lock
func (r *RouteRepo) AcquireCalculationLock(ctx context.Context, routeID uuid.UUID, ttl time.Duration) (bool, error) {
	if r.redisClient == nil {
		return true, nil
	}

	key := fmt.Sprintf(constants.KeyCalculationLock, routeID)
	acquired, err := r.redisClient.SetNX(ctx, key, r.lockOwner, ttl)
	if err != nil {
		return false, fmt.Errorf("failed to acquire calculation lock: %w", err)
	}
	return acquired, nil
}

// ReleaseCalculationLock drops the lock if this instance still holds it
func (r *RouteRepo) ReleaseCalculationLock(ctx context.Context, routeID uuid.UUID) error {
	if r.redisClient == nil {
		return nil
	}

	key := fmt.Sprintf(constants.KeyCalculationLock, routeID)
	owner, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("failed to read calculation lock: %w", err)
	}
	if owner != r.lockOwner {
		return nil
	}
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to release calculation lock: %w", err)
	}
	return nil
}

func expectOneRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return route.ErrRouteNotFound
	}
	return nil
}
