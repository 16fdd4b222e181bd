package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/routecalc/internal/pkg/models"
	"github.com/piresc/routecalc/services/route"
)

const waypointColumns = `id, route_id, sequence, latitude, longitude, name, description, created_at, updated_at`

const segmentColumns = `id, route_id, sequence, start_waypoint_id, end_waypoint_id, distance, duration,
	geometry, profile, cache_key, expires_at, created_at`

// segmentStore runs waypoint and segment statements either on the pool or inside an open transaction
type segmentStore struct {
	db *sqlx.DB
	tx *sqlx.Tx
}

func (s *segmentStore) ext() sqlx.ExtContext {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

// atomic runs fn in the current transaction, or in a new one when there is none
func (s *segmentStore) atomic(ctx context.Context, fn func(ext sqlx.ExtContext) error) error {
	if s.tx != nil {
		return fn(s.tx)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListWaypoints returns the waypoints of a route ordered by sequence
func (s *segmentStore) ListWaypoints(ctx context.Context, routeID uuid.UUID) ([]models.Waypoint, error) {
	query := `SELECT ` + waypointColumns + ` FROM route_waypoints WHERE route_id = $1 ORDER BY sequence`

	var waypoints []models.Waypoint
	if err := sqlx.SelectContext(ctx, s.ext(), &waypoints, query, routeID); err != nil {
		return nil, fmt.Errorf("failed to list waypoints: %w", err)
	}
	return waypoints, nil
}

// SaveWaypoints upserts waypoints by id, including their sequence
func (s *segmentStore) SaveWaypoints(ctx context.Context, waypoints []models.Waypoint) error {
	if len(waypoints) == 0 {
		return nil
	}

	query := `
		INSERT INTO route_waypoints (` + waypointColumns + `)
		VALUES (:id, :route_id, :sequence, :latitude, :longitude, :name, :description, :created_at, :updated_at)
		ON CONFLICT (id) DO UPDATE SET
			sequence = EXCLUDED.sequence,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			updated_at = EXCLUDED.updated_at
	`

	return s.atomic(ctx, func(ext sqlx.ExtContext) error {
		for i := range waypoints {
			if _, err := sqlx.NamedExecContext(ctx, ext, query, waypoints[i]); err != nil {
				return fmt.Errorf("failed to save waypoint %s: %w", waypoints[i].ID, err)
			}
		}
		return nil
	})
}

// DeleteWaypoint removes a waypoint. Segments touching it cascade.
func (s *segmentStore) DeleteWaypoint(ctx context.Context, routeID, waypointID uuid.UUID) error {
	result, err := s.ext().ExecContext(ctx, `DELETE FROM route_waypoints WHERE id = $1 AND route_id = $2`, waypointID, routeID)
	if err != nil {
		return fmt.Errorf("failed to delete waypoint: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return route.ErrWaypointNotFound
	}
	return nil
}

// ListSegments returns the segments of a route ordered by sequence
func (s *segmentStore) ListSegments(ctx context.Context, routeID uuid.UUID) ([]models.Segment, error) {
	query := `SELECT ` + segmentColumns + ` FROM route_segments WHERE route_id = $1 ORDER BY sequence`

	var segments []models.Segment
	if err := sqlx.SelectContext(ctx, s.ext(), &segments, query, routeID); err != nil {
		return nil, fmt.Errorf("failed to list segments: %w", err)
	}
	return segments, nil
}

// ReplaceAll swaps the whole segment set of a route
func (s *segmentStore) ReplaceAll(ctx context.Context, routeID uuid.UUID, segments []models.Segment) error {
	return s.atomic(ctx, func(ext sqlx.ExtContext) error {
		if _, err := ext.ExecContext(ctx, `DELETE FROM route_segments WHERE route_id = $1`, routeID); err != nil {
			return fmt.Errorf("failed to clear segments: %w", err)
		}
		for i := range segments {
			if err := insertSegment(ctx, ext, &segments[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// InsertSegment stores one segment
func (s *segmentStore) InsertSegment(ctx context.Context, segment *models.Segment) error {
	return insertSegment(ctx, s.ext(), segment)
}

func insertSegment(ctx context.Context, ext sqlx.ExtContext, segment *models.Segment) error {
	query := `
		INSERT INTO route_segments (` + segmentColumns + `)
		VALUES (:id, :route_id, :sequence, :start_waypoint_id, :end_waypoint_id, :distance, :duration,
			:geometry, :profile, :cache_key, :expires_at, :created_at)
	`
	if _, err := sqlx.NamedExecContext(ctx, ext, query, segment); err != nil {
		return fmt.Errorf("failed to insert segment %d: %w", segment.Sequence, err)
	}
	return nil
}

// DeleteSegments removes segments by id
func (s *segmentStore) DeleteSegments(ctx context.Context, segmentIDs []uuid.UUID) error {
	if len(segmentIDs) == 0 {
		return nil
	}

	ids := make([]string, len(segmentIDs))
	for i, id := range segmentIDs {
		ids[i] = id.String()
	}

	if _, err := s.ext().ExecContext(ctx, `DELETE FROM route_segments WHERE id = ANY($1::uuid[])`, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to delete segments: %w", err)
	}
	return nil
}

// DeleteRange removes the segments whose sequence lies in [from, to]
func (s *segmentStore) DeleteRange(ctx context.Context, routeID uuid.UUID, from, to int) error {
	query := `DELETE FROM route_segments WHERE route_id = $1 AND sequence BETWEEN $2 AND $3`
	if _, err := s.ext().ExecContext(ctx, query, routeID, from, to); err != nil {
		return fmt.Errorf("failed to delete segment range: %w", err)
	}
	return nil
}

// Renumber sets each segment's sequence to the current sequence of its start waypoint
func (s *segmentStore) Renumber(ctx context.Context, routeID uuid.UUID) error {
	query := `
		UPDATE route_segments AS s
		SET sequence = w.sequence
		FROM route_waypoints AS w
		WHERE s.start_waypoint_id = w.id
			AND s.route_id = $1
			AND s.sequence <> w.sequence
	`
	if _, err := s.ext().ExecContext(ctx, query, routeID); err != nil {
		return fmt.Errorf("failed to renumber segments: %w", err)
	}
	return nil
}

// SumTotals adds up the distance and duration of every segment of a route
func (s *segmentStore) SumTotals(ctx context.Context, routeID uuid.UUID) (models.RouteTotals, error) {
	query := `
		SELECT COALESCE(SUM(distance), 0) AS distance, COALESCE(SUM(duration), 0) AS duration
		FROM route_segments
		WHERE route_id = $1
	`

	var totals models.RouteTotals
	if err := sqlx.GetContext(ctx, s.ext(), &totals, query, routeID); err != nil {
		return models.RouteTotals{}, fmt.Errorf("failed to sum segment totals: %w", err)
	}
	return totals, nil
}
