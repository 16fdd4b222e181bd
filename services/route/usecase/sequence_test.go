package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/routecalc/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenumber(t *testing.T) {
	waypoints := []models.Waypoint{{Sequence: 4}, {Sequence: 0}, {Sequence: 9}}

	out := renumber(waypoints)

	for i, wp := range out {
		assert.Equal(t, i, wp.Sequence)
	}
	assert.Equal(t, 4, waypoints[0].Sequence, "input is not modified")
}

func TestInsertAtAndRemoveAt(t *testing.T) {
	a, b, c := models.Waypoint{Name: "A"}, models.Waypoint{Name: "B"}, models.Waypoint{Name: "C"}

	assert.Equal(t, []models.Waypoint{b, a, c}, insertAt([]models.Waypoint{a, c}, 0, b))
	assert.Equal(t, []models.Waypoint{a, b, c}, insertAt([]models.Waypoint{a, c}, 1, b))
	assert.Equal(t, []models.Waypoint{a, c, b}, insertAt([]models.Waypoint{a, c}, 2, b))
	assert.Equal(t, []models.Waypoint{a, c}, removeAt([]models.Waypoint{a, b, c}, 1))
}

func TestPruneInvalidSegments(t *testing.T) {
	routeID := uuid.New()
	waypoints := testWaypoints(routeID, saoPaulo, campinas, rio)
	valid := testSegment(routeID, waypoints[0], waypoints[1], time.Now().Add(time.Hour))

	t.Run("keeps segments joining adjacent waypoints", func(t *testing.T) {
		second := testSegment(routeID, waypoints[1], waypoints[2], time.Now().Add(time.Hour))
		second.Sequence = 7

		kept, stale := pruneInvalidSegments([]models.Segment{valid, second}, waypoints, "driving-car")

		require.Len(t, kept, 2)
		assert.Empty(t, stale)
		assert.Equal(t, 1, kept[1].Sequence, "sequence follows the start waypoint")
	})

	t.Run("insertion breaks the spanning segment", func(t *testing.T) {
		inserted := models.Waypoint{ID: uuid.New(), Latitude: -23.3, Longitude: -46.0}
		updated := renumber(insertAt(waypoints[:2], 1, inserted))

		kept, stale := pruneInvalidSegments([]models.Segment{valid}, updated, "driving-car")

		assert.Empty(t, kept)
		assert.Equal(t, []models.Segment{valid}, stale)
	})

	t.Run("moved waypoint invalidates both neighbours", func(t *testing.T) {
		second := testSegment(routeID, waypoints[1], waypoints[2], time.Now().Add(time.Hour))
		moved := renumber(waypoints)
		moved[1].Latitude += 0.01

		kept, stale := pruneInvalidSegments([]models.Segment{valid, second}, moved, "driving-car")

		assert.Empty(t, kept)
		assert.Len(t, stale, 2)
	})

	t.Run("profile change", func(t *testing.T) {
		kept, stale := pruneInvalidSegments([]models.Segment{valid}, waypoints, "foot-walking")

		assert.Empty(t, kept)
		assert.Len(t, stale, 1)
	})

	t.Run("removed waypoint and duplicates", func(t *testing.T) {
		orphan := testSegment(routeID, waypoints[0], waypoints[1], time.Now())
		orphan.StartWaypointID = uuid.New()
		duplicate := valid
		duplicate.ID = uuid.New()

		kept, stale := pruneInvalidSegments([]models.Segment{valid, orphan, duplicate}, waypoints, "driving-car")

		assert.Equal(t, []models.Segment{valid}, kept)
		assert.Len(t, stale, 2)
	})
}
