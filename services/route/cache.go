package route

//go:generate mockgen -destination=mocks/mock_cache.go -package=mocks github.com/piresc/routecalc/services/route SegmentCache

import (
	"context"
	"time"

	"github.com/piresc/routecalc/internal/pkg/models"
)

// SegmentCache stores computed paths by coordinate pair and profile.
// Get returns nil without error on a miss, expired entries included.
type SegmentCache interface {
	Get(ctx context.Context, key string) (*models.CacheEntry, error)
	Put(ctx context.Context, key string, entry models.CacheEntry, ttl time.Duration) error
	// InvalidateArea drops entries whose origin lies in the cell of c or a neighbouring one
	InvalidateArea(ctx context.Context, c models.Coordinate) (int, error)
}
