package cache

import (
	"fmt"

	"github.com/piresc/routecalc/internal/pkg/database"
	"github.com/piresc/routecalc/internal/pkg/models"
	"github.com/piresc/routecalc/services/route"
)

// NewSegmentCache selects the cache implementation from configuration
func NewSegmentCache(cfg models.CacheConfig, redisClient *database.RedisClient) (route.SegmentCache, error) {
	if !cfg.Enabled {
		return NoopCache{}, nil
	}

	switch cfg.Driver {
	case "redis":
		if redisClient == nil {
			return nil, fmt.Errorf("redis cache driver requires a redis client")
		}
		return NewRedisCache(redisClient), nil
	case "memory":
		return NewMemoryCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
	}
}
