package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/routecalc/internal/pkg/constants"
	"github.com/piresc/routecalc/internal/pkg/database"
	"github.com/piresc/routecalc/internal/pkg/logger"
	"github.com/piresc/routecalc/internal/pkg/models"
	"github.com/piresc/routecalc/internal/utils"
)

// RedisCache keeps segment entries as JSON strings with a Redis TTL.
// Each entry is also indexed under the geohash cell of its origin.
type RedisCache struct {
	redisClient *database.RedisClient
	now         func() time.Time
}

// NewRedisCache creates a Redis backed segment cache
func NewRedisCache(redisClient *database.RedisClient) *RedisCache {
	return &RedisCache{
		redisClient: redisClient,
		now:         time.Now,
	}
}

func entryKey(key string) string {
	return fmt.Sprintf(constants.KeySegmentCache, key)
}

func cellKey(cell string) string {
	return fmt.Sprintf(constants.KeySegmentCell, cell)
}

// Get returns the cached entry, or nil when it is missing or expired
func (c *RedisCache) Get(ctx context.Context, key string) (*models.CacheEntry, error) {
	data, err := c.redisClient.Get(ctx, entryKey(key))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read segment cache: %w", err)
	}

	var entry models.CacheEntry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		return nil, fmt.Errorf("failed to decode segment cache entry: %w", err)
	}

	// Redis expiry has second granularity
	if entry.Expired(c.now()) {
		return nil, nil
	}
	return &entry, nil
}

// Put stores the entry and adds it to the index of its origin cell
func (c *RedisCache) Put(ctx context.Context, key string, entry models.CacheEntry, ttl time.Duration) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode segment cache entry: %w", err)
	}

	if err := c.redisClient.Set(ctx, entryKey(key), data, ttl); err != nil {
		return fmt.Errorf("failed to write segment cache: %w", err)
	}

	cell := cellKey(utils.EncodeCoordinate(entry.Origin, constants.CacheCellPrecision))
	if err := c.redisClient.SAdd(ctx, cell, key); err != nil {
		return fmt.Errorf("failed to index segment cache entry: %w", err)
	}
	// the index outlives every entry it points to by at most one TTL
	if err := c.redisClient.Expire(ctx, cell, ttl); err != nil {
		logger.WarnCtx(ctx, "Failed to refresh cache cell expiry", logger.String("cell", cell), logger.Err(err))
	}
	return nil
}

// InvalidateArea drops every entry indexed under the cell of c or one of its neighbours
func (c *RedisCache) InvalidateArea(ctx context.Context, coord models.Coordinate) (int, error) {
	removed := 0
	for _, cell := range utils.CellWithNeighbors(coord, constants.CacheCellPrecision) {
		index := cellKey(cell)
		members, err := c.redisClient.SMembers(ctx, index)
		if err != nil {
			return removed, fmt.Errorf("failed to read cache cell %s: %w", cell, err)
		}
		if len(members) == 0 {
			continue
		}

		keys := make([]string, 0, len(members)+1)
		for _, member := range members {
			keys = append(keys, entryKey(member))
		}
		keys = append(keys, index)

		if err := c.redisClient.Delete(ctx, keys...); err != nil {
			return removed, fmt.Errorf("failed to invalidate cache cell %s: %w", cell, err)
		}
		removed += len(members)
	}
	return removed, nil
}
