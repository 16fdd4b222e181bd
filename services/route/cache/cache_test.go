package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/routecalc/internal/pkg/database"
	"github.com/piresc/routecalc/internal/pkg/models"
	"github.com/piresc/routecalc/services/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	saoPaulo = models.Coordinate{Latitude: -23.5505, Longitude: -46.6333}
	rio      = models.Coordinate{Latitude: -22.9068, Longitude: -43.1729}
)

func sampleEntry(origin models.Coordinate, createdAt time.Time, ttl time.Duration) models.CacheEntry {
	return models.CacheEntry{
		Distance:  430000,
		Duration:  18000,
		Geometry:  "_p~iF~ps|U_ulLnnqC",
		Profile:   "driving-car",
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(ttl),
		Origin:    origin,
	}
}

func setupRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	return NewRedisCache(client), mr
}

func TestRedisCache_PutGet(t *testing.T) {
	c, mr := setupRedisCache(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)
	c.now = func() time.Time { return now }

	key := models.SegmentCacheKey(saoPaulo, rio, "driving-car")
	entry := sampleEntry(saoPaulo, now, 24*time.Hour)

	miss, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, miss)

	require.NoError(t, c.Put(ctx, key, entry, 24*time.Hour))

	got, err := c.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entry.Distance, got.Distance)
	assert.Equal(t, entry.Geometry, got.Geometry)
	assert.True(t, entry.ExpiresAt.Equal(got.ExpiresAt))

	assert.Equal(t, 24*time.Hour, mr.TTL("route:segment:"+key))
}

func TestRedisCache_ExpiredEntryIsMiss(t *testing.T) {
	c, mr := setupRedisCache(t)
	ctx := context.Background()
	now := time.Now().UTC()
	c.now = func() time.Time { return now }

	key := models.SegmentCacheKey(saoPaulo, rio, "driving-car")
	require.NoError(t, c.Put(ctx, key, sampleEntry(saoPaulo, now, time.Hour), time.Hour))

	// the stored expiry wins even before Redis evicts the key
	c.now = func() time.Time { return now.Add(time.Hour) }
	got, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)

	mr.FastForward(2 * time.Hour)
	got, err = c.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCache_CorruptEntry(t *testing.T) {
	c, mr := setupRedisCache(t)
	require.NoError(t, mr.Set("route:segment:broken", "{not json"))

	got, err := c.Get(context.Background(), "broken")

	assert.Nil(t, got)
	assert.ErrorContains(t, err, "failed to decode segment cache entry")
}

func TestRedisCache_ConnectionError(t *testing.T) {
	c, mr := setupRedisCache(t)
	mr.Close()

	_, err := c.Get(context.Background(), "any")
	assert.ErrorContains(t, err, "failed to read segment cache")

	err = c.Put(context.Background(), "any", sampleEntry(saoPaulo, time.Now(), time.Hour), time.Hour)
	assert.ErrorContains(t, err, "failed to write segment cache")
}

func TestRedisCache_InvalidateArea(t *testing.T) {
	c, _ := setupRedisCache(t)
	ctx := context.Background()
	now := time.Now()

	nearby := models.Coordinate{Latitude: -23.5510, Longitude: -46.6340}
	spKey := models.SegmentCacheKey(saoPaulo, rio, "driving-car")
	nearbyKey := models.SegmentCacheKey(nearby, rio, "driving-car")
	rioKey := models.SegmentCacheKey(rio, saoPaulo, "driving-car")

	require.NoError(t, c.Put(ctx, spKey, sampleEntry(saoPaulo, now, time.Hour), time.Hour))
	require.NoError(t, c.Put(ctx, nearbyKey, sampleEntry(nearby, now, time.Hour), time.Hour))
	require.NoError(t, c.Put(ctx, rioKey, sampleEntry(rio, now, time.Hour), time.Hour))

	removed, err := c.InvalidateArea(ctx, saoPaulo)

	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	for _, key := range []string{spKey, nearbyKey} {
		got, err := c.Get(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, got, key)
	}
	got, err := c.Get(ctx, rioKey)
	require.NoError(t, err)
	assert.NotNil(t, got, "entries outside the area survive")
}

func TestMemoryCache_PutGet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	now := time.Now()
	c.now = func() time.Time { return now }

	key := models.SegmentCacheKey(saoPaulo, rio, "driving-car")
	entry := sampleEntry(saoPaulo, now, 24*time.Hour)
	require.NoError(t, c.Put(ctx, key, entry, 24*time.Hour))

	first, err := c.Get(ctx, key)
	require.NoError(t, err)
	second, err := c.Get(ctx, key)
	require.NoError(t, err)

	assert.Equal(t, entry, *first)
	assert.Equal(t, first, second)
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	now := time.Now()
	c.now = func() time.Time { return now }

	key := models.SegmentCacheKey(saoPaulo, rio, "driving-car")
	require.NoError(t, c.Put(ctx, key, sampleEntry(saoPaulo, now, 24*time.Hour), 24*time.Hour))

	c.now = func() time.Time { return now.Add(24*time.Hour - time.Second) }
	got, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.NotNil(t, got)

	// expires_at <= now is a miss
	c.now = func() time.Time { return now.Add(24 * time.Hour) }
	got, err = c.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 0, c.Len())
}

func TestMemoryCache_TTLCapsEntryExpiry(t *testing.T) {
	c := NewMemoryCache()
	now := time.Now()
	c.now = func() time.Time { return now }

	entry := sampleEntry(saoPaulo, now, 48*time.Hour)
	require.NoError(t, c.Put(context.Background(), "k", entry, time.Hour))

	got, err := c.Get(context.Background(), "k")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.ExpiresAt.Equal(now.Add(time.Hour)))
}

func TestMemoryCache_InvalidateArea(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, c.Put(ctx, "sp", sampleEntry(saoPaulo, now, time.Hour), time.Hour))
	require.NoError(t, c.Put(ctx, "rio", sampleEntry(rio, now, time.Hour), time.Hour))

	removed, err := c.InvalidateArea(ctx, rio)

	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, c.Len())
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i%5)
			_ = c.Put(ctx, key, sampleEntry(saoPaulo, time.Now(), time.Hour), time.Hour)
			_, _ = c.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, c.Len())
}

func TestNoopCache(t *testing.T) {
	var c route.SegmentCache = NoopCache{}
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "k", sampleEntry(saoPaulo, time.Now(), time.Hour), time.Hour))
	got, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestNewSegmentCache(t *testing.T) {
	mr := miniredis.RunT(t)
	redisClient := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	tests := []struct {
		name     string
		cfg      models.CacheConfig
		client   *database.RedisClient
		expected interface{}
		err      error
	}{
		{name: "disabled", cfg: models.CacheConfig{Enabled: false, Driver: "redis"}, expected: NoopCache{}},
		{name: "redis", cfg: models.CacheConfig{Enabled: true, Driver: "redis"}, client: redisClient, expected: &RedisCache{}},
		{name: "memory", cfg: models.CacheConfig{Enabled: true, Driver: "memory"}, expected: &MemoryCache{}},
		{name: "redis without client", cfg: models.CacheConfig{Enabled: true, Driver: "redis"}, err: errors.New("redis cache driver requires a redis client")},
		{name: "unknown driver", cfg: models.CacheConfig{Enabled: true, Driver: "memcached"}, err: errors.New(`unknown cache driver "memcached"`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewSegmentCache(tt.cfg, tt.client)
			if tt.err != nil {
				assert.EqualError(t, err, tt.err.Error())
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.expected, c)
		})
	}
}
