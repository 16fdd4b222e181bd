package cache

import (
	"context"
	"time"

	"github.com/piresc/routecalc/internal/pkg/models"
)

// NoopCache never stores anything, used when CACHE_ENABLED=false
type NoopCache struct{}

func (NoopCache) Get(context.Context, string) (*models.CacheEntry, error) { return nil, nil }

func (NoopCache) Put(context.Context, string, models.CacheEntry, time.Duration) error { return nil }

func (NoopCache) InvalidateArea(context.Context, models.Coordinate) (int, error) { return 0, nil }
