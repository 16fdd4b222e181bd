package usecase

import (
	"time"

	"github.com/piresc/routecalc/internal/pkg/models"
	"github.com/piresc/routecalc/services/route"
)

const (
	defaultCacheTTL = 24 * time.Hour
	defaultLockTTL  = 5 * time.Minute
)

// RouteUC implements the route use case interface
type RouteUC struct {
	cfg          *models.Config
	routeRepo    route.RouteRepo
	segmentCache route.SegmentCache
	backend      route.RoutingBackend
	jobGW        route.JobGW
	now          func() time.Time
}

// NewRouteUC creates a new route use case.
// jobGW may be nil, in which case every calculation runs synchronously.
func NewRouteUC(
	cfg *models.Config,
	routeRepo route.RouteRepo,
	segmentCache route.SegmentCache,
	backend route.RoutingBackend,
	jobGW route.JobGW,
) *RouteUC {
	return &RouteUC{
		cfg:          cfg,
		routeRepo:    routeRepo,
		segmentCache: segmentCache,
		backend:      backend,
		jobGW:        jobGW,
		now:          time.Now,
	}
}

func (uc *RouteUC) cacheTTL() time.Duration {
	if uc.cfg.Cache.TTLHours <= 0 {
		return defaultCacheTTL
	}
	return time.Duration(uc.cfg.Cache.TTLHours) * time.Hour
}

func (uc *RouteUC) lockTTL() time.Duration {
	if uc.cfg.Jobs.LockTTL <= 0 {
		return defaultLockTTL
	}
	return time.Duration(uc.cfg.Jobs.LockTTL) * time.Second
}

func (uc *RouteUC) profileOf(rt *models.Route) string {
	if rt.Profile != "" {
		return rt.Profile
	}
	if uc.cfg.Routing.DefaultProfile != "" {
		return uc.cfg.Routing.DefaultProfile
	}
	return models.DefaultProfile
}
