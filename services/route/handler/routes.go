package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/routecalc/internal/pkg/database"
	"github.com/piresc/routecalc/internal/pkg/middleware"
	"github.com/piresc/routecalc/internal/pkg/models"
	natspkg "github.com/piresc/routecalc/internal/pkg/nats"
	"github.com/piresc/routecalc/services/route"
	httpHandler "github.com/piresc/routecalc/services/route/handler/http"
	natsHandler "github.com/piresc/routecalc/services/route/handler/nats"
	nsqHandler "github.com/piresc/routecalc/services/route/handler/nsq"
)

// Handler combines all handlers for the route service
type Handler struct {
	routeHTTP   *httpHandler.RouteHandler
	routeNATS   *natsHandler.RouteHandler
	routeNSQ    *nsqHandler.RouteHandler
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewHandler creates a new combined handler. The worker side follows
// cfg.Jobs.Transport; a nil natsClient leaves the NATS worker unset.
func NewHandler(
	routeUC route.RouteUC,
	natsClient *natspkg.Client,
	cfg *models.Config,
	nrApp *newrelic.Application,
	redisClient *database.RedisClient,
) *Handler {
	h := &Handler{
		routeHTTP:   httpHandler.NewRouteHandler(routeUC),
		cfg:         cfg,
		redisClient: redisClient,
	}

	switch {
	case cfg.Jobs.Transport == "nsq":
		h.routeNSQ = nsqHandler.NewRouteHandler(routeUC, cfg, nrApp)
	case natsClient != nil:
		h.routeNATS = natsHandler.NewRouteHandler(routeUC, natsClient, cfg, nrApp)
	}
	return h
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	var redisClient *redis.Client
	if h.redisClient != nil {
		redisClient = h.redisClient.GetClient()
	}
	rateLimit := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: redisClient,
		Key:         "route:ratelimit:calculate",
		Limit:       h.cfg.Server.CalculateRateLimit,
		Period:      time.Minute,
	})

	routes := e.Group("/api/v1/routes")
	routes.POST("", h.routeHTTP.CreateRoute)
	routes.GET("", h.routeHTTP.ListRoutes)
	routes.GET("/:routeID", h.routeHTTP.GetRoute)
	routes.DELETE("/:routeID", h.routeHTTP.DeleteRoute)
	routes.POST("/:routeID/waypoints", h.routeHTTP.InsertWaypoint)
	routes.PUT("/:routeID/waypoints/:waypointID", h.routeHTTP.MoveWaypoint)
	routes.DELETE("/:routeID/waypoints/:waypointID", h.routeHTTP.DeleteWaypoint)
	routes.POST("/:routeID/calculate", h.routeHTTP.TriggerCalculation, rateLimit)
	routes.GET("/:routeID/status", h.routeHTTP.GetStatus)

	// Operator endpoints (API key required)
	internal := e.Group("/internal", middleware.ValidateAPIKey(h.cfg.APIKeys.Internal))
	internal.GET("/routing/connectivity", h.routeHTTP.TestConnectivity)
	internal.DELETE("/cache/area", h.routeHTTP.InvalidateCacheArea)
}

// InitConsumers starts the calculation workers on the configured transport
func (h *Handler) InitConsumers() error {
	if h.routeNSQ != nil {
		return h.routeNSQ.InitNSQConsumers()
	}
	if h.routeNATS != nil {
		return h.routeNATS.InitNATSConsumers()
	}
	return nil
}

// Stop stops the calculation workers
func (h *Handler) Stop() {
	if h.routeNSQ != nil {
		h.routeNSQ.Stop()
	}
	if h.routeNATS != nil {
		h.routeNATS.Stop()
	}
}
