package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/routecalc/internal/pkg/circuitbreaker"
	"github.com/piresc/routecalc/internal/pkg/config"
	httpclient "github.com/piresc/routecalc/internal/pkg/http"
	"github.com/piresc/routecalc/internal/pkg/logger"
	"github.com/piresc/routecalc/internal/pkg/models"
	"github.com/piresc/routecalc/services/route"
)

// connectivity probe: two close points in central São Paulo
var (
	probeStart = models.Coordinate{Latitude: -23.5505, Longitude: -46.6333}
	probeEnd   = models.Coordinate{Latitude: -23.5614, Longitude: -46.6559}
)

// NewRoutingBackend builds the backend selected by configuration.
// Both variants share the timeout and sit behind a circuit breaker from breakers.
func NewRoutingBackend(cfg models.RoutingConfig, breakers *circuitbreaker.Manager) (route.RoutingBackend, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	breakerConfig := func(name string) circuitbreaker.Config {
		bc := circuitbreaker.DefaultConfig(name)
		if cfg.BreakerFailures > 0 {
			bc.FailureThreshold = uint32(cfg.BreakerFailures)
		}
		if cfg.BreakerCooldown > 0 {
			bc.Timeout = time.Duration(cfg.BreakerCooldown) * time.Second
		}
		return bc
	}

	switch cfg.Backend {
	case models.BackendLocal:
		client := httpclient.NewClient(osrmName, cfg.OSRMBaseURL, timeout,
			httpclient.WithBreaker(breakers.GetOrCreate(osrmName, breakerConfig(osrmName))))
		logger.Info("Using local routing backend", logger.String("url", cfg.OSRMBaseURL))
		return NewOSRMBackend(client), nil

	case models.BackendExternal:
		client := httpclient.NewClient(orsName, cfg.ORSBaseURL, timeout,
			httpclient.WithBreaker(breakers.GetOrCreate(orsName, breakerConfig(orsName))),
			httpclient.WithHeader("Authorization", cfg.ORSAPIKey))
		logger.Info("Using external routing backend", logger.String("url", cfg.ORSBaseURL))
		return NewORSBackend(client, cfg.ORSAPIKey)

	default:
		return nil, &config.ConfigurationError{
			Field:  "ROUTING_BACKEND",
			Reason: fmt.Sprintf("has unknown value %q", cfg.Backend),
		}
	}
}

func testConnectivity(ctx context.Context, backend route.RoutingBackend) models.ConnectivityReport {
	start := time.Now()
	_, err := backend.ComputePath(ctx, probeStart, probeEnd, models.DefaultProfile)

	report := models.ConnectivityReport{
		Success:   err == nil,
		LatencyMS: time.Since(start).Milliseconds(),
		Backend:   backend.Name(),
	}
	if err != nil {
		report.Error = err.Error()
	}
	return report
}
