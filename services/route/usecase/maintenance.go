package usecase

import (
	"context"

	"github.com/piresc/routecalc/internal/pkg/logger"
	"github.com/piresc/routecalc/internal/pkg/models"
)

// TestConnectivity probes the configured routing backend
func (uc *RouteUC) TestConnectivity(ctx context.Context) models.ConnectivityReport {
	report := uc.backend.TestConnectivity(ctx)
	if !report.Success {
		logger.WarnCtx(ctx, "Routing backend connectivity check failed",
			logger.String("backend", report.Backend),
			logger.String("error", report.Error))
	}
	return report
}

// InvalidateCacheArea drops cached segments starting around c
func (uc *RouteUC) InvalidateCacheArea(ctx context.Context, c models.Coordinate) (int, error) {
	removed, err := uc.segmentCache.InvalidateArea(ctx, c)
	if err != nil {
		return 0, err
	}

	logger.InfoCtx(ctx, "Invalidated segment cache area",
		logger.Float64("latitude", c.Latitude),
		logger.Float64("longitude", c.Longitude),
		logger.Int("removed", removed))
	return removed, nil
}
