package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/routecalc/internal/pkg/logger"
	"github.com/piresc/routecalc/internal/pkg/middleware"
	"github.com/piresc/routecalc/internal/pkg/requestcontext"
)

// NewEcho builds the Echo instance shared by every HTTP surface:
// New Relic transactions, request IDs, access logs and panic recovery.
func NewEcho(zapLogger *logger.ZapLogger, nrApp *newrelic.Application) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()

	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(echomw.RequestID())
	e.Use(requestcontext.Middleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	return e
}
