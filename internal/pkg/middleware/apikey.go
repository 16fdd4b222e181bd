package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	"github.com/piresc/routecalc/internal/utils"
)

// APIKeyHeader carries the key for internal endpoints
const APIKeyHeader = "X-API-Key"

// ValidateAPIKey rejects requests whose X-API-Key does not match one of keys.
// Empty keys are ignored, so an unconfigured key never matches.
func ValidateAPIKey(keys ...string) echo.MiddlewareFunc {
	var accepted [][]byte
	for _, key := range keys {
		if key != "" {
			accepted = append(accepted, []byte(key))
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			for _, key := range accepted {
				if subtle.ConstantTimeCompare([]byte(apiKey), key) == 1 {
					return next(c)
				}
			}
			return utils.UnauthorizedResponse(c, "Invalid API key")
		}
	}
}
