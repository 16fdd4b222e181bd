package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/routecalc/internal/pkg/database"
	"github.com/piresc/routecalc/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPingHandler(t *testing.T) {
	t.Setenv("VERSION", "1.4.0")
	t.Setenv("GIT_COMMIT", "abc123")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewPingHandler("route-service")(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "route-service", info.ServiceName)
	assert.Equal(t, "1.4.0", info.Version)
	assert.Equal(t, "abc123", info.GitCommit)
	assert.False(t, info.ServerTime.IsZero())
}

func TestHealthService_CheckAllHealth(t *testing.T) {
	mr := miniredis.RunT(t)
	redisClient := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	service := NewHealthService(logger.NewNopLogger())
	service.AddChecker("redis", NewRedisHealthChecker(redisClient))
	service.AddChecker("postgres", NewPostgresHealthChecker(nil))
	service.AddChecker("routing", CheckerFunc(func(context.Context) error {
		return errors.New("routing backend unreachable")
	}))

	response := service.CheckAllHealth(context.Background())

	assert.Equal(t, "unhealthy", response.Status)
	assert.Equal(t, []string{"postgres", "redis", "routing"}, service.Names())
	assert.Equal(t, "healthy", response.Dependencies["redis"].Status)
	assert.Equal(t, "healthy", response.Dependencies["postgres"].Status)
	assert.Equal(t, "unhealthy", response.Dependencies["routing"].Status)
	assert.Equal(t, "routing backend unreachable", response.Dependencies["routing"].Error)
}

func TestRegisterEnhancedHealthEndpoints(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		failing    bool
		wantStatus int
	}{
		{name: "liveness", path: "/health/live", wantStatus: http.StatusOK},
		{name: "basic", path: "/health", wantStatus: http.StatusOK},
		{name: "ping", path: "/ping", wantStatus: http.StatusOK},
		{name: "ready when healthy", path: "/health/ready", wantStatus: http.StatusOK},
		{name: "not ready when a dependency fails", path: "/health/ready", failing: true, wantStatus: http.StatusServiceUnavailable},
		{name: "detailed when a dependency fails", path: "/health/detailed", failing: true, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewHealthService(logger.NewNopLogger())
			service.AddChecker("postgres", CheckerFunc(func(context.Context) error {
				if tt.failing {
					return errors.New("connection refused")
				}
				return nil
			}))

			e := echo.New()
			RegisterEnhancedHealthEndpoints(e, "route-service", "1.0.0", service)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
