package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterMiddleware(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	e := echo.New()
	e.POST("/routes/:id/calculate", func(c echo.Context) error {
		return c.NoContent(http.StatusAccepted)
	}, RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: client,
		Key:         "rate:calculate",
		Limit:       2,
		Period:      time.Minute,
	}))

	send := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/routes/abc/calculate", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		e.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusAccepted, send().Code)
	assert.Equal(t, http.StatusAccepted, send().Code)

	limited := send()
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "0", limited.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, limited.Header().Get("Retry-After"))

	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusAccepted, send().Code)
}

func TestRateLimiterMiddleware_RedisDownFailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())

	called := false
	err := RateLimiterMiddleware(RateLimiterConfig{RedisClient: client, Key: "k", Limit: 1, Period: time.Minute})(
		func(echo.Context) error { called = true; return nil })(c)

	assert.NoError(t, err)
	assert.True(t, called)
}
