package http

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/piresc/routecalc/internal/pkg/circuitbreaker"
	"github.com/piresc/routecalc/internal/pkg/logger"
	"github.com/piresc/routecalc/internal/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodGet, r.Method)
		assert.Equal(t, "/route/v1/driving/1,2;3,4", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":"Ok"}`))
	}))
	defer server.Close()

	client := NewClient("osrm", server.URL+"/", time.Second)
	resp, err := client.Get(context.Background(), "/route/v1/driving/1,2;3,4")
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, resp.DecodeJSON(&body))
	assert.Equal(t, "Ok", body.Code)
}

func TestClient_PostJSONWithHeader(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, true, payload["instructions"])

		w.WriteHeader(nethttp.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Access denied"}}`))
	}))
	defer server.Close()

	client := NewClient("ors", server.URL, time.Second, WithHeader("Authorization", "secret"))
	resp, err := client.PostJSON(context.Background(), "/v2/directions/driving-car", map[string]interface{}{"instructions": true})

	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(resp.Body), "Access denied")
}

func TestClient_ServerErrorIsReturnedAndCountedByBreaker(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusBadGateway)
	}))
	defer server.Close()

	config := circuitbreaker.DefaultConfig("osrm")
	config.FailureThreshold = 2
	breaker := circuitbreaker.New(config, logger.NewNopLogger())
	client := NewClient("osrm", server.URL, time.Second, WithBreaker(breaker))

	for i := 0; i < 2; i++ {
		resp, err := client.Get(context.Background(), "/")
		require.NoError(t, err)
		assert.Equal(t, nethttp.StatusBadGateway, resp.StatusCode)
	}

	_, err := client.Get(context.Background(), "/")
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitBreakerOpen)
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(nethttp.ResponseWriter, *nethttp.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient("osrm", url, time.Second)
	resp, err := client.Get(context.Background(), "/")

	assert.Nil(t, resp)
	assert.Error(t, err)
	var httpErr *HTTPError
	assert.False(t, errors.As(err, &httpErr))
}

func TestClient_RetriesWhenConfigured(t *testing.T) {
	var calls int32
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(nethttp.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	config := retry.DefaultConfig("probe")
	config.BaseDelay = time.Millisecond
	config.RetryableFunc = func(err error) bool {
		var httpErr *HTTPError
		return errors.As(err, &httpErr)
	}
	client := NewClient("probe", server.URL, time.Second, WithRetrier(retry.New(config, logger.NewNopLogger())))

	resp, err := client.Get(context.Background(), "/")
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient("slow", server.URL, 20*time.Millisecond)
	_, err := client.Get(context.Background(), "/")
	assert.Error(t, err)
}
