package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"

	"github.com/piresc/routecalc/internal/pkg/config"
	httpclient "github.com/piresc/routecalc/internal/pkg/http"
	"github.com/piresc/routecalc/internal/pkg/models"
	"github.com/piresc/routecalc/services/route"
)

const orsName = "openrouteservice"

type orsRequest struct {
	Coordinates  [][2]float64 `json:"coordinates"`
	Instructions bool         `json:"instructions"`
}

type orsResponse struct {
	Routes []orsRoute       `json:"routes"`
	Error  *json.RawMessage `json:"error,omitempty"`
}

type orsRoute struct {
	Summary struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"summary"`
	Geometry string `json:"geometry"`
	Segments []struct {
		Steps []json.RawMessage `json:"steps"`
	} `json:"segments"`
}

// errorMessage extracts the provider message, which is either an object or a plain string
func (r orsResponse) errorMessage() string {
	if r.Error == nil {
		return ""
	}
	var detail struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(*r.Error, &detail) == nil && detail.Message != "" {
		return detail.Message
	}
	var plain string
	if json.Unmarshal(*r.Error, &plain) == nil {
		return plain
	}
	return ""
}

// ORSBackend is the metered OpenRouteService backend
type ORSBackend struct {
	client *httpclient.Client
}

// NewORSBackend creates the external backend. The client must send the API key.
func NewORSBackend(client *httpclient.Client, apiKey string) (*ORSBackend, error) {
	if apiKey == "" {
		return nil, &config.ConfigurationError{Field: "ORS_API_KEY", Reason: "is required for the external backend"}
	}
	return &ORSBackend{client: client}, nil
}

func (b *ORSBackend) Name() string { return orsName }

func (b *ORSBackend) Kind() models.BackendKind { return models.BackendExternal }

// ComputePath asks OpenRouteService for the route between start and end
func (b *ORSBackend) ComputePath(ctx context.Context, start, end models.Coordinate, profile string) (*models.PathResult, error) {
	body := orsRequest{
		Coordinates: [][2]float64{
			{start.Longitude, start.Latitude},
			{end.Longitude, end.Latitude},
		},
		Instructions: true,
	}

	resp, err := b.client.PostJSON(ctx, "/v2/directions/"+profile, body)
	if err != nil {
		return nil, route.NewBackendError(orsName, route.ErrBackendUnreachable, "", err)
	}

	var payload orsResponse
	decodeErr := resp.DecodeJSON(&payload)

	switch {
	case resp.StatusCode == nethttp.StatusUnauthorized || resp.StatusCode == nethttp.StatusForbidden:
		msg := fmt.Sprintf("HTTP %d", resp.StatusCode)
		if m := payload.errorMessage(); m != "" {
			msg = fmt.Sprintf("%s: %s", msg, m)
		}
		return nil, route.NewBackendError(orsName, route.ErrBackendUnauthorized, msg, nil)
	case resp.StatusCode < nethttp.StatusOK || resp.StatusCode >= nethttp.StatusMultipleChoices:
		msg := fmt.Sprintf("HTTP %d", resp.StatusCode)
		if m := payload.errorMessage(); m != "" {
			msg = fmt.Sprintf("%s: %s", msg, m)
		}
		return nil, route.NewBackendError(orsName, route.ErrBackendBadResponse, msg, nil)
	case decodeErr != nil:
		return nil, route.NewBackendError(orsName, route.ErrBackendBadResponse, "malformed payload", decodeErr)
	case len(payload.Routes) == 0:
		msg := "no route found"
		if m := payload.errorMessage(); m != "" {
			msg = m
		}
		return nil, route.NewBackendError(orsName, route.ErrBackendBadResponse, msg, nil)
	}

	first := payload.Routes[0]
	steps := make([]json.RawMessage, 0)
	for _, segment := range first.Segments {
		steps = append(steps, segment.Steps...)
	}
	instructions, err := json.Marshal(steps)
	if err != nil {
		return nil, route.NewBackendError(orsName, route.ErrBackendBadResponse, "invalid steps", err)
	}

	return &models.PathResult{
		Distance:        first.Summary.Distance,
		Duration:        first.Summary.Duration,
		Geometry:        first.Geometry,
		RawInstructions: instructions,
	}, nil
}

// TestConnectivity performs one fixed round trip
func (b *ORSBackend) TestConnectivity(ctx context.Context) models.ConnectivityReport {
	return testConnectivity(ctx, b)
}
