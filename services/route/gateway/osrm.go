package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"

	httpclient "github.com/piresc/routecalc/internal/pkg/http"
	"github.com/piresc/routecalc/internal/pkg/models"
	"github.com/piresc/routecalc/services/route"
)

const osrmName = "osrm"

// osrmProfiles maps travel profiles to OSRM profile path segments
var osrmProfiles = map[string]string{
	"driving-car":     "driving",
	"driving-hgv":     "driving",
	"cycling-regular": "cycling",
	"foot-walking":    "foot",
}

type osrmResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Routes  []osrmRoute `json:"routes"`
}

type osrmRoute struct {
	Distance float64 `json:"distance"`
	Duration float64 `json:"duration"`
	Geometry string  `json:"geometry"`
	Legs     []struct {
		Steps []json.RawMessage `json:"steps"`
	} `json:"legs"`
}

// OSRMBackend is the self-hosted local routing backend
type OSRMBackend struct {
	client *httpclient.Client
}

// NewOSRMBackend creates a backend calling the OSRM instance behind client
func NewOSRMBackend(client *httpclient.Client) *OSRMBackend {
	return &OSRMBackend{client: client}
}

func (b *OSRMBackend) Name() string { return osrmName }

func (b *OSRMBackend) Kind() models.BackendKind { return models.BackendLocal }

// ComputePath asks OSRM for the route between start and end
func (b *OSRMBackend) ComputePath(ctx context.Context, start, end models.Coordinate, profile string) (*models.PathResult, error) {
	osrmProfile, ok := osrmProfiles[profile]
	if !ok {
		osrmProfile = "driving"
	}

	endpoint := fmt.Sprintf("/route/v1/%s/%f,%f;%f,%f?overview=full&geometries=polyline&steps=true",
		osrmProfile, start.Longitude, start.Latitude, end.Longitude, end.Latitude)

	resp, err := b.client.Get(ctx, endpoint)
	if err != nil {
		return nil, route.NewBackendError(osrmName, route.ErrBackendUnreachable, "", err)
	}

	var payload osrmResponse
	if resp.StatusCode < nethttp.StatusOK || resp.StatusCode >= nethttp.StatusMultipleChoices {
		msg := fmt.Sprintf("HTTP %d", resp.StatusCode)
		if resp.DecodeJSON(&payload) == nil && payload.Message != "" {
			msg = fmt.Sprintf("%s: %s", msg, payload.Message)
		}
		return nil, route.NewBackendError(osrmName, route.ErrBackendBadResponse, msg, nil)
	}

	if err := resp.DecodeJSON(&payload); err != nil {
		return nil, route.NewBackendError(osrmName, route.ErrBackendBadResponse, "malformed payload", err)
	}
	if payload.Code != "Ok" {
		return nil, route.NewBackendError(osrmName, route.ErrBackendBadResponse,
			fmt.Sprintf("unexpected code %q %s", payload.Code, payload.Message), nil)
	}
	if len(payload.Routes) == 0 {
		return nil, route.NewBackendError(osrmName, route.ErrBackendBadResponse, "no route found", nil)
	}

	first := payload.Routes[0]
	steps := make([]json.RawMessage, 0)
	for _, leg := range first.Legs {
		steps = append(steps, leg.Steps...)
	}
	instructions, err := json.Marshal(steps)
	if err != nil {
		return nil, route.NewBackendError(osrmName, route.ErrBackendBadResponse, "invalid steps", err)
	}

	return &models.PathResult{
		Distance:        first.Distance,
		Duration:        first.Duration,
		Geometry:        first.Geometry,
		RawInstructions: instructions,
	}, nil
}

// TestConnectivity performs one fixed round trip
func (b *OSRMBackend) TestConnectivity(ctx context.Context) models.ConnectivityReport {
	return testConnectivity(ctx, b)
}
