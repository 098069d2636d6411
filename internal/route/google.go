package route

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/floodwatch/floodwatch-backend-go/internal/models"
)

// GoogleDirections fetches driving alternatives from the Google Directions
// API. Routes come back unannotated; the safety filter marks them.
type GoogleDirections struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

// NewGoogleDirections creates a Google Directions client
func NewGoogleDirections(apiKey string, timeout time.Duration) *GoogleDirections {
	return &GoogleDirections{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: "https://maps.googleapis.com/maps/api/directions/json",
	}
}

// Routes returns candidate driving routes between origin and destination
func (g *GoogleDirections) Routes(ctx context.Context, origin, destination models.Coordinate) ([]models.RouteCandidate, error) {
	params := url.Values{
		"origin":       {fmt.Sprintf("%f,%f", origin.Latitude, origin.Longitude)},
		"destination":  {fmt.Sprintf("%f,%f", destination.Latitude, destination.Longitude)},
		"mode":         {"driving"},
		"alternatives": {"true"},
		"key":          {g.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrProvider, err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: directions API status %d", ErrProvider, resp.StatusCode)
	}

	var dirResp directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dirResp); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrProvider, err)
	}

	if dirResp.Status != "OK" && dirResp.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("%w: directions API status %s", ErrProvider, dirResp.Status)
	}

	routes := make([]models.RouteCandidate, 0, len(dirResp.Routes))
	for _, r := range dirResp.Routes {
		candidate := models.RouteCandidate{
			Summary:  r.Summary,
			Polyline: r.OverviewPolyline.Points,
		}
		if len(r.Legs) > 0 {
			candidate.Distance = r.Legs[0].Distance.Text
			candidate.Duration = r.Legs[0].Duration.Text
		}
		routes = append(routes, candidate)
	}
	return routes, nil
}

// Google Directions API response types.

type directionsResponse struct {
	Status string            `json:"status"`
	Routes []directionsRoute `json:"routes"`
}

type directionsRoute struct {
	Summary          string `json:"summary"`
	OverviewPolyline struct {
		Points string `json:"points"`
	} `json:"overview_polyline"`
	Legs []struct {
		Distance textValue `json:"distance"`
		Duration textValue `json:"duration"`
	} `json:"legs"`
}

type textValue struct {
	Text string `json:"text"`
}

var _ Provider = (*GoogleDirections)(nil)
