package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/floodwatch/floodwatch-backend-go/internal/models"
)

// OpenMeteo fetches live weather and elevation from the Open-Meteo APIs.
// Both endpoints are keyless. Every call carries the client timeout; a
// provider error or timeout surfaces as ErrUnavailable.
type OpenMeteo struct {
	httpClient   *http.Client
	forecastURL  string
	elevationURL string
}

// NewOpenMeteo creates an Open-Meteo backed environmental source
func NewOpenMeteo(timeout time.Duration) *OpenMeteo {
	return &OpenMeteo{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		forecastURL:  "https://api.open-meteo.com/v1/forecast",
		elevationURL: "https://api.open-meteo.com/v1/elevation",
	}
}

// Name returns the source name
func (o *OpenMeteo) Name() string {
	return "open-meteo"
}

// Fetch returns the current weather reading and elevation for the coordinate
func (o *OpenMeteo) Fetch(ctx context.Context, coord models.Coordinate) (models.WeatherReading, float64, error) {
	weather, err := o.fetchWeather(ctx, coord)
	if err != nil {
		return models.WeatherReading{}, 0, err
	}

	elevation, err := o.fetchElevation(ctx, coord)
	if err != nil {
		return models.WeatherReading{}, 0, err
	}

	return weather, elevation, nil
}

func (o *OpenMeteo) fetchWeather(ctx context.Context, coord models.Coordinate) (models.WeatherReading, error) {
	params := url.Values{
		"latitude":  {formatCoord(coord.Latitude)},
		"longitude": {formatCoord(coord.Longitude)},
		"current":   {"rain,temperature_2m,relative_humidity_2m"},
	}

	var resp forecastResponse
	if err := o.getJSON(ctx, o.forecastURL+"?"+params.Encode(), &resp); err != nil {
		return models.WeatherReading{}, err
	}

	return models.WeatherReading{
		RainfallMM:   resp.Current.Rain,
		TemperatureC: resp.Current.Temperature2M,
		HumidityPct:  resp.Current.RelativeHumidity2M,
	}, nil
}

func (o *OpenMeteo) fetchElevation(ctx context.Context, coord models.Coordinate) (float64, error) {
	params := url.Values{
		"latitude":  {formatCoord(coord.Latitude)},
		"longitude": {formatCoord(coord.Longitude)},
	}

	var resp elevationResponse
	if err := o.getJSON(ctx, o.elevationURL+"?"+params.Encode(), &resp); err != nil {
		return 0, err
	}
	if len(resp.Elevation) == 0 {
		return 0, fmt.Errorf("%w: empty elevation response", ErrUnavailable)
	}
	return resp.Elevation[0], nil
}

func (o *OpenMeteo) getJSON(ctx context.Context, fullURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrUnavailable, err)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: open-meteo status %d", ErrUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// Open-Meteo API response types.

type forecastResponse struct {
	Current struct {
		Rain               float64 `json:"rain"`
		Temperature2M      float64 `json:"temperature_2m"`
		RelativeHumidity2M float64 `json:"relative_humidity_2m"`
	} `json:"current"`
}

type elevationResponse struct {
	Elevation []float64 `json:"elevation"`
}
