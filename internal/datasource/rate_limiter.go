package datasource

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/floodwatch/floodwatch-backend-go/internal/models"
)

// RateLimitedSource wraps an EnvironmentalSource with rate limiting so an
// area scan's fan-out cannot hammer a live provider past its quota.
type RateLimitedSource struct {
	source  EnvironmentalSource
	limiter *rate.Limiter
	name    string
}

// NewRateLimitedSource creates a rate limited environmental source.
// rps is the maximum requests per second allowed, burst the maximum burst size.
func NewRateLimitedSource(source EnvironmentalSource, rps float64, burst int) *RateLimitedSource {
	return &RateLimitedSource{
		source:  source,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    fmt.Sprintf("%s [rate limited]", source.Name()),
	}
}

// Name returns the source name
func (r *RateLimitedSource) Name() string {
	return r.name
}

// Fetch fetches a reading, respecting rate limits
func (r *RateLimitedSource) Fetch(ctx context.Context, coord models.Coordinate) (models.WeatherReading, float64, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return models.WeatherReading{}, 0, fmt.Errorf("%w: rate limit wait: %v", ErrUnavailable, err)
	}
	return r.source.Fetch(ctx, coord)
}

var _ EnvironmentalSource = (*RateLimitedSource)(nil)
var _ EnvironmentalSource = (*Simulator)(nil)
var _ EnvironmentalSource = (*OpenMeteo)(nil)
