package datasource

import (
	"context"
	"errors"

	"github.com/floodwatch/floodwatch-backend-go/internal/models"
)

// ErrUnavailable marks an environmental provider failure (unreachable,
// timeout, or bad payload). Callers must surface it instead of
// substituting zero readings: a missing observation is not "no rain at
// sea level".
var ErrUnavailable = errors.New("environmental data unavailable")

// EnvironmentalSource supplies weather and elevation readings for a
// coordinate. Implementations must be safe for concurrent use; area scans
// fan out over one shared source.
type EnvironmentalSource interface {
	Name() string
	Fetch(ctx context.Context, coord models.Coordinate) (models.WeatherReading, float64, error)
}
