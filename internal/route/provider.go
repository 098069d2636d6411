package route

import (
	"context"
	"errors"

	"github.com/floodwatch/floodwatch-backend-go/internal/models"
)

// ErrProvider marks a directions-provider failure. The HTTP layer turns
// it into an explicit error-marker route list rather than a crash or a
// fabricated "all safe" response.
var ErrProvider = errors.New("route provider error")

// Provider returns candidate driving routes between two points
type Provider interface {
	Routes(ctx context.Context, origin, destination models.Coordinate) ([]models.RouteCandidate, error)
}
