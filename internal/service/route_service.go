package service

import (
	"context"
	"fmt"

	"github.com/floodwatch/floodwatch-backend-go/internal/flood"
	"github.com/floodwatch/floodwatch-backend-go/internal/models"
	"github.com/floodwatch/floodwatch-backend-go/internal/observability"
	"github.com/floodwatch/floodwatch-backend-go/internal/route"
)

// RouteService combines path-scan flood zones, the directions provider,
// and the safety filter into annotated alternative routes
type RouteService struct {
	engine   *flood.Engine
	provider route.Provider
	filter   *route.SafetyFilter
	metrics  *observability.Metrics
}

// NewRouteService creates a new route service
func NewRouteService(engine *flood.Engine, provider route.Provider, filter *route.SafetyFilter, metrics *observability.Metrics) *RouteService {
	return &RouteService{
		engine:   engine,
		provider: provider,
		filter:   filter,
		metrics:  metrics,
	}
}

// SafeRoutes returns the provider's candidate routes annotated against the
// flood zones currently detected along the origin-destination path.
// A provider failure is returned wrapped in route.ErrProvider; zone
// detection failures do not occur (the path scan skips failing points).
func (s *RouteService) SafeRoutes(ctx context.Context, origin, destination models.Coordinate) ([]models.RouteCandidate, error) {
	zones, err := s.engine.FloodZonesAlongPath(ctx, origin, destination)
	if err != nil {
		return nil, fmt.Errorf("flood zones along path: %w", err)
	}

	candidates, err := s.provider.Routes(ctx, origin, destination)
	if err != nil {
		s.metrics.RouteQueries.WithLabelValues("provider_error").Inc()
		return nil, err
	}
	s.metrics.RouteQueries.WithLabelValues("ok").Inc()

	return s.filter.Annotate(candidates, zones), nil
}
