package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floodwatch/floodwatch-backend-go/internal/flood"
	"github.com/floodwatch/floodwatch-backend-go/internal/models"
	"github.com/floodwatch/floodwatch-backend-go/internal/observability"
	"github.com/floodwatch/floodwatch-backend-go/internal/route"
	"github.com/floodwatch/floodwatch-backend-go/internal/service"
)

type stubProvider struct {
	routes []models.RouteCandidate
	err    error
}

func (p stubProvider) Routes(context.Context, models.Coordinate, models.Coordinate) ([]models.RouteCandidate, error) {
	return p.routes, p.err
}

func newRouteService(source stubSource, provider route.Provider) *service.RouteService {
	engine := flood.NewEngine(source, flood.RainfallScorer{}, clockwork.NewRealClock(), 4)
	return service.NewRouteService(engine, provider, route.NewSafetyFilter(200), observability.NewMetricsForTesting())
}

func TestSafeRoutes_AnnotatesAgainstPathZones(t *testing.T) {
	origin := models.Coordinate{Latitude: 14.5995, Longitude: 120.9842}
	destination := models.Coordinate{Latitude: 14.6500, Longitude: 121.0300}

	// Every path sample floods. One candidate passes through the origin
	// itself ("{mbxAgvlaV" encodes exactly 14.5995,120.9842); the other is
	// on a different continent.
	provider := stubProvider{routes: []models.RouteCandidate{
		{Summary: "EDSA", Polyline: "{mbxAgvlaV"},
		{Summary: "I-80", Polyline: "_p~iF~ps|U"},
	}}
	svc := newRouteService(stubSource{rainfall: 90}, provider)

	routes, err := svc.SafeRoutes(context.Background(), origin, destination)
	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.False(t, routes[0].Safe)
	assert.True(t, routes[1].Safe)
}

func TestSafeRoutes_NoZonesEverythingSafe(t *testing.T) {
	origin := models.Coordinate{Latitude: 14.5995, Longitude: 120.9842}
	destination := models.Coordinate{Latitude: 14.6500, Longitude: 121.0300}

	provider := stubProvider{routes: []models.RouteCandidate{
		{Summary: "A", Polyline: "_p~iF~ps|U"},
		{Summary: "B", Polyline: "??_ibE_ibE"},
	}}
	svc := newRouteService(stubSource{rainfall: 10}, provider)

	routes, err := svc.SafeRoutes(context.Background(), origin, destination)
	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.True(t, routes[0].Safe)
	assert.True(t, routes[1].Safe)
}

func TestSafeRoutes_ProviderFailure(t *testing.T) {
	origin := models.Coordinate{Latitude: 14.5995, Longitude: 120.9842}
	destination := models.Coordinate{Latitude: 14.6500, Longitude: 121.0300}

	provider := stubProvider{err: fmt.Errorf("%w: directions unavailable", route.ErrProvider)}
	svc := newRouteService(stubSource{rainfall: 10}, provider)

	_, err := svc.SafeRoutes(context.Background(), origin, destination)
	assert.ErrorIs(t, err, route.ErrProvider)
}
