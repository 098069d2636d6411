package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floodwatch/floodwatch-backend-go/internal/models"
	"github.com/floodwatch/floodwatch-backend-go/internal/route"
)

// testPolyline decodes to (38.5,-120.2), (40.7,-120.95), (43.252,-126.453)
const testPolyline = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"

func zoneAt(lat, lon float64) models.FloodAssessment {
	return models.FloodAssessment{Latitude: lat, Longitude: lon, FloodRisk: 0.8, DepthCM: 60}
}

func TestAnnotate_ZoneOnRouteMarksUnsafe(t *testing.T) {
	filter := route.NewSafetyFilter(200)

	routes := filter.Annotate(
		[]models.RouteCandidate{{Summary: "I-80", Polyline: testPolyline}},
		[]models.FloodAssessment{zoneAt(38.5, -120.2)},
	)
	require.Len(t, routes, 1)
	assert.False(t, routes[0].Safe)
}

func TestAnnotate_ZoneNearSegmentMarksUnsafe(t *testing.T) {
	filter := route.NewSafetyFilter(200)

	// Between the first two vertices, just off the straight segment: the
	// vertex check alone would miss it.
	mid := zoneAt(39.6, -120.575)
	routes := filter.Annotate(
		[]models.RouteCandidate{{Summary: "I-80", Polyline: testPolyline}},
		[]models.FloodAssessment{mid},
	)
	require.Len(t, routes, 1)
	assert.False(t, routes[0].Safe)
}

func TestAnnotate_DistantZoneStaysSafe(t *testing.T) {
	filter := route.NewSafetyFilter(200)

	routes := filter.Annotate(
		[]models.RouteCandidate{{Summary: "I-80", Polyline: testPolyline}},
		[]models.FloodAssessment{zoneAt(14.5995, 120.9842)},
	)
	require.Len(t, routes, 1)
	assert.True(t, routes[0].Safe)
}

func TestAnnotate_NoZonesAllSafe(t *testing.T) {
	filter := route.NewSafetyFilter(200)

	routes := filter.Annotate(
		[]models.RouteCandidate{
			{Summary: "A", Polyline: testPolyline},
			{Summary: "B", Polyline: "not-a-polyline!"},
		},
		nil,
	)
	require.Len(t, routes, 2)
	assert.True(t, routes[0].Safe)
	assert.True(t, routes[1].Safe)
}

func TestAnnotate_UndecodablePolylineMarksUnsafe(t *testing.T) {
	filter := route.NewSafetyFilter(200)

	routes := filter.Annotate(
		[]models.RouteCandidate{{Summary: "mystery", Polyline: "_p~iF"}},
		[]models.FloodAssessment{zoneAt(14.5995, 120.9842)},
	)
	require.Len(t, routes, 1)
	assert.False(t, routes[0].Safe)
}

func TestAnnotate_MixedRoutes(t *testing.T) {
	filter := route.NewSafetyFilter(200)

	// A short polyline far from the zone vs the flooded reference route.
	// (0,0) -> (1,1) encoded.
	safePolyline := "??_ibE_ibE"
	routes := filter.Annotate(
		[]models.RouteCandidate{
			{Summary: "flooded", Polyline: testPolyline},
			{Summary: "clear", Polyline: safePolyline},
		},
		[]models.FloodAssessment{zoneAt(38.5, -120.2)},
	)
	require.Len(t, routes, 2)
	assert.False(t, routes[0].Safe)
	assert.True(t, routes[1].Safe)
}
