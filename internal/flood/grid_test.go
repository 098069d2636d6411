package flood_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floodwatch/floodwatch-backend-go/internal/flood"
	"github.com/floodwatch/floodwatch-backend-go/internal/models"
)

var manila = models.Coordinate{Latitude: 14.5995, Longitude: 120.9842}

func TestGenerateGrid_CappedAtFifty(t *testing.T) {
	for _, radius := range []float64{0.5, 1, 4, 5, 25, 1000} {
		points := flood.GenerateGrid(manila, radius)
		assert.LessOrEqual(t, len(points), flood.MaxGridPoints, "radius %f", radius)
		assert.NotEmpty(t, points, "radius %f", radius)
	}

	// A radius producing >= 50 raw candidates returns exactly 50.
	assert.Len(t, flood.GenerateGrid(manila, 5), 50)
}

func TestGenerateGrid_Deterministic(t *testing.T) {
	a := flood.GenerateGrid(manila, 5)
	b := flood.GenerateGrid(manila, 5)
	assert.Equal(t, a, b, "same inputs must yield the identical sequence")
}

func TestGenerateGrid_RowMajorSweep(t *testing.T) {
	points := flood.GenerateGrid(manila, 2)
	require.Len(t, points, 16)

	// First point is the bottom-left corner of the square sweep.
	assert.InDelta(t, manila.Latitude-2*0.01, points[0].Latitude, 1e-9)
	assert.InDelta(t, manila.Longitude-2*0.01, points[0].Longitude, 1e-9)

	// Longitude advances before latitude does.
	assert.InDelta(t, points[0].Latitude, points[1].Latitude, 1e-9)
	assert.Greater(t, points[1].Longitude, points[0].Longitude)
	assert.Greater(t, points[4].Latitude, points[0].Latitude)
}

func TestGenerateGrid_NonPositiveRadius(t *testing.T) {
	assert.Empty(t, flood.GenerateGrid(manila, 0))
	assert.Empty(t, flood.GenerateGrid(manila, -3))
}

func TestGeneratePath_IncludesEndpointsAndCaps(t *testing.T) {
	origin := models.Coordinate{Latitude: 14.5995, Longitude: 120.9842}
	destination := models.Coordinate{Latitude: 14.6500, Longitude: 121.0300}

	points := flood.GeneratePath(origin, destination)
	require.NotEmpty(t, points)
	assert.LessOrEqual(t, len(points), flood.MaxGridPoints)

	assert.InDelta(t, origin.Latitude, points[0].Latitude, 1e-6)
	assert.InDelta(t, origin.Longitude, points[0].Longitude, 1e-6)
	last := points[len(points)-1]
	assert.InDelta(t, destination.Latitude, last.Latitude, 1e-6)
	assert.InDelta(t, destination.Longitude, last.Longitude, 1e-6)
}

func TestGeneratePath_LongRouteStaysBounded(t *testing.T) {
	origin := models.Coordinate{Latitude: 14.5995, Longitude: 120.9842}
	destination := models.Coordinate{Latitude: 16.4023, Longitude: 120.5960}

	points := flood.GeneratePath(origin, destination)
	assert.LessOrEqual(t, len(points), flood.MaxGridPoints)
}

func TestGeneratePath_SamePoint(t *testing.T) {
	points := flood.GeneratePath(manila, manila)
	require.NotEmpty(t, points)
	assert.LessOrEqual(t, len(points), 2)
}
