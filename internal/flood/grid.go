package flood

import (
	"math"

	"github.com/floodwatch/floodwatch-backend-go/internal/models"
	"github.com/floodwatch/floodwatch-backend-go/internal/spatial"
)

const (
	// gridStepDegrees is the grid spacing, roughly 1km of latitude
	gridStepDegrees = 0.01

	// MaxGridPoints caps every scan's fan-out to the data source
	MaxGridPoints = 50
)

// GenerateGrid produces the sample coordinates for an area scan: a
// row-major sweep of dlat, dlon over [-radiusKM*step, radiusKM*step) in
// step increments, truncated to the first MaxGridPoints. Output order is
// deterministic for equal inputs.
//
// The swept region is a square, not a disc: radiusKM acts as a
// bounding-box half-width. Callers relying on a true radius must filter
// by distance themselves.
func GenerateGrid(center models.Coordinate, radiusKM float64) []models.Coordinate {
	if radiusKM <= 0 {
		return nil
	}

	steps := int(math.Ceil(2 * radiusKM))
	points := make([]models.Coordinate, 0, MaxGridPoints)

	for i := 0; i < steps; i++ {
		dlat := (float64(i) - radiusKM) * gridStepDegrees
		for j := 0; j < steps; j++ {
			dlon := (float64(j) - radiusKM) * gridStepDegrees
			points = append(points, models.Coordinate{
				Latitude:  center.Latitude + dlat,
				Longitude: center.Longitude + dlon,
			})
			if len(points) == MaxGridPoints {
				return points
			}
		}
	}

	return points
}

// GeneratePath produces up to MaxGridPoints sample coordinates along the
// great-circle path from origin to destination, spaced roughly one grid
// step (~1km) apart. Both endpoints are always included.
func GeneratePath(origin, destination models.Coordinate) []models.Coordinate {
	distM := haversineMeters(origin, destination)

	segments := int(math.Ceil(distM / 1000))
	if segments < 1 {
		segments = 1
	}
	if segments > MaxGridPoints-1 {
		segments = MaxGridPoints - 1
	}

	points := make([]models.Coordinate, 0, segments+1)
	for i := 0; i <= segments; i++ {
		f := float64(i) / float64(segments)
		points = append(points, interpolateCoord(f, origin, destination))
	}
	return points
}

func haversineMeters(a, b models.Coordinate) float64 {
	return spatial.HaversineDistance(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

func interpolateCoord(f float64, a, b models.Coordinate) models.Coordinate {
	p := spatial.Interpolate(f,
		spatial.Point{Lat: a.Latitude, Lon: a.Longitude},
		spatial.Point{Lat: b.Latitude, Lon: b.Longitude})
	return models.Coordinate{Latitude: p.Lat, Longitude: p.Lon}
}
