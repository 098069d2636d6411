package route

import (
	"log"

	"github.com/floodwatch/floodwatch-backend-go/internal/models"
	"github.com/floodwatch/floodwatch-backend-go/internal/spatial"
)

// SafetyFilter annotates candidate routes against known flood zones.
// A route is unsafe when its decoded path passes within proximityM meters
// of any flood zone. Segments count, not just decoded vertices, so a
// straight stretch crossing a flooded area between two sparse polyline
// points is still flagged.
type SafetyFilter struct {
	proximityM float64
}

// NewSafetyFilter creates a filter with the given proximity radius in meters
func NewSafetyFilter(proximityM float64) *SafetyFilter {
	return &SafetyFilter{proximityM: proximityM}
}

// Annotate sets the Safe flag on every candidate. Routes whose polyline
// fails to decode are marked unsafe rather than dropped or trusted: an
// unreadable geometry cannot be declared clear.
func (f *SafetyFilter) Annotate(routes []models.RouteCandidate, zones []models.FloodAssessment) []models.RouteCandidate {
	annotated := make([]models.RouteCandidate, len(routes))
	for i, r := range routes {
		r.Safe = f.routeSafe(r, zones)
		annotated[i] = r
	}
	return annotated
}

func (f *SafetyFilter) routeSafe(r models.RouteCandidate, zones []models.FloodAssessment) bool {
	if len(zones) == 0 {
		return true
	}

	path, err := spatial.DecodePolyline(r.Polyline)
	if err != nil || len(path) == 0 {
		log.Printf("marking route %q unsafe: undecodable polyline: %v", r.Summary, err)
		return false
	}

	for _, zone := range zones {
		p := spatial.Point{Lat: zone.Latitude, Lon: zone.Longitude}
		if spatial.MinDistanceToPath(p, path) <= f.proximityM {
			return false
		}
	}
	return true
}
