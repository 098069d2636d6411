package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
)

// Point represents a 2D point with latitude and longitude
type Point struct {
	Lat float64
	Lon float64
}

// HaversineDistance calculates the great-circle distance between two points in meters
// using the Haversine formula
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// Distance calculates the great-circle distance between two points in meters
func Distance(a, b Point) float64 {
	return HaversineDistance(a.Lat, a.Lon, b.Lat, b.Lon)
}

// Interpolate returns the point at fraction f (0..1) along the great-circle
// path from a to b, using S2 interpolation
func Interpolate(f float64, a, b Point) Point {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lon)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lon)

	mid := s2.Interpolate(f, s2.PointFromLatLng(p1), s2.PointFromLatLng(p2))
	midLatLng := s2.LatLngFromPoint(mid)

	return Point{Lat: midLatLng.Lat.Degrees(), Lon: midLatLng.Lng.Degrees()}
}

// Midpoint calculates the midpoint between two points
func Midpoint(a, b Point) Point {
	return Interpolate(0.5, a, b)
}

// DistanceToSegment returns the minimum distance in meters from point p to
// the great-circle segment between a and b
func DistanceToSegment(p, a, b Point) float64 {
	x := s2.PointFromLatLng(s2.LatLngFromDegrees(p.Lat, p.Lon))
	sa := s2.PointFromLatLng(s2.LatLngFromDegrees(a.Lat, a.Lon))
	sb := s2.PointFromLatLng(s2.LatLngFromDegrees(b.Lat, b.Lon))
	return s2.DistanceFromSegment(x, sa, sb).Radians() * EarthRadiusMeters
}

// MinDistanceToPath returns the minimum distance in meters from point p to
// a path given as an ordered sequence of vertices. Segments are considered,
// not just vertices, so a path passing close between two distant vertices
// is still detected.
func MinDistanceToPath(p Point, path []Point) float64 {
	if len(path) == 0 {
		return math.Inf(1)
	}
	if len(path) == 1 {
		return Distance(p, path[0])
	}

	min := math.Inf(1)
	for i := 1; i < len(path); i++ {
		if d := DistanceToSegment(p, path[i-1], path[i]); d < min {
			min = d
		}
	}
	return min
}

// PathLength calculates the total length of a path (sequence of points) in meters
func PathLength(points []Point) float64 {
	if len(points) < 2 {
		return 0
	}

	var totalDist float64
	for i := 1; i < len(points); i++ {
		totalDist += Distance(points[i-1], points[i])
	}

	return totalDist
}
