package models

import "time"

// FloodAssessment is the result of a single point query: risk, estimated
// depth, and the weather snapshot that produced them. Created fresh on
// every query and never mutated afterwards.
type FloodAssessment struct {
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	FloodRisk float64        `json:"flood_risk"`
	DepthCM   float64        `json:"depth_cm"`
	Timestamp time.Time      `json:"timestamp"`
	Weather   WeatherReading `json:"weather"`
}

// Coordinate returns the assessed point.
func (a FloodAssessment) Coordinate() Coordinate {
	return Coordinate{Latitude: a.Latitude, Longitude: a.Longitude}
}

// AreaScan aggregates point assessments over a grid around a center.
// FloodZones holds only assessments above the area-inclusion threshold.
// SkippedPoints counts grid points whose data source call failed; the
// scan continues past individual failures rather than aborting.
type AreaScan struct {
	Center             LatLon            `json:"center"`
	RadiusKM           float64           `json:"radius_km"`
	FloodZones         []FloodAssessment `json:"flood_zones"`
	TotalAffectedAreas int               `json:"total_affected_areas"`
	SkippedPoints      int               `json:"skipped_points"`
}
