package models

// WeatherReading is a point-in-time weather observation for one coordinate.
// Produced per query by the environmental data source; never persisted.
type WeatherReading struct {
	RainfallMM   float64 `json:"rainfall"`
	TemperatureC float64 `json:"temperature"`
	HumidityPct  float64 `json:"humidity"`
}
