package flood

import "github.com/floodwatch/floodwatch-backend-go/internal/models"

// Thresholds that turn a continuous risk estimate into discrete decisions.
// Area inclusion and alerting are distinct policies and must stay that way:
// a zone can appear on a live map (risk 0.6) without paging anyone.
const (
	// AreaInclusionThreshold is the minimum risk for a point assessment to
	// count as a flood zone in an area scan or path scan.
	AreaInclusionThreshold = 0.5

	// AlertThreshold is the risk above which (strictly) a detection
	// triggers a user alert.
	AlertThreshold = 0.7
)

// RiskScorer maps a weather reading to a flood-risk probability in [0,1].
// The engine depends only on this interface so a model-backed scorer can
// replace the rainfall formula without touching detection, vehicle, or
// route policy.
type RiskScorer interface {
	ScoreRisk(weather models.WeatherReading) float64
}

// RainfallScorer is the baseline scorer: a linear ramp on rainfall that
// saturates at 100mm.
type RainfallScorer struct{}

// ScoreRisk returns min(rainfall/100, 1), clamped to [0,1] for any input
func (RainfallScorer) ScoreRisk(weather models.WeatherReading) float64 {
	risk := weather.RainfallMM / 100
	if risk < 0 {
		return 0
	}
	if risk > 1 {
		return 1
	}
	return risk
}

var _ RiskScorer = RainfallScorer{}
