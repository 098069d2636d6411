package flood_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/floodwatch/floodwatch-backend-go/internal/flood"
	"github.com/floodwatch/floodwatch-backend-go/internal/models"
)

func TestRainfallScorer_LinearRamp(t *testing.T) {
	scorer := flood.RainfallScorer{}

	tests := []struct {
		rainfall float64
		want     float64
	}{
		{0, 0},
		{25, 0.25},
		{50, 0.5},
		{99, 0.99},
		{100, 1},
		{150, 1},
		{100000, 1},
	}

	for _, tt := range tests {
		got := scorer.ScoreRisk(models.WeatherReading{RainfallMM: tt.rainfall})
		assert.InDelta(t, tt.want, got, 1e-9, "rainfall %f", tt.rainfall)
	}
}

func TestRainfallScorer_AlwaysInUnitInterval(t *testing.T) {
	scorer := flood.RainfallScorer{}

	for _, rainfall := range []float64{-10, 0, 0.001, 42, 100, 1e9} {
		risk := scorer.ScoreRisk(models.WeatherReading{RainfallMM: rainfall})
		assert.GreaterOrEqual(t, risk, 0.0)
		assert.LessOrEqual(t, risk, 1.0)
	}
}
