package flood_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/floodwatch/floodwatch-backend-go/internal/flood"
)

func TestEstimateDepth_HighElevationDampens(t *testing.T) {
	// At or above the 100m reference height the elevation factor is zero,
	// so depth is exactly half the rainfall.
	for _, elevation := range []float64{100, 150, 1000} {
		assert.Equal(t, 40.0, flood.EstimateDepth(80, elevation), "elevation %f", elevation)
	}
}

func TestEstimateDepth_LowElevationAmplifies(t *testing.T) {
	// At elevation 0 the factor reaches 1 and depth doubles. Below-datum
	// elevations clamp to the same factor instead of growing without bound.
	assert.Equal(t, 80.0, flood.EstimateDepth(80, 0))
	assert.Equal(t, 80.0, flood.EstimateDepth(80, -25))
	assert.Equal(t, 80.0, flood.EstimateDepth(80, -500))
}

func TestEstimateDepth_MidElevation(t *testing.T) {
	// factor = (100-50)/100 = 0.5 -> depth = 40 * 1.5
	assert.InDelta(t, 60.0, flood.EstimateDepth(80, 50), 1e-9)
}

func TestEstimateDepth_MonotonicInElevation(t *testing.T) {
	prev := flood.EstimateDepth(120, -50)
	for elevation := -40.0; elevation <= 200; elevation += 10 {
		depth := flood.EstimateDepth(120, elevation)
		assert.LessOrEqual(t, depth, prev, "depth must not increase with elevation")
		assert.GreaterOrEqual(t, depth, 0.0)
		prev = depth
	}
}

func TestEstimateDepth_ZeroRainfall(t *testing.T) {
	assert.Equal(t, 0.0, flood.EstimateDepth(0, -10))
	assert.Equal(t, 0.0, flood.EstimateDepth(0, 50))
}
