package flood

// EstimateDepth estimates standing water depth in centimeters from rainfall
// and elevation. Base depth is half the rainfall; low-lying terrain
// amplifies it up to 2x at elevation 0, and the elevation factor is clamped
// to [0,1] so terrain at or above the 100m reference height contributes
// nothing and below-datum elevations do not amplify without bound. Depth is
// monotonically non-increasing in elevation for fixed rainfall.
func EstimateDepth(rainfallMM, elevationM float64) float64 {
	base := rainfallMM * 0.5

	factor := (100 - elevationM) / 100
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}

	return base * (1 + factor)
}
