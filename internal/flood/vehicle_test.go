package flood_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/floodwatch/floodwatch-backend-go/internal/flood"
	"github.com/floodwatch/floodwatch-backend-go/internal/models"
)

func TestAssessVehicleSafety_DangerCeilingOverridesClearance(t *testing.T) {
	// Above 50cm nothing crosses, including the truck (clearance 50) and
	// bus (clearance 40, margined threshold 28) whose clearance rules
	// would otherwise not even be reached.
	classes := []models.VehicleClass{
		models.VehicleCar, models.VehicleSUV, models.VehicleTruck, models.VehicleBus,
	}
	for _, class := range classes {
		verdict := flood.AssessVehicleSafety(class, 51)
		assert.False(t, verdict.Safe, "class %s", class)
		assert.Equal(t, "DANGER: No vehicles should attempt crossing", verdict.Message)
	}
}

func TestAssessVehicleSafety_MarginBelowClearance(t *testing.T) {
	// SUV clearance 30, margined threshold 21: 20cm is safe.
	verdict := flood.AssessVehicleSafety(models.VehicleSUV, 20)
	assert.True(t, verdict.Safe)
	assert.Equal(t, 30.0, verdict.ClearanceCM)
	assert.Contains(t, verdict.Message, "SUV can safely traverse")

	// 21cm is not strictly below the threshold.
	verdict = flood.AssessVehicleSafety(models.VehicleSUV, 21)
	assert.False(t, verdict.Safe)
	assert.Contains(t, verdict.Message, "WARNING: SUV should not cross")
}

func TestAssessVehicleSafety_CarShallowWater(t *testing.T) {
	// Car clearance 10, margined threshold 7.
	assert.True(t, flood.AssessVehicleSafety(models.VehicleCar, 5).Safe)
	assert.False(t, flood.AssessVehicleSafety(models.VehicleCar, 8).Safe)
}

func TestParseVehicleClass_UnknownFallsBackToCar(t *testing.T) {
	// Unrecognized classes get the most conservative clearance.
	assert.Equal(t, models.VehicleCar, models.ParseVehicleClass("hovercraft"))
	assert.Equal(t, 10.0, models.ParseVehicleClass("hovercraft").ClearanceCM())

	assert.Equal(t, models.VehicleBus, models.ParseVehicleClass(" BUS "))
	assert.Equal(t, models.VehicleTruck, models.ParseVehicleClass("Truck"))
}
