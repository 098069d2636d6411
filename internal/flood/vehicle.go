package flood

import (
	"fmt"
	"strings"

	"github.com/floodwatch/floodwatch-backend-go/internal/models"
)

// dangerDepthCM is the absolute ceiling above which no vehicle may cross,
// regardless of rated clearance
const dangerDepthCM = 50

// safetyMargin discounts the rated clearance before a crossing counts as
// safe: a vehicle is cleared only below 70% of its rated wading depth
const safetyMargin = 0.7

// AssessVehicleSafety maps a vehicle class and water depth to a crossing
// verdict. The absolute depth ceiling overrides any clearance; below it,
// the margined clearance decides. Unknown classes were already normalized
// to car by models.ParseVehicleClass.
func AssessVehicleSafety(vehicle models.VehicleClass, depthCM float64) models.SafetyVerdict {
	clearance := vehicle.ClearanceCM()
	safe := depthCM < clearance*safetyMargin

	var message string
	switch {
	case depthCM > dangerDepthCM:
		safe = false
		message = "DANGER: No vehicles should attempt crossing"
	case safe:
		message = fmt.Sprintf("%s can safely traverse (depth: %.1fcm)", strings.ToUpper(string(vehicle)), depthCM)
	default:
		message = fmt.Sprintf("WARNING: %s should not cross (depth: %.1fcm)", strings.ToUpper(string(vehicle)), depthCM)
	}

	return models.SafetyVerdict{
		Safe:        safe,
		Message:     message,
		ClearanceCM: clearance,
	}
}
