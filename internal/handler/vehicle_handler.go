package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/floodwatch/floodwatch-backend-go/internal/datasource"
	"github.com/floodwatch/floodwatch-backend-go/internal/models"
	"github.com/floodwatch/floodwatch-backend-go/internal/service"
	"github.com/floodwatch/floodwatch-backend-go/pkg/response"
)

// VehicleHandler handles vehicle crossing safety requests
type VehicleHandler struct {
	floods *service.FloodService
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(floods *service.FloodService) *VehicleHandler {
	return &VehicleHandler{floods: floods}
}

type vehicleSafetyRequest struct {
	VehicleType string        `json:"vehicle_type" binding:"required"`
	Location    models.LatLon `json:"location" binding:"required"`
}

// Safety handles POST /api/vehicle/safety
func (h *VehicleHandler) Safety(c *gin.Context) {
	var req vehicleSafetyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "vehicle_type and location are required")
		return
	}

	location := models.Coordinate{Latitude: req.Location.Lat, Longitude: req.Location.Lon}
	if err := location.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	depth, verdict, err := h.floods.VehicleSafety(c.Request.Context(), req.VehicleType, location)
	if err != nil {
		if errors.Is(err, datasource.ErrUnavailable) {
			response.ServiceUnavailable(c, "Environmental data unavailable")
			return
		}
		response.InternalError(c, "Vehicle safety check failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"depth_cm":       depth,
		"safe":           verdict.Safe,
		"recommendation": verdict.Message,
	})
}
