package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/floodwatch/floodwatch-backend-go/internal/datasource"
	"github.com/floodwatch/floodwatch-backend-go/internal/middleware"
	"github.com/floodwatch/floodwatch-backend-go/internal/models"
	"github.com/floodwatch/floodwatch-backend-go/internal/service"
	"github.com/floodwatch/floodwatch-backend-go/pkg/response"
)

// defaultScanRadiusKM applies when the live endpoint omits ?radius
const defaultScanRadiusKM = 5

// FloodHandler handles flood detection and area scan requests
type FloodHandler struct {
	floods *service.FloodService
}

// NewFloodHandler creates a new flood handler
func NewFloodHandler(floods *service.FloodService) *FloodHandler {
	return &FloodHandler{floods: floods}
}

type detectRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

// Detect handles POST /api/flood/detect
func (h *FloodHandler) Detect(c *gin.Context) {
	var req detectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "latitude and longitude are required")
		return
	}

	coord := models.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}
	if err := coord.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	assessment, err := h.floods.Detect(c.Request.Context(), coord, middleware.UserEmail(c))
	if err != nil {
		if errors.Is(err, datasource.ErrUnavailable) {
			response.ServiceUnavailable(c, "Environmental data unavailable")
			return
		}
		response.InternalError(c, "Flood detection failed")
		return
	}

	c.JSON(http.StatusOK, assessment)
}

// Live handles GET /api/flood/live?lat=..&lon=..&radius=..
func (h *FloodHandler) Live(c *gin.Context) {
	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lon, err2 := strconv.ParseFloat(c.Query("lon"), 64)
	if err1 != nil || err2 != nil {
		response.BadRequest(c, "lat and lon query parameters are required")
		return
	}

	radius := float64(defaultScanRadiusKM)
	if raw := c.Query("radius"); raw != "" {
		radius, err1 = strconv.ParseFloat(raw, 64)
		if err1 != nil || radius <= 0 {
			response.BadRequest(c, "radius must be a positive number")
			return
		}
	}

	center := models.Coordinate{Latitude: lat, Longitude: lon}
	if err := center.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	scan, err := h.floods.Live(c.Request.Context(), center, radius)
	if err != nil {
		response.InternalError(c, "Live flood scan failed")
		return
	}

	c.JSON(http.StatusOK, scan)
}

// Alerts handles GET /api/alerts, returning the caller's alert history
func (h *FloodHandler) Alerts(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			response.BadRequest(c, "limit must be a positive integer")
			return
		}
		limit = n
	}

	alerts, err := h.floods.AlertHistory(c.Request.Context(), middleware.UserEmail(c), limit)
	if err != nil {
		response.InternalError(c, "Failed to load alerts")
		return
	}
	if alerts == nil {
		alerts = []models.Alert{}
	}

	c.JSON(http.StatusOK, gin.H{
		"alerts": alerts,
		"count":  len(alerts),
	})
}
