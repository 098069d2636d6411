package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/floodwatch/floodwatch-backend-go/internal/models"
	"github.com/floodwatch/floodwatch-backend-go/internal/route"
	"github.com/floodwatch/floodwatch-backend-go/internal/service"
	"github.com/floodwatch/floodwatch-backend-go/pkg/response"
)

// RouteHandler handles alternative-route requests
type RouteHandler struct {
	routes *service.RouteService
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(routes *service.RouteService) *RouteHandler {
	return &RouteHandler{routes: routes}
}

type routeRequest struct {
	Origin      models.Waypoint `json:"origin" binding:"required"`
	Destination models.Waypoint `json:"destination" binding:"required"`
}

// Alternative handles POST /api/route/alternative. A directions-provider
// failure degrades to a 200 response carrying an explicit error marker
// instead of fabricated routes.
func (h *RouteHandler) Alternative(c *gin.Context) {
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "origin and destination are required as \"lat,lon\" or {lat, lon}")
		return
	}

	candidates, err := h.routes.SafeRoutes(c.Request.Context(), req.Origin.Coordinate, req.Destination.Coordinate)
	if err != nil {
		if errors.Is(err, route.ErrProvider) {
			c.JSON(http.StatusOK, []gin.H{{"error": err.Error()}})
			return
		}
		response.InternalError(c, "Route lookup failed")
		return
	}
	if candidates == nil {
		candidates = []models.RouteCandidate{}
	}

	c.JSON(http.StatusOK, candidates)
}
