package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/floodwatch/floodwatch-backend-go/internal/handler"
	"github.com/floodwatch/floodwatch-backend-go/internal/middleware"
)

// SetupRouter wires middleware, handlers, and routes
func SetupRouter(
	verifier middleware.TokenVerifier,
	auth *handler.AuthHandler,
	floods *handler.FloodHandler,
	vehicles *handler.VehicleHandler,
	routes *handler.RouteHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Flood Detection API is running",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.Use(middleware.RateLimit(120, time.Minute))
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", auth.Signup)
			authGroup.POST("/signin", auth.Signin)
		}

		protected := api.Group("")
		protected.Use(middleware.Auth(verifier))
		{
			protected.POST("/flood/detect", floods.Detect)
			protected.GET("/flood/live", floods.Live)
			protected.GET("/alerts", floods.Alerts)
			protected.POST("/route/alternative", routes.Alternative)
			protected.POST("/vehicle/safety", vehicles.Safety)
		}
	}

	return r
}
