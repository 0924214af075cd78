package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler) {
	// Health and readiness checks
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(handler.telemetry.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/assist", handler.Assist) // POST /api/v1/assist
		v1.POST("/rerank", handler.Rerank) // POST /api/v1/rerank

		items := v1.Group("/items")
		{
			items.GET("", handler.SearchItems)    // GET /api/v1/items?q=
			items.GET("/:code", handler.GetItem)  // GET /api/v1/items/:code
		}

		v1.POST("/estimate", handler.Estimate) // POST /api/v1/estimate
	}
}
