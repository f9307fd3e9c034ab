package api_gateway

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cashflow-service/internal/api_gateway/handler"
	"github.com/cashflow-service/internal/api_gateway/middleware"
)

// setupRouter configures API routes and middleware for the application
func setupRouter(
	logger *slog.Logger,
	r *gin.Engine,
	entryHandler *handler.EntryHandler,
	cashFlowHandler *handler.CashFlowHandler,
) {
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CorrelationID())

	// API v1 endpoints
	v1 := r.Group("/api/v1")
	{
		cashflow := v1.Group("/cashflow")
		{
			// Manual cash entry operations
			entries := cashflow.Group("/manual-entries")
			{
				entries.POST("", entryHandler.Create)
				entries.GET("/:id", entryHandler.GetByID)
				entries.DELETE("/:id", entryHandler.Delete)
			}

			// Reporting operations
			cashflow.GET("/balance/current", cashFlowHandler.GetCurrentBalance)
			cashflow.GET("/statement", cashFlowHandler.GetStatement)
			cashflow.GET("/forecast", cashFlowHandler.GetForecast)
			cashflow.GET("/reports", cashFlowHandler.ListReports)
		}
	}

	// Health check endpoint for monitoring
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}
