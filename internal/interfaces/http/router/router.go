package router

import (
	"github.com/gin-gonic/gin"

	"ecomdash/internal/interfaces/http/handler"
)

func RegisterRoutes(r *gin.Engine, dashboardHandler *handler.DashboardHandler) {
	api := r.Group("/api")
	{
		api.GET("/health", dashboardHandler.Health)
		api.GET("/states", dashboardHandler.GetStates)
		api.GET("/dashboard", dashboardHandler.GetDashboard)
	}
}
