package routes

import (
	"github.com/aurumchit/agent_end/controllers"
	"github.com/aurumchit/agent_end/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterDashboardRoutes registers the aggregated metrics route.
func RegisterDashboardRoutes(router *gin.Engine) {
	dashboard := router.Group("/api/dashboard", middleware.AuthMiddleware())
	{
		dashboard.GET("/metrics", controllers.GetDashboardMetrics)
	}
}
