package routes

import (
	"github.com/aurumchit/agent_end/repository"
	"github.com/aurumchit/agent_end/utils"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all application routes.
func RegisterRoutes(router *gin.Engine) {
	RegisterAuthRoutes(router)
	RegisterDashboardRoutes(router)
	RegisterAttendanceRoutes(router)
	RegisterAgentRoutes(router)

	// health check
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// database status
	router.GET("/api/db-status", func(c *gin.Context) {
		status, err := repository.GetDatabaseStatus()
		if err != nil {
			utils.ErrorResponse(c, "database status failed: "+err.Error(), 500)
			return
		}
		c.JSON(200, status)
	})
}
