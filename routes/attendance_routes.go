package routes

import (
	"github.com/aurumchit/agent_end/controllers"
	"github.com/aurumchit/agent_end/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAttendanceRoutes registers the attendance flow routes.
func RegisterAttendanceRoutes(router *gin.Engine) {
	attendance := router.Group("/api/attendance", middleware.AuthMiddleware())
	{
		attendance.POST("/check", controllers.CheckAttendance)
		attendance.POST("/punch", controllers.PunchAttendance)
		attendance.GET("/next-status", controllers.NextAttendanceStatus)
		attendance.GET("/history", controllers.ListAttendanceHistory)
	}
}
