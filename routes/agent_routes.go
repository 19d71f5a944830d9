package routes

import (
	"github.com/aurumchit/agent_end/controllers"
	"github.com/aurumchit/agent_end/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAgentRoutes registers agent profile routes.
func RegisterAgentRoutes(router *gin.Engine) {
	agent := router.Group("/api/agent", middleware.AuthMiddleware())
	{
		agent.GET("/profile", controllers.GetProfile)
		agent.GET("/profile-image", controllers.GetProfileImage)
		agent.PUT("/profile-image", controllers.SetProfileImage)
	}
}
