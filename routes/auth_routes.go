package routes

import (
	"github.com/aurumchit/agent_end/controllers"
	"github.com/aurumchit/agent_end/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers login, logout and session routes.
func RegisterAuthRoutes(router *gin.Engine) {
	auth := router.Group("/api/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.POST("/session/resolve", controllers.ResolveSession)
		auth.POST("/logout", middleware.AuthMiddleware(), controllers.Logout)
		auth.GET("/validate", middleware.AuthMiddleware(), controllers.ValidateToken)
	}
}
