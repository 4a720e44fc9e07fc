package auth

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the auth endpoints. rateLimit guards the
// credential endpoints; authMiddleware guards the profile endpoints.
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, authMiddleware, rateLimit gin.HandlerFunc) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", rateLimit, handler.Register)
		auth.POST("/login", rateLimit, handler.Login)
		auth.POST("/google", rateLimit, handler.GoogleLogin)

		auth.GET("/profile", authMiddleware, handler.GetProfile)
		auth.PUT("/profile", authMiddleware, handler.UpdateProfile)
		auth.POST("/profile/avatar", authMiddleware, handler.UploadAvatar)
	}
}
