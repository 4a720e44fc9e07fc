package courses

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, handler *Handler, authMiddleware gin.HandlerFunc) {
	courses := router.Group("/courses")
	courses.Use(authMiddleware)
	{
		courses.GET("", handler.List)
		courses.POST("", handler.Create)
		courses.GET("/:id", handler.Get)
		courses.PUT("/:id", handler.Update)
		courses.DELETE("/:id", handler.Delete)
	}
}
