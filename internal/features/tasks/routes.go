package tasks

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, handler *Handler, authMiddleware gin.HandlerFunc) {
	tasks := router.Group("/tasks")
	tasks.Use(authMiddleware)
	{
		tasks.GET("", handler.List)
		tasks.POST("", handler.Create)
		tasks.GET("/course/:courseId", handler.ListByCourse)
		tasks.GET("/:id", handler.Get)
		tasks.PUT("/:id", handler.Update)
		tasks.PATCH("/:id/toggle", handler.Toggle)
		tasks.DELETE("/:id", handler.Delete)
	}
}
