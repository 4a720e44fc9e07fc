package schedule

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, handler *Handler, authMiddleware gin.HandlerFunc) {
	schedule := router.Group("/schedule")
	schedule.Use(authMiddleware)
	{
		schedule.GET("", handler.List)
		schedule.POST("", handler.Create)
		schedule.GET("/export.ics", handler.ExportICS)
		schedule.POST("/sync", handler.Sync)
		schedule.POST("/sync-google", handler.Sync)
		schedule.GET("/:id", handler.Get)
		schedule.PUT("/:id", handler.Update)
		schedule.DELETE("/:id", handler.Delete)
	}
}
