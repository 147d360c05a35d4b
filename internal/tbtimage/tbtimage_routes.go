package tbtimage

import (
	"go-attendance/internal/middleware"
	"go-attendance/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, enforcer rbac.Service) {
	images := rg.Group("/tbt-images")
	images.Use(middleware.AuthMiddleware(), middleware.ExtractUsername())
	{
		images.POST("", rbac.Authorize(enforcer, "tbt_image", "create"), handler.Upload)
		images.GET("/date/:date", rbac.Authorize(enforcer, "tbt_image", "read"), handler.ListByDate)
		images.DELETE("/:id", rbac.Authorize(enforcer, "tbt_image", "delete"), handler.Delete)
		images.DELETE("/date/:date", rbac.Authorize(enforcer, "tbt_image", "delete"), handler.DeleteAllByDate)
	}
}
