package editlog

import (
	"go-attendance/internal/middleware"
	"go-attendance/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, enforcer rbac.Service) {
	logs := rg.Group("/edit-logs")
	logs.Use(middleware.AuthMiddleware(), middleware.ExtractUsername())
	{
		logs.GET("", rbac.Authorize(enforcer, "editlog", "read"), handler.GetRecent)
		logs.GET("/employee/:employee_code", rbac.Authorize(enforcer, "editlog", "read"), handler.GetByEmployee)
	}
}
