package employee

import (
	"go-attendance/internal/middleware"
	"go-attendance/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, enforcer rbac.Service, rdb *redis.Client) {
	employees := rg.Group("/employees")
	employees.Use(middleware.AuthMiddleware(), middleware.ExtractUsername())
	{
		employees.POST("",
			rbac.Authorize(enforcer, "employee", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		employees.GET("", rbac.Authorize(enforcer, "employee", "read"), handler.GetAll)
		employees.GET("/options", rbac.Authorize(enforcer, "employee", "read"), handler.GetOptions)
		employees.GET("/:employee_code", rbac.Authorize(enforcer, "employee", "read"), handler.GetByCode)
		employees.PUT("/:employee_code", rbac.Authorize(enforcer, "employee", "update"), handler.Update)
		employees.POST("/:employee_code/deactivate", rbac.Authorize(enforcer, "employee", "update"), handler.Deactivate)
		employees.POST("/:employee_code/reactivate", rbac.Authorize(enforcer, "employee", "update"), handler.Reactivate)
	}
}
