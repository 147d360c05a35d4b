package attendance

import (
	"go-attendance/internal/middleware"
	"go-attendance/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, enforcer rbac.Service, rdb *redis.Client) {
	attendance := rg.Group("/attendance")
	attendance.Use(middleware.AuthMiddleware(), middleware.ExtractUsername())
	{
		attendance.POST("",
			rbac.Authorize(enforcer, "attendance", "create"),
			middleware.Idempotency(rdb),
			handler.Mark,
		)
		attendance.POST("/bulk",
			rbac.Authorize(enforcer, "attendance", "create"),
			middleware.Idempotency(rdb),
			handler.MarkBulk,
		)
		attendance.GET("/unmarked", rbac.Authorize(enforcer, "attendance", "read"), handler.ListUnmarked)
		attendance.PUT("/:employee_code/:date", rbac.Authorize(enforcer, "attendance", "update"), handler.Edit)
		attendance.GET("/date/:date", rbac.Authorize(enforcer, "attendance", "read"), handler.GetByDate)
		attendance.GET("/month/:month", rbac.Authorize(enforcer, "attendance", "read"), handler.GetByMonth)
		attendance.GET("/employee/:employee_code",
			rbac.AuthorizeAny(enforcer, "attendance", "read", "read_own"),
			handler.GetByEmployee,
		)
	}
}
