package request

import (
	"go-attendance/internal/middleware"
	"go-attendance/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, enforcer rbac.Service, rdb *redis.Client) {
	requests := rg.Group("/requests")
	requests.Use(middleware.AuthMiddleware(), middleware.ExtractUsername())
	{
		requests.POST("",
			rbac.Authorize(enforcer, "request", "create"),
			middleware.Idempotency(rdb),
			handler.Submit,
		)
		requests.GET("/mine", rbac.Authorize(enforcer, "request", "read_own"), handler.GetMine)
		requests.GET("/pending", rbac.Authorize(enforcer, "request", "read"), handler.GetPending)
		requests.GET("/resolved", rbac.Authorize(enforcer, "request", "read"), handler.GetResolved)
		requests.POST("/:id/resolve",
			rbac.Authorize(enforcer, "request", "resolve"),
			middleware.Idempotency(rdb),
			handler.Resolve,
		)
	}
}
