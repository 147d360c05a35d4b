package report

import (
	"go-attendance/internal/middleware"
	"go-attendance/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, enforcer rbac.Service) {
	reports := rg.Group("/reports")
	reports.Use(middleware.AuthMiddleware(), middleware.ExtractUsername())
	{
		reports.GET("/employee/:employee_code",
			rbac.AuthorizeAny(enforcer, "report", "read", "read_own"),
			handler.EmployeeSummary,
		)
		reports.GET("/departments", rbac.Authorize(enforcer, "report", "read"), handler.DepartmentAnalytics)
		reports.GET("/monthly/:month", rbac.Authorize(enforcer, "report", "read"), handler.MonthlyReport)
	}
}
