package report

import (
	"net/http"

	"go-attendance/internal/rbac"
	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func serviceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) EmployeeSummary(c *gin.Context) {
	employeeCode := c.Param("employee_code")

	// Role EMPLOYEE hanya boleh melihat ringkasan miliknya sendiri
	if c.GetString("role") == rbac.RoleEmployee && c.GetString("employee_code") != employeeCode {
		response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "Access denied", nil)
		return
	}

	res, err := h.service.EmployeeSummary(
		c.Request.Context(),
		employeeCode,
		c.Query("from"),
		c.Query("to"),
	)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) DepartmentAnalytics(c *gin.Context) {
	res, err := h.service.DepartmentAnalytics(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) MonthlyReport(c *gin.Context) {
	res, err := h.service.MonthlyReport(c.Request.Context(), c.Param("month"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}
