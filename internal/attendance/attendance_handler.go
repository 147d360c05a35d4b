package attendance

import (
	"net/http"

	"go-attendance/internal/rbac"
	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func getActor(c *gin.Context) string {
	if actor := c.GetString("username_validated"); actor != "" {
		return actor
	}
	return c.GetString("username")
}

func bindError(c *gin.Context, err error) {
	if ve, ok := err.(validator.ValidationErrors); ok {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(ve))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", nil)
}

func serviceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Mark(c *gin.Context) {
	var req MarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	res, err := h.service.Mark(c.Request.Context(), getActor(c), req)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) MarkBulk(c *gin.Context) {
	var req MarkBulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	res, err := h.service.MarkBulk(c.Request.Context(), getActor(c), req)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) ListUnmarked(c *gin.Context) {
	date := c.Query("date")

	res, err := h.service.ListUnmarked(c.Request.Context(), date)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Edit(c *gin.Context) {
	var req EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	res, err := h.service.Edit(
		c.Request.Context(),
		getActor(c),
		c.Param("employee_code"),
		c.Param("date"),
		req,
	)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetByDate(c *gin.Context) {
	res, err := h.service.GetByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetByEmployee(c *gin.Context) {
	employeeCode := c.Param("employee_code")

	// Role EMPLOYEE hanya boleh melihat record miliknya sendiri
	if c.GetString("role") == rbac.RoleEmployee && c.GetString("employee_code") != employeeCode {
		response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "Access denied", nil)
		return
	}

	res, err := h.service.GetByEmployee(
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

func (h *Handler) GetByMonth(c *gin.Context) {
	res, err := h.service.GetByMonth(c.Request.Context(), c.Param("month"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}
