package request

import (
	"net/http"

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

func serviceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Submit(c *gin.Context) {
	employeeCode := c.GetString("employee_code")
	if employeeCode == "" {
		response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "Employee account required", nil)
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			httpErr := apperror.ToHTTP(apperror.MapValidationError(ve))
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
			return
		}
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", nil)
		return
	}

	res, err := h.service.Submit(c.Request.Context(), employeeCode, req)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) Resolve(c *gin.Context) {
	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			httpErr := apperror.ToHTTP(apperror.MapValidationError(ve))
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
			return
		}
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", nil)
		return
	}

	res, err := h.service.Resolve(c.Request.Context(), getActor(c), c.Param("id"), req)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetMine(c *gin.Context) {
	employeeCode := c.GetString("employee_code")
	if employeeCode == "" {
		response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "Employee account required", nil)
		return
	}

	res, err := h.service.GetMine(c.Request.Context(), employeeCode)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetPending(c *gin.Context) {
	res, err := h.service.GetPending(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetResolved(c *gin.Context) {
	res, err := h.service.GetResolved(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}
