package employee

import (
	"net/http"
	"strconv"

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

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			httpErr := apperror.ToHTTP(apperror.MapValidationError(ve))
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
			return
		}
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", nil)
		return
	}

	res, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	res, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	total := len(res)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	meta := response.NewPaginationMeta(int64(total), page, pageSize)
	response.Success(c, http.StatusOK, res[start:end], &meta)
}

func (h *Handler) GetOptions(c *gin.Context) {
	res, err := h.service.GetOptions(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetByCode(c *gin.Context) {
	employeeCode := c.Param("employee_code")

	res, err := h.service.GetByCode(c.Request.Context(), employeeCode)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Update(c *gin.Context) {
	employeeCode := c.Param("employee_code")

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			httpErr := apperror.ToHTTP(apperror.MapValidationError(ve))
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
			return
		}
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", nil)
		return
	}

	res, err := h.service.Update(c.Request.Context(), employeeCode, req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Deactivate(c *gin.Context) {
	employeeCode := c.Param("employee_code")

	if err := h.service.Deactivate(c.Request.Context(), employeeCode); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"employee_code": employeeCode, "is_active": false}, nil)
}

func (h *Handler) Reactivate(c *gin.Context) {
	employeeCode := c.Param("employee_code")

	if err := h.service.Reactivate(c.Request.Context(), employeeCode); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"employee_code": employeeCode, "is_active": true}, nil)
}
