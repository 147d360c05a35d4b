package tbtimage

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

func (h *Handler) Upload(c *gin.Context) {
	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			httpErr := apperror.ToHTTP(apperror.MapValidationError(ve))
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
			return
		}
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", nil)
		return
	}

	res, err := h.service.Upload(c.Request.Context(), getActor(c), req)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) ListByDate(c *gin.Context) {
	res, err := h.service.ListByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id"), "deleted": true}, nil)
}

func (h *Handler) DeleteAllByDate(c *gin.Context) {
	res, err := h.service.DeleteAllByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}
