package tbtimageerrors

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrImageQuotaExceeded = apperror.New(apperror.CodeConflict, "Maximum of 2 images per date reached", http.StatusConflict)
	ErrImageNotFound      = apperror.New(apperror.CodeNotFound, "Image not found", http.StatusNotFound)
	ErrInvalidDate        = apperror.New(apperror.CodeInvalidInput, "Date must be in YYYY-MM-DD format", http.StatusBadRequest)
	ErrEmptyImageData     = apperror.New(apperror.CodeInvalidInput, "Image payload must not be empty", http.StatusBadRequest)
)
