package reporterrors

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrInvalidDate  = apperror.New(apperror.CodeInvalidInput, "Date must be in YYYY-MM-DD format", http.StatusBadRequest)
	ErrInvalidMonth = apperror.New(apperror.CodeInvalidInput, "Month must be in YYYY-MM format", http.StatusBadRequest)
	ErrInvalidRange = apperror.New(apperror.CodeInvalidInput, "Start date must not be after end date", http.StatusBadRequest)
)
