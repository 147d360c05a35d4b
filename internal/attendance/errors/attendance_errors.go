package attendanceerrors

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrDuplicateRecord = apperror.New(apperror.CodeConflict, "Attendance already marked for this employee and date", http.StatusConflict)
	ErrRecordNotFound  = apperror.New(apperror.CodeNotFound, "Attendance record not found", http.StatusNotFound)
	ErrReasonRequired  = apperror.New(apperror.CodeInvalidInput, "Edit reason must not be blank", http.StatusBadRequest)
	ErrNoOpEdit        = apperror.New(apperror.CodeConflict, "Record already has the requested status", http.StatusConflict)
	ErrInvalidStatus   = apperror.New(apperror.CodeInvalidInput, "Status must be PRESENT or ABSENT", http.StatusBadRequest)
	ErrInvalidDate     = apperror.New(apperror.CodeInvalidInput, "Date must be in YYYY-MM-DD format", http.StatusBadRequest)
	ErrFutureDate      = apperror.New(apperror.CodeInvalidInput, "Attendance date cannot be in the future", http.StatusBadRequest)
	ErrInvalidRange    = apperror.New(apperror.CodeInvalidInput, "Start date must not be after end date", http.StatusBadRequest)
)
