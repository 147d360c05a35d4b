package requesterrors

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrEmptyJustification     = apperror.New(apperror.CodeInvalidInput, "Request message must not be blank", http.StatusBadRequest)
	ErrDuplicateActiveRequest = apperror.New(apperror.CodeConflict, "An active request already exists for this date", http.StatusConflict)
	ErrAlreadyPresent         = apperror.New(apperror.CodeConflict, "Attendance is already marked present for this date", http.StatusConflict)
	ErrRequestNotFound        = apperror.New(apperror.CodeNotFound, "Attendance request not found", http.StatusNotFound)
	ErrAlreadyResolved        = apperror.New(apperror.CodeInvalidState, "Request has already been resolved", http.StatusConflict)
	ErrInvalidDate            = apperror.New(apperror.CodeInvalidInput, "Date must be in YYYY-MM-DD format", http.StatusBadRequest)
	ErrRequestDateNotPast     = apperror.New(apperror.CodeInvalidInput, "Request date must be before today", http.StatusBadRequest)
	ErrInvalidDecision        = apperror.New(apperror.CodeInvalidInput, "Decision must be APPROVE or REJECT", http.StatusBadRequest)
)
