package employeeerrors

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"email is already registered",
		http.StatusConflict,
	)
	ErrUsernameAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"username is already taken",
		http.StatusConflict,
	)
	ErrEmployeeCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"employee code already exists",
		http.StatusConflict,
	)
	ErrInvalidJoinDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid join_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrEmployeeInactive = apperror.New(
		apperror.CodeInvalidState,
		"employee has been deactivated",
		http.StatusConflict,
	)
)
