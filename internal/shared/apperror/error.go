package apperror

import "fmt"

// AppError adalah error aplikasi dengan kode stabil dan status HTTP.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error // original error, optional
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap supports errors.Is / errors.As chains.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New membuat AppError baru tanpa membungkus error lain.
func New(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// Wrap membungkus error yang sudah ada. Nil in, nil out.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}
