package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes returned by the service layer. Handlers translate these into
// HTTP statuses; clients key their guidance off the code, not the message.
const (
	CodeValidation   = "validationError"
	CodeNotFound     = "notFoundError"
	CodeUnauthorized = "authorizationError"
	CodeDuplicate    = "duplicateError"
	CodeConflict     = "conflictError"
)

// APIError carries a machine-readable code alongside the human message.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func ValidationError(format string, args ...any) error {
	return &APIError{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundError(format string, args ...any) error {
	return &APIError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func AuthorizationError(format string, args ...any) error {
	return &APIError{Code: CodeUnauthorized, Message: fmt.Sprintf(format, args...)}
}

func DuplicateError(format string, args ...any) error {
	return &APIError{Code: CodeDuplicate, Message: fmt.Sprintf(format, args...)}
}

func ConflictError(format string, args ...any) error {
	return &APIError{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

// ErrCode extracts the error code from err, or "" for untyped errors.
func ErrCode(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ""
}

// HTTPStatus maps a service-layer error to the response status.
func HTTPStatus(err error) int {
	switch ErrCode(err) {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnauthorized:
		return http.StatusForbidden
	case CodeDuplicate, CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
