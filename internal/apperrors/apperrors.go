package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrValidation indicates a missing or malformed request field.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Message
}

// ErrConflict indicates a duplicate value for a unique field.
type ErrConflict struct {
	Message string
}

func (e *ErrConflict) Error() string {
	return e.Message
}

// ErrUnauthorized indicates failed authentication. The same message is used
// for unknown users and wrong passwords so callers cannot tell them apart.
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	return e.Message
}

// ErrNotFound indicates a referenced entity does not exist.
type ErrNotFound struct {
	Message string
}

func (e *ErrNotFound) Error() string {
	return e.Message
}

func Validation(format string, args ...any) *ErrValidation {
	return &ErrValidation{Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *ErrConflict {
	return &ErrConflict{Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...any) *ErrUnauthorized {
	return &ErrUnauthorized{Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *ErrNotFound {
	return &ErrNotFound{Message: fmt.Sprintf(format, args...)}
}

// HTTPStatus maps an error to its HTTP status code. Unrecognized errors map
// to 500 so store-layer failures are never surfaced verbatim as client errors.
func HTTPStatus(err error) int {
	var (
		validation   *ErrValidation
		conflict     *ErrConflict
		unauthorized *ErrUnauthorized
		notFound     *ErrNotFound
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
