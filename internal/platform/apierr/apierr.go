package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Status int
	Code   string
	Err    error
	// Fields carries per-field detail for validation failures.
	Fields map[string]string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func NewValidation(fields map[string]string) *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Code:   "validation_error",
		Err:    fmt.Errorf("validation failed"),
		Fields: fields,
	}
}

func NotFound(what string) *Error {
	return &Error{
		Status: http.StatusNotFound,
		Code:   "not_found",
		Err:    fmt.Errorf("%s not found", what),
	}
}

func Internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Code: "internal_error", Err: err}
}

// From extracts an *Error from err's chain, wrapping unknown errors as an
// opaque internal failure so store-level detail never leaks to callers.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(err)
}
