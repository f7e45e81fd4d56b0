package domain

import (
	"fmt"
	"net/http"
	"strings"
)

type ErrorCode string

const (
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeOpenFailure   ErrorCode = "OPEN_FAILURE"
	ErrCodeParseFailure  ErrorCode = "PARSE_FAILURE"
	ErrCodeMissingFields ErrorCode = "MISSING_FIELDS"
	ErrCodeMissingEnvVar ErrorCode = "MISSING_ENV_VAR"
	ErrCodeNullField     ErrorCode = "NULL_FIELD"
	ErrCodeBadRequest    ErrorCode = "BAD_REQUEST"
	ErrCodeInternal      ErrorCode = "INTERNAL"
)

// AppError keeps configuration errors consistent across the loader and transports.
type AppError struct {
	Code    ErrorCode
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewNotFoundError(path string, err error) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: fmt.Sprintf("file: %s not found", path), Status: http.StatusNotFound, Err: err}
}

func NewOpenFailureError(path string, err error) *AppError {
	return &AppError{Code: ErrCodeOpenFailure, Message: fmt.Sprintf("unable to open file: %s", path), Status: http.StatusInternalServerError, Err: err}
}

func NewParseFailureError(source string, err error) *AppError {
	return &AppError{Code: ErrCodeParseFailure, Message: fmt.Sprintf("invalid json in %s", source), Status: http.StatusBadRequest, Err: err}
}

// NewMissingFieldsError lists every absent key, in the order given.
func NewMissingFieldsError(keys []string) *AppError {
	return &AppError{
		Code:    ErrCodeMissingFields,
		Message: "database configuration is missing the following elements: [" + strings.Join(keys, ", ") + "]",
		Status:  http.StatusUnprocessableEntity,
	}
}

// NewMissingEnvVarError reports the variable name that was looked up and the field it was meant to fill.
func NewMissingEnvVarError(name, key string) *AppError {
	return &AppError{
		Code:    ErrCodeMissingEnvVar,
		Message: fmt.Sprintf("environment variable: %s missing for %s", name, key),
		Status:  http.StatusUnprocessableEntity,
	}
}

func NewNullFieldError(key string) *AppError {
	return &AppError{Code: ErrCodeNullField, Message: fmt.Sprintf("field %s is null", key), Status: http.StatusUnprocessableEntity}
}

func NewBadRequestError(message string, err error) *AppError {
	return &AppError{Code: ErrCodeBadRequest, Message: message, Status: http.StatusBadRequest, Err: err}
}
