package errors

import (
	"fmt"
	"net/http"
)

// Error codes used across the API
const (
	CodeNotAuthenticated  = "NotAuthenticated"
	CodeInvalidRequest    = "InvalidRequest"
	CodeValidationError   = "ValidationError"
	CodeItemNotFound      = "ItemNotFound"
	CodeInsufficientStock = "InsufficientStock"
	CodeCameraBusy        = "CameraBusy"
	CodeCameraUnavailable = "CameraUnavailable"
	CodeRequestInProgress = "RequestInProgress"
	CodeStoreFailure      = "StoreFailure"
	CodeInternalError     = "InternalError"
)

// StandardError represents a standardized error response.
// Message is serialized under "error" so every failure carries {"error": message}.
type StandardError struct {
	Code    string      `json:"code"`              // Error code/type (e.g., "InvalidRequest", "ItemNotFound")
	Message string      `json:"error"`             // Human-readable error message
	Details interface{} `json:"details,omitempty"` // Additional details (field name, offending lines, etc.)

	// cause is logged server side and never serialized
	cause error
}

// Error implements the error interface
func (e *StandardError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *StandardError) Unwrap() error {
	return e.cause
}

// HTTPStatus returns the appropriate HTTP status code for the error
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case CodeNotAuthenticated:
		return http.StatusUnauthorized
	case CodeInvalidRequest, CodeValidationError:
		return http.StatusBadRequest
	case CodeItemNotFound:
		return http.StatusNotFound
	case CodeInsufficientStock:
		return http.StatusBadRequest
	case CodeCameraBusy, CodeRequestInProgress:
		return http.StatusConflict
	case CodeCameraUnavailable:
		return http.StatusServiceUnavailable
	case CodeStoreFailure, CodeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// NewStandardError creates a new StandardError
func NewStandardError(errorCode, message string, details interface{}) *StandardError {
	return &StandardError{
		Code:    errorCode,
		Message: message,
		Details: details,
	}
}

// Common error constructors
func NewNotAuthenticated() *StandardError {
	return NewStandardError(CodeNotAuthenticated, "Not authenticated", nil)
}

func NewInvalidRequest(message string, details interface{}) *StandardError {
	return NewStandardError(CodeInvalidRequest, message, details)
}

func NewValidationError(err error) *StandardError {
	return NewStandardError(CodeValidationError, err.Error(), nil)
}

func NewItemNotFound(code string) *StandardError {
	return NewStandardError(CodeItemNotFound, "Book not found", fmt.Sprintf("Barcode: %s", code))
}

func NewInsufficientStock(lines interface{}) *StandardError {
	return NewStandardError(CodeInsufficientStock, "Insufficient stock", lines)
}

func NewCameraBusy() *StandardError {
	return NewStandardError(CodeCameraBusy, "camera is in use by another scan session", nil)
}

func NewRequestInProgress() *StandardError {
	return NewStandardError(CodeRequestInProgress, "a request with this X-Request-ID is still being processed", nil)
}

func NewCameraUnavailable(err error) *StandardError {
	stdErr := NewStandardError(CodeCameraUnavailable, "camera unavailable", nil)
	stdErr.cause = err
	return stdErr
}

// NewStoreFailure keeps err as the cause; clients only see the operation.
func NewStoreFailure(operation string, err error) *StandardError {
	stdErr := NewStandardError(CodeStoreFailure, fmt.Sprintf("store operation failed: %s", operation), nil)
	stdErr.cause = err
	return stdErr
}

func NewInternalError(message string, err error) *StandardError {
	stdErr := NewStandardError(CodeInternalError, message, nil)
	stdErr.cause = err
	return stdErr
}
