package model

import (
	"errors"
	"fmt"
)

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeInvalidInput       = "INVALID_INPUT"
	ErrCodeInvalidQuantity    = "INVALID_QUANTITY"
	ErrCodeInvalidStatus      = "INVALID_STATUS"
	ErrCodeLoginRequired      = "LOGIN_REQUIRED"
	ErrCodeEmptyCart          = "EMPTY_CART"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeBackendUnavailable = "BACKEND_UNAVAILABLE"
	ErrCodeUnexpectedResponse = "UNEXPECTED_RESPONSE"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeInvalidAPIKey      = "INVALID_API_KEY"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrLoginRequired      = NewDomainError(ErrCodeLoginRequired, "Please login to add items to cart")
	ErrInvalidQuantity    = NewDomainError(ErrCodeInvalidQuantity, "Quantity is out of range")
	ErrInvalidInput       = NewDomainError(ErrCodeInvalidInput, "Invalid input")
	ErrInvalidStatus      = NewDomainError(ErrCodeInvalidStatus, "Unknown order status")
	ErrEmptyCart          = NewDomainError(ErrCodeEmptyCart, "Your cart is empty")
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrNotFound           = NewDomainError(ErrCodeNotFound, "Not found")
	ErrForbidden          = NewDomainError(ErrCodeForbidden, "Admin access required")
	ErrBackendUnavailable = NewDomainError(ErrCodeBackendUnavailable, "Cannot connect to server. Please check if backend is running.")
	ErrUnexpectedResponse = NewDomainError(ErrCodeUnexpectedResponse, "Unexpected response from server")
)

// InvalidInput wraps ErrInvalidInput with a field-level message.
func InvalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// APIError is a business error reported by the backend. Message is shown to
// the user verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return e.Message
}

// AsAPIError extracts an APIError from err.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// UserMessage returns the text to show for err: the backend message for
// APIError, the domain message for DomainError, fallback otherwise.
func UserMessage(err error, fallback string) string {
	if apiErr, ok := AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, ErrInvalidInput) {
		return err.Error()
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return fallback
}
