package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is matches any DomainError with the same code, so that
// errors.Is(err, ErrInvalidInput) holds for every invalid-input error.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// InvalidInput returns an INVALID_INPUT error with a formatted message
func InvalidInput(format string, args ...any) *DomainError {
	return NewDomainError(ErrInvalidInput.Code, fmt.Sprintf(format, args...))
}

// Common domain errors
var (
	ErrNotFound      = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput  = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInUse         = NewDomainError("IN_USE", "Resource is still referenced by other records")
)

// ErrValidation is the code family of entity validation failures
var ErrValidation = NewDomainError("VALIDATION_ERROR", "Entity validation failed")

// Validation returns a VALIDATION_ERROR error with a formatted message
func Validation(format string, args ...any) *DomainError {
	return NewDomainError(ErrValidation.Code, fmt.Sprintf(format, args...))
}
