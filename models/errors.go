package models

import (
	"errors"
	"fmt"
)

// Error codes callers can branch on without matching messages.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotEligible       = "NOT_ELIGIBLE"
	CodePlanLimitReached  = "PLAN_LIMIT_REACHED"
	CodeNotFound          = "NOT_FOUND"
	CodeInvalidTransition = "INVALID_TRANSITION"
)

// CodedError carries a discriminable Code. Two coded errors match under
// errors.Is when their codes are equal.
type CodedError struct {
	Code    string
	Message string
	// Fields holds per-field messages for validation failures.
	Fields map[string]string
	Cause  error
}

func (e *CodedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

func (e *CodedError) Is(target error) bool {
	var t *CodedError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// NewCodedError builds a coded error with its own message and optional cause.
func NewCodedError(code, message string, cause error) *CodedError {
	return &CodedError{Code: code, Message: message, Cause: cause}
}

// NewValidationError reports field problems found before any network call.
func NewValidationError(message string, fields map[string]string) *CodedError {
	return &CodedError{Code: CodeValidation, Message: message, Fields: fields}
}

// ErrorCode returns the code of the first CodedError in err's chain, or "".
func ErrorCode(err error) string {
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

var (
	ErrValidation        = &CodedError{Code: CodeValidation, Message: "invalid input"}
	ErrNotEligible       = &CodedError{Code: CodeNotEligible, Message: "user has no paid or completed purchase of this service"}
	ErrPlanLimitReached  = &CodedError{Code: CodePlanLimitReached, Message: "plan limit reached"}
	ErrRecordNotFound    = &CodedError{Code: CodeNotFound, Message: "record not found"}
	ErrInvalidTransition = &CodedError{Code: CodeInvalidTransition, Message: "submission already resolved"}

	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrInvalidServiceTitle = errors.New("invalid service title")
	ErrNegativePrice       = errors.New("price cannot be negative")
	ErrUnauthorized        = errors.New("unauthorized")
)
