package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the custom error type for the application
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors

func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

// ErrTooManyRequests indicates the caller hit the inbound request limit.
func ErrTooManyRequests() AppError {
	return AppError{
		HTTPCode: http.StatusTooManyRequests,
		Code:     ErrorCode_RATE_LIMITED,
		Message:  "Rate limit exceeded. Please try again later.",
	}
}

// ErrNotesRequired indicates the required notes content was missing or blank.
// Returned before any upstream call is made.
func ErrNotesRequired() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  "Notes content is required",
	}
}

// AI Gateway Errors

// ErrAINotConfigured indicates the gateway credential is missing. Operator
// error, not retryable until the deployment is fixed.
func ErrAINotConfigured() AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_AI_NOT_CONFIGURED,
		Message:  "AI service not configured",
	}
}

func ErrAIRateLimited() AppError {
	return AppError{
		HTTPCode: http.StatusTooManyRequests,
		Code:     ErrorCode_AI_RATE_LIMITED,
		Message:  "Rate limit exceeded. Please try again later.",
	}
}

func ErrAIQuotaExceeded() AppError {
	return AppError{
		HTTPCode: http.StatusPaymentRequired,
		Code:     ErrorCode_AI_QUOTA_EXCEEDED,
		Message:  "AI credits exhausted. Please add credits to continue.",
	}
}

// ErrAIUnavailable covers timeouts and transport failures reaching the
// gateway.
func ErrAIUnavailable(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusServiceUnavailable,
		Code:     ErrorCode_AI_UNAVAILABLE,
		Message:  "AI service temporarily unavailable",
	}
}

// ErrAIMalformedResponse indicates the gateway responded but not in the
// expected structured shape. Kept distinct from "no tasks found", which is a
// legitimate empty success.
func ErrAIMalformedResponse(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_AI_MALFORMED_RESPONSE,
		Message:  "AI service returned an unexpected response",
	}
}
