package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is an error with a stable code, a client-safe message and the
// HTTP status it maps to.
type AppError struct {
	Code       ErrorCode      `json:"code"`
	Message    string         `json:"message"`
	Retryable  bool           `json:"retryable"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	// Cause is logged, never sent.
	Cause error `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Cause }

// WithCause attaches the underlying error.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets one detail entry.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any, 1)
	}
	e.Details[key] = value
	return e
}

// New creates an AppError whose status and retryability follow code.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Retryable:  code.Retryable(),
		HTTPStatus: code.HTTPStatus(),
	}
}

// NotFound reports a missing resource, e.g. NotFound("route", "/nope").
func NotFound(resource, id string) *AppError {
	msg := resource + " not found"
	if id != "" {
		msg = fmt.Sprintf("%s %q not found", resource, id)
	}
	e := New(ErrCodeNotFound, msg).WithDetail("resource", resource)
	if id != "" {
		e.WithDetail("id", id)
	}
	return e
}

// InvalidInput reports a rejected request parameter.
func InvalidInput(field, reason string) *AppError {
	return New(ErrCodeInvalidInput, field+": "+reason).WithDetail("field", field)
}

// Validation reports one or more failed field checks in a single message.
func Validation(message string) *AppError {
	return New(ErrCodeInvalidInput, message)
}

// InvalidConfig reports configuration that failed the schema. It aborts
// startup and is never sent to clients.
func InvalidConfig(message string) *AppError {
	return New(ErrCodeInvalidConfig, message)
}

// Internal hides cause behind a generic message.
func Internal(cause error) *AppError {
	return New(ErrCodeInternal, "internal server error").WithCause(cause)
}

// AsAppError finds the first AppError in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
