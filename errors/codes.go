package errors

import "net/http"

// ErrorCode is the machine-readable code carried in every error body.
type ErrorCode string

const (
	ErrCodeInvalidInput       ErrorCode = "INVALID_INPUT"
	ErrCodeInvalidConfig      ErrorCode = "INVALID_CONFIG"
	ErrCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrCodePayloadTooLarge    ErrorCode = "PAYLOAD_TOO_LARGE"
	ErrCodeInternal           ErrorCode = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
)

type codeInfo struct {
	status    int
	retryable bool
}

var codes = map[ErrorCode]codeInfo{
	ErrCodeInvalidInput:       {http.StatusBadRequest, false},
	ErrCodeInvalidConfig:      {http.StatusInternalServerError, false},
	ErrCodeNotFound:           {http.StatusNotFound, false},
	ErrCodePayloadTooLarge:    {http.StatusRequestEntityTooLarge, false},
	ErrCodeInternal:           {http.StatusInternalServerError, false},
	ErrCodeServiceUnavailable: {http.StatusServiceUnavailable, true},
}

// HTTPStatus returns the status a code maps to. Unknown codes map to 500.
func (c ErrorCode) HTTPStatus() int {
	if info, ok := codes[c]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// Retryable reports whether a client may retry after this code.
func (c ErrorCode) Retryable() bool {
	return codes[c].retryable
}
