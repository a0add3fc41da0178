// Package errors defines AppError, the error type handlers reply with and
// configuration validation fails with. Each ErrorCode fixes the HTTP status
// and whether the client may retry.
package errors
