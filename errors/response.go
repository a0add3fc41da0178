package errors

// ErrorResponse is the JSON envelope for every error reply:
//
//	{"error":{"code":"NOT_FOUND","message":"...","retryable":false,"details":{...}}}
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// ToResponse wraps e in the error envelope.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{Error: e}
}
