// Package middleware holds the Gin middleware the server installs on every
// route: panic recovery, request ids, CORS, request body limits and request
// logging. Failures reply with the errors.AppError envelope.
package middleware
