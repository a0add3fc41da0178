// Package server provides the HTTP server: a Gin engine served over HTTP/1.1
// and cleartext HTTP/2 (h2c), wrapped as a lifecycle component.
//
// ApplyMiddleware installs the standard stack from server/middleware:
// recovery, request id, optional extras such as tracing, CORS, body-size
// limit and request logging. Handlers answer through RespondOK and
// RespondWithError so every error uses the AppError envelope. Probe and
// build-info handlers live in server/endpoint.
package server
