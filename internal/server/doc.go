// Package server provides the HTTP API on top of the application service.
//
// Routes are registered on an Echo instance with logging, recovery, CORS,
// correlation-ID and structured-error middleware. Handlers translate domain
// errors into HTTP status codes and never leak internal error details.
package server
