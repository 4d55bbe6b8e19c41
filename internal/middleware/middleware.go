// Package middleware holds the Echo middleware of the gateway.
//
// Cross-cutting concerns live here: request IDs, request-scoped logging, New
// Relic tracing, CORS, panic recovery, submission rate limiting and the
// global error handler that shapes every error response.
package middleware
