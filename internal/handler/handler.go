// Package handler is the HTTP layer of the gateway.
//
// Handlers bind and validate the request, call the service layer and write
// the JSON response. Errors are returned to the global error handler.
package handler
