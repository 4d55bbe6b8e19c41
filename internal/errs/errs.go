// Package errs defines the error shapes of the service.
//
// Two families live here:
//   - HTTPError and FieldError, the JSON body every failed gateway request
//     returns, including per-field form validation messages.
//   - NetworkError and ServerError, the two ways a call to the event backend
//     can fail. They are returned unchanged by the data access layer and only
//     translated into an HTTPError at the edge (see FromUpstream).
package errs
