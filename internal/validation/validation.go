// Package validation holds the event form validators and the helpers that
// turn failed validation into a 400 response.
//
// Each validator takes one field value and returns a human-readable message,
// or "" when the value is valid. Validators are pure: they share no state,
// can be called in any order, repeatedly and concurrently. Messages come
// from a Messages catalog so they can be localized without touching the
// rules.
package validation
