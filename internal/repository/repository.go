// Package repository is the data access layer.
//
// Each method maps one domain operation onto exactly one call to the event
// backend through backend.Client and returns the decoded payload. Inputs are
// not validated here and backend failures are returned unchanged.
package repository
