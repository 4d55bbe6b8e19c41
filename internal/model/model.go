// Package model declares the records exchanged with the event backend.
//
// The types are plain value records. Their fields are exactly what the backend
// returns or receives; nothing in this repository derives, normalizes or
// enriches them.
package model
