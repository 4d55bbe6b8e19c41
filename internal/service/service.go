// Package service is the caller of the data access and validation layers.
//
// It fetches what the event page shows, and for a submission it runs every
// field validator first and only reaches the backend when all of them pass.
package service
