// Package lib holds infrastructure that does not belong to a layer: the
// event backend client and small shared helpers.
package lib
