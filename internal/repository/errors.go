// Package repository defines the storage contract of the marketplace and its
// two interchangeable backends: an in-memory implementation used by the demo
// server and tests, and a MySQL implementation for real deployments.  The
// sentinel errors declared here let handlers distinguish failure scenarios
// without inspecting backend-specific error values.
package repository

import "errors"

// ErrNotFound is returned when a record with the requested id does not
// exist.  Handlers translate this into an HTTP 404 response.  Both backends
// return it from update operations on missing ids; the lenient
// update-without-existence-check behavior of the original schema-backed
// service is deliberately not carried over.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when a unique email constraint would be
// violated, e.g. registering a second sponsor store with the same address.
// Handlers translate this into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")
