package interfaces

import "errors"

// ErrNotFound distinguishes a missing document from a backend failure so
// callers can render an empty state instead of an error banner.
var ErrNotFound = errors.New("not found")
