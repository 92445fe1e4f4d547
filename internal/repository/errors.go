package repository

import "errors"

// ErrNotFound is returned by Load when no persisted blob exists. Callers
// treat it as "start fresh", never as a failure.
var ErrNotFound = errors.New("not found")
