package database

import "errors"

// ErrNotFound is returned when no row matches both the id and the owner.
// A record owned by another user is indistinguishable from a missing one.
var ErrNotFound = errors.New("record not found")
