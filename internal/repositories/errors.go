package repositories

import "errors"

// ErrNotFound is returned when a lookup by id (or unique key) resolves no
// record. Implementations wrap it with context about what was looked up.
var ErrNotFound = errors.New("record not found")
