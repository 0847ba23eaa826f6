package store

import "errors"

// ErrRecordNotFound is returned when an id does not resolve to a record.
var ErrRecordNotFound = errors.New("record not found")
