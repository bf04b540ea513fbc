package coursedb

import "errors"

var (
	// ErrNotFound is returned when no course, tee or hole matches the query.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateHole is returned when a hole number already exists for a tee.
	ErrDuplicateHole = errors.New("hole already exists for tee")
)
