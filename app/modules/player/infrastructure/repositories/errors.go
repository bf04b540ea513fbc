package playerdb

import "errors"

var (
	// ErrNotFound is returned when no player matches the query.
	ErrNotFound = errors.New("player not found")
	// ErrDuplicateName is returned when a player name is already taken.
	ErrDuplicateName = errors.New("player name already exists")
)
