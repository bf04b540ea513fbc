package rounddb

import "errors"

var (
	ErrNotFound       = errors.New("round: not found")
	ErrHoleNotFound   = errors.New("round: hole not found")
	ErrNoRowsAffected = errors.New("round: no rows affected")
	ErrInvalidRef     = errors.New("round: course, tee or player does not exist")
)
