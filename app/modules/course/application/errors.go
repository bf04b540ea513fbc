package courseservice

import (
	"errors"
)

var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrTeeNotFound         = errors.New("tee not found")
	ErrHoleNotFound        = errors.New("hole not found")
	ErrNameRequired        = errors.New("name is required")
	ErrHolesRequired       = errors.New("holes array is required")
	ErrInvalidHole         = errors.New("invalid hole")
	ErrDuplicateHoleNumber = errors.New("duplicate hole number")
	ErrDuplicateStrokeIdx  = errors.New("duplicate stroke index")
)

// IsFailure reports whether err is an expected domain outcome.
func IsFailure(err error) bool {
	for _, target := range []error{
		ErrCourseNotFound, ErrTeeNotFound, ErrHoleNotFound, ErrNameRequired,
		ErrHolesRequired, ErrInvalidHole, ErrDuplicateHoleNumber, ErrDuplicateStrokeIdx,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
