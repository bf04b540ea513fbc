package roundservice

import (
	"errors"
)

var (
	ErrRoundNotFound          = errors.New("round not found")
	ErrHoleNotFound           = errors.New("hole not found")
	ErrMissingRequiredFields  = errors.New("missing required fields: course_id, tee_id, competition_type, date, player_id")
	ErrInvalidCompetitionType = errors.New("competition_type must be Stroke, Stableford, or Par")
	ErrInvalidDate            = errors.New("invalid date")
	ErrPlayerNotFound         = errors.New("player not found")
	ErrTeeNotOnCourse         = errors.New("tee does not belong to course")
	ErrInvalidHoleData        = errors.New("invalid hole data")
)

// IsFailure reports whether err is an expected domain outcome.
func IsFailure(err error) bool {
	for _, target := range []error{
		ErrRoundNotFound, ErrHoleNotFound, ErrMissingRequiredFields, ErrInvalidCompetitionType,
		ErrInvalidDate, ErrPlayerNotFound, ErrTeeNotOnCourse, ErrInvalidHoleData,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
