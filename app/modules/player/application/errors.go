package playerservice

import (
	"errors"

	playerdb "github.com/Black-And-White-Club/scorecard/app/modules/player/infrastructure/repositories"
)

var (
	ErrPlayerNotFound     = errors.New("player not found")
	ErrPlayerNameRequired = errors.New("player name is required")
	ErrDuplicatePlayer    = errors.New("a player with this name already exists")
	ErrInvalidHandicap    = errors.New("handicap must be between -10 and 54")
)

// IsFailure reports whether err is an expected domain outcome.
func IsFailure(err error) bool {
	return errors.Is(err, ErrPlayerNotFound) ||
		errors.Is(err, ErrPlayerNameRequired) ||
		errors.Is(err, ErrDuplicatePlayer) ||
		errors.Is(err, ErrInvalidHandicap)
}

func translateRepoErr(err error) error {
	switch {
	case errors.Is(err, playerdb.ErrNotFound):
		return ErrPlayerNotFound
	case errors.Is(err, playerdb.ErrDuplicateName):
		return ErrDuplicatePlayer
	default:
		return err
	}
}
