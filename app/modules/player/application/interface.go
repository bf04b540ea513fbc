package playerservice

import (
	"context"

	playerdb "github.com/Black-And-White-Club/scorecard/app/modules/player/infrastructure/repositories"
	"github.com/google/uuid"
)

// Service manages players.
type Service interface {
	ListPlayers(ctx context.Context) ([]*playerdb.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*playerdb.Player, error)
	CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*playerdb.Player, error)
	UpdatePlayer(ctx context.Context, id uuid.UUID, req UpdatePlayerRequest) (*playerdb.Player, error)
	DeletePlayer(ctx context.Context, id uuid.UUID) error
}

// CreatePlayerRequest is the input for CreatePlayer.
type CreatePlayerRequest struct {
	Name     string   `json:"name"`
	Handicap *float64 `json:"handicap"`
	Email    *string  `json:"email"`
	Phone    *string  `json:"phone"`
}

// UpdatePlayerRequest changes only the fields that are set.
type UpdatePlayerRequest struct {
	Name     *string  `json:"name"`
	Handicap *float64 `json:"handicap"`
	Email    *string  `json:"email"`
	Phone    *string  `json:"phone"`
}
