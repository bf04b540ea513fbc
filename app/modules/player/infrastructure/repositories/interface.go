package playerdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for player persistence.
type Repository interface {
	// List returns every player ordered by name.
	List(ctx context.Context, db bun.IDB) ([]*Player, error)

	// GetByID retrieves a player by id.
	GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Player, error)

	// Create inserts a new player.
	Create(ctx context.Context, db bun.IDB, player *Player) error

	// Update overwrites the mutable fields of a player.
	Update(ctx context.Context, db bun.IDB, player *Player) error

	// Delete removes a player.
	Delete(ctx context.Context, db bun.IDB, id uuid.UUID) error
}
