package rounddb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for round persistence.
type Repository interface {
	CreateRound(ctx context.Context, db bun.IDB, round *Round) error
	// GetRound returns the round with its course and tee columns joined.
	GetRound(ctx context.Context, db bun.IDB, id uuid.UUID) (*Round, error)
	// ListRounds returns rounds newest first, each with its course par.
	ListRounds(ctx context.Context, db bun.IDB) ([]*Round, error)
	UpdateTotals(ctx context.Context, db bun.IDB, round *Round) error
	DeleteRound(ctx context.Context, db bun.IDB, id uuid.UUID) error

	// SeedHoles creates one empty hole per course hole of the round's tee and
	// returns how many were created.
	SeedHoles(ctx context.Context, db bun.IDB, round *Round) (int, error)
	// ListHoles returns a round's holes ordered by hole number, with stroke
	// index and distance joined from the tee.
	ListHoles(ctx context.Context, db bun.IDB, roundID uuid.UUID) ([]*RoundHole, error)
	GetHole(ctx context.Context, db bun.IDB, roundID uuid.UUID, holeNumber int) (*RoundHole, error)
	UpdateHole(ctx context.Context, db bun.IDB, hole *RoundHole) error

	Summary(ctx context.Context, db bun.IDB) (*Summary, error)
	// RecentScoredRounds returns up to limit rounds with a total score,
	// newest first, with course names joined.
	RecentScoredRounds(ctx context.Context, db bun.IDB, limit int) ([]*Round, error)
}
