package adapters

import (
	"context"
	"errors"

	coursedb "github.com/Black-And-White-Club/scorecard/app/modules/course/infrastructure/repositories"
	playerdb "github.com/Black-And-White-Club/scorecard/app/modules/player/infrastructure/repositories"
	roundservice "github.com/Black-And-White-Club/scorecard/app/modules/round/application"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// PlayerLookupAdapter adapts the player repository to the round service PlayerLookup port.
type PlayerLookupAdapter struct {
	players playerdb.Repository
}

// NewPlayerLookupAdapter constructs a new adapter.
func NewPlayerLookupAdapter(players playerdb.Repository) *PlayerLookupAdapter {
	return &PlayerLookupAdapter{players: players}
}

func (a *PlayerLookupAdapter) FindPlayer(ctx context.Context, db bun.IDB, id uuid.UUID) (*roundservice.PlayerIdentity, error) {
	p, err := a.players.GetByID(ctx, db, id)
	if err != nil {
		if errors.Is(err, playerdb.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &roundservice.PlayerIdentity{ID: p.ID, Name: p.Name, Handicap: p.Handicap}, nil
}

// CourseLookupAdapter adapts the course repository to the round service CourseLookup port.
type CourseLookupAdapter struct {
	courses coursedb.Repository
}

// NewCourseLookupAdapter constructs a new adapter.
func NewCourseLookupAdapter(courses coursedb.Repository) *CourseLookupAdapter {
	return &CourseLookupAdapter{courses: courses}
}

func (a *CourseLookupAdapter) TeeOnCourse(ctx context.Context, db bun.IDB, courseID, teeID uuid.UUID) (bool, error) {
	tee, err := a.courses.GetTee(ctx, db, teeID)
	if err != nil {
		if errors.Is(err, coursedb.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return tee.CourseID == courseID, nil
}

var (
	_ roundservice.PlayerLookup = (*PlayerLookupAdapter)(nil)
	_ roundservice.CourseLookup = (*CourseLookupAdapter)(nil)
)
