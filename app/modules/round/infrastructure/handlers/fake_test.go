package roundhandlers

import (
	"context"

	roundservice "github.com/Black-And-White-Club/scorecard/app/modules/round/application"
	rounddb "github.com/Black-And-White-Club/scorecard/app/modules/round/infrastructure/repositories"
	"github.com/google/uuid"
)

// FakeService is a programmable roundservice.Service.
type FakeService struct {
	CreateRoundFunc     func(ctx context.Context, req roundservice.CreateRoundRequest) (*roundservice.RoundWithHoles, error)
	UpdateHoleFunc      func(ctx context.Context, roundID uuid.UUID, holeNumber int, patch roundservice.HolePatch) (*roundservice.HoleUpdate, error)
	GetRoundFunc        func(ctx context.Context, roundID uuid.UUID) (*roundservice.RoundDetail, error)
	ListRoundsFunc      func(ctx context.Context) ([]*rounddb.Round, error)
	DeleteRoundFunc     func(ctx context.Context, roundID uuid.UUID) error
	GetStatsFunc        func(ctx context.Context) (*roundservice.Stats, error)
	ExportScorecardFunc func(ctx context.Context, roundID uuid.UUID) (*roundservice.Scorecard, error)
}

func (f *FakeService) CreateRound(ctx context.Context, req roundservice.CreateRoundRequest) (*roundservice.RoundWithHoles, error) {
	if f.CreateRoundFunc != nil {
		return f.CreateRoundFunc(ctx, req)
	}
	return &roundservice.RoundWithHoles{Round: &rounddb.Round{ID: uuid.New()}, Holes: []*rounddb.RoundHole{}}, nil
}

func (f *FakeService) UpdateHole(ctx context.Context, roundID uuid.UUID, holeNumber int, patch roundservice.HolePatch) (*roundservice.HoleUpdate, error) {
	if f.UpdateHoleFunc != nil {
		return f.UpdateHoleFunc(ctx, roundID, holeNumber, patch)
	}
	return &roundservice.HoleUpdate{Hole: &rounddb.RoundHole{RoundID: roundID, HoleNumber: holeNumber}}, nil
}

func (f *FakeService) GetRound(ctx context.Context, roundID uuid.UUID) (*roundservice.RoundDetail, error) {
	if f.GetRoundFunc != nil {
		return f.GetRoundFunc(ctx, roundID)
	}
	return nil, roundservice.ErrRoundNotFound
}

func (f *FakeService) ListRounds(ctx context.Context) ([]*rounddb.Round, error) {
	if f.ListRoundsFunc != nil {
		return f.ListRoundsFunc(ctx)
	}
	return []*rounddb.Round{}, nil
}

func (f *FakeService) DeleteRound(ctx context.Context, roundID uuid.UUID) error {
	if f.DeleteRoundFunc != nil {
		return f.DeleteRoundFunc(ctx, roundID)
	}
	return nil
}

func (f *FakeService) GetStats(ctx context.Context) (*roundservice.Stats, error) {
	if f.GetStatsFunc != nil {
		return f.GetStatsFunc(ctx)
	}
	return &roundservice.Stats{}, nil
}

func (f *FakeService) ExportScorecard(ctx context.Context, roundID uuid.UUID) (*roundservice.Scorecard, error) {
	if f.ExportScorecardFunc != nil {
		return f.ExportScorecardFunc(ctx, roundID)
	}
	return nil, roundservice.ErrRoundNotFound
}

var _ roundservice.Service = (*FakeService)(nil)
