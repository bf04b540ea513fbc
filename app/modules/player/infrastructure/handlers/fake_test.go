package playerhandlers

import (
	"context"

	playerservice "github.com/Black-And-White-Club/scorecard/app/modules/player/application"
	playerdb "github.com/Black-And-White-Club/scorecard/app/modules/player/infrastructure/repositories"
	"github.com/google/uuid"
)

// FakeService is a programmable playerservice.Service.
type FakeService struct {
	ListPlayersFunc  func(ctx context.Context) ([]*playerdb.Player, error)
	GetPlayerFunc    func(ctx context.Context, id uuid.UUID) (*playerdb.Player, error)
	CreatePlayerFunc func(ctx context.Context, req playerservice.CreatePlayerRequest) (*playerdb.Player, error)
	UpdatePlayerFunc func(ctx context.Context, id uuid.UUID, req playerservice.UpdatePlayerRequest) (*playerdb.Player, error)
	DeletePlayerFunc func(ctx context.Context, id uuid.UUID) error
}

func (f *FakeService) ListPlayers(ctx context.Context) ([]*playerdb.Player, error) {
	if f.ListPlayersFunc != nil {
		return f.ListPlayersFunc(ctx)
	}
	return []*playerdb.Player{}, nil
}

func (f *FakeService) GetPlayer(ctx context.Context, id uuid.UUID) (*playerdb.Player, error) {
	if f.GetPlayerFunc != nil {
		return f.GetPlayerFunc(ctx, id)
	}
	return nil, playerservice.ErrPlayerNotFound
}

func (f *FakeService) CreatePlayer(ctx context.Context, req playerservice.CreatePlayerRequest) (*playerdb.Player, error) {
	if f.CreatePlayerFunc != nil {
		return f.CreatePlayerFunc(ctx, req)
	}
	return &playerdb.Player{ID: uuid.New(), Name: req.Name}, nil
}

func (f *FakeService) UpdatePlayer(ctx context.Context, id uuid.UUID, req playerservice.UpdatePlayerRequest) (*playerdb.Player, error) {
	if f.UpdatePlayerFunc != nil {
		return f.UpdatePlayerFunc(ctx, id, req)
	}
	return &playerdb.Player{ID: id}, nil
}

func (f *FakeService) DeletePlayer(ctx context.Context, id uuid.UUID) error {
	if f.DeletePlayerFunc != nil {
		return f.DeletePlayerFunc(ctx, id)
	}
	return nil
}

var _ playerservice.Service = (*FakeService)(nil)
