package playerservice

import (
	"context"
	"log/slog"
	"strings"

	playerdb "github.com/Black-And-White-Club/scorecard/app/modules/player/infrastructure/repositories"
	"github.com/Black-And-White-Club/scorecard/app/shared/database"
	"github.com/Black-And-White-Club/scorecard/app/shared/observability"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

const (
	minHandicap = -10
	maxHandicap = 54
)

// PlayerService implements Service.
type PlayerService struct {
	repo    playerdb.Repository
	logger  *slog.Logger
	metrics observability.ServiceMetrics
	tracer  trace.Tracer
	db      *bun.DB
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(
	repo playerdb.Repository,
	logger *slog.Logger,
	metrics observability.ServiceMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *PlayerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlayerService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
		db:      db,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]*playerdb.Player, error) {
	return withTelemetry(s, ctx, "ListPlayers", "all", func(ctx context.Context) ([]*playerdb.Player, error) {
		players, err := s.repo.List(ctx, s.idb())
		if err != nil {
			return nil, err
		}
		if players == nil {
			players = []*playerdb.Player{}
		}
		return players, nil
	})
}

func (s *PlayerService) GetPlayer(ctx context.Context, id uuid.UUID) (*playerdb.Player, error) {
	return withTelemetry(s, ctx, "GetPlayer", id.String(), func(ctx context.Context) (*playerdb.Player, error) {
		p, err := s.repo.GetByID(ctx, s.idb(), id)
		if err != nil {
			return nil, translateRepoErr(err)
		}
		return p, nil
	})
}

func (s *PlayerService) CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*playerdb.Player, error) {
	return withTelemetry(s, ctx, "CreatePlayer", req.Name, func(ctx context.Context) (*playerdb.Player, error) {
		name := strings.TrimSpace(req.Name)
		if name == "" {
			return nil, ErrPlayerNameRequired
		}

		p := &playerdb.Player{
			Name:  name,
			Email: req.Email,
			Phone: req.Phone,
		}
		if req.Handicap != nil {
			if err := validateHandicap(*req.Handicap); err != nil {
				return nil, err
			}
			p.Handicap = *req.Handicap
		}

		if err := s.repo.Create(ctx, s.idb(), p); err != nil {
			return nil, translateRepoErr(err)
		}
		return p, nil
	})
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, id uuid.UUID, req UpdatePlayerRequest) (*playerdb.Player, error) {
	return withTelemetry(s, ctx, "UpdatePlayer", id.String(), func(ctx context.Context) (*playerdb.Player, error) {
		return database.RunInTx(ctx, s.db, func(ctx context.Context, tx bun.IDB) (*playerdb.Player, error) {
			p, err := s.repo.GetByID(ctx, tx, id)
			if err != nil {
				return nil, translateRepoErr(err)
			}

			if req.Name != nil {
				name := strings.TrimSpace(*req.Name)
				if name == "" {
					return nil, ErrPlayerNameRequired
				}
				p.Name = name
			}
			if req.Handicap != nil {
				if err := validateHandicap(*req.Handicap); err != nil {
					return nil, err
				}
				p.Handicap = *req.Handicap
			}
			if req.Email != nil {
				p.Email = req.Email
			}
			if req.Phone != nil {
				p.Phone = req.Phone
			}

			if err := s.repo.Update(ctx, tx, p); err != nil {
				return nil, translateRepoErr(err)
			}
			return p, nil
		})
	})
}

func (s *PlayerService) DeletePlayer(ctx context.Context, id uuid.UUID) error {
	_, err := withTelemetry(s, ctx, "DeletePlayer", id.String(), func(ctx context.Context) (struct{}, error) {
		return struct{}{}, translateRepoErr(s.repo.Delete(ctx, s.idb(), id))
	})
	return err
}

func validateHandicap(h float64) error {
	if h < minHandicap || h > maxHandicap {
		return ErrInvalidHandicap
	}
	return nil
}

// idb returns the service's connection as a bun.IDB, or nil when unset so
// repositories fall back to their own handle.
func (s *PlayerService) idb() bun.IDB {
	if s.db == nil {
		return nil
	}
	return s.db
}

// withTelemetry wraps an operation with tracing, metrics and logging.
func withTelemetry[T any](s *PlayerService, ctx context.Context, operation, identifier string, op func(ctx context.Context) (T, error)) (T, error) {
	return observability.RunOperation(ctx, observability.OperationRunner{
		Service:   "PlayerService",
		Logger:    s.logger,
		Tracer:    s.tracer,
		Metrics:   s.metrics,
		IsFailure: IsFailure,
	}, operation, identifier, op)
}
