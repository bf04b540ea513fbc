package roundservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	rounddb "github.com/Black-And-White-Club/scorecard/app/modules/round/infrastructure/repositories"
	scoringdomain "github.com/Black-And-White-Club/scorecard/app/modules/scoring/domain"
	"github.com/Black-And-White-Club/scorecard/app/shared/database"
	"github.com/Black-And-White-Club/scorecard/app/shared/observability"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// CreateRound starts a round and seeds one empty hole per course hole of the tee.
func (s *RoundService) CreateRound(ctx context.Context, req CreateRoundRequest) (*RoundWithHoles, error) {
	return withTelemetry(s, ctx, "CreateRound", req.PlayerID.String(), func(ctx context.Context) (*RoundWithHoles, error) {
		if req.CourseID == uuid.Nil || req.TeeID == uuid.Nil || req.PlayerID == uuid.Nil ||
			strings.TrimSpace(req.CompetitionType) == "" || strings.TrimSpace(req.Date) == "" {
			return nil, ErrMissingRequiredFields
		}

		ct, err := scoringdomain.ParseCompetitionType(req.CompetitionType)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCompetitionType, req.CompetitionType)
		}

		date, err := s.dates.ParseRoundDate(req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}

		return database.RunInTx(ctx, s.db, func(ctx context.Context, tx bun.IDB) (*RoundWithHoles, error) {
			ok, err := s.courses.TeeOnCourse(ctx, tx, req.CourseID, req.TeeID)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, ErrTeeNotOnCourse
			}

			round := &rounddb.Round{
				CourseID:        req.CourseID,
				TeeID:           req.TeeID,
				PlayerID:        &req.PlayerID,
				PlayerName:      strings.TrimSpace(req.PlayerName),
				CompetitionType: ct,
				Date:            date,
			}
			if req.PlayerHandicap != nil {
				round.PlayerHandicap = *req.PlayerHandicap
			}

			if round.PlayerName == "" {
				player, err := s.players.FindPlayer(ctx, tx, req.PlayerID)
				if err != nil {
					return nil, err
				}
				if player == nil {
					return nil, ErrPlayerNotFound
				}
				round.PlayerName = player.Name
				round.PlayerHandicap = player.Handicap
			}

			daily := round.PlayerHandicap
			if req.DailyHandicap != nil {
				daily = *req.DailyHandicap
			}
			round.DailyHandicap = &daily

			if err := s.repo.CreateRound(ctx, tx, round); err != nil {
				if errors.Is(err, rounddb.ErrInvalidRef) {
					return nil, ErrPlayerNotFound
				}
				return nil, err
			}

			n, err := s.repo.SeedHoles(ctx, tx, round)
			if err != nil {
				return nil, err
			}
			if n == 0 {
				s.logger.WarnContext(ctx, "Round created for a tee with no holes",
					observability.RequestIDAttr(ctx),
					slog.String("round_id", round.ID.String()),
					slog.String("tee_id", round.TeeID.String()),
				)
			}

			created, err := s.repo.GetRound(ctx, tx, round.ID)
			if err != nil {
				return nil, err
			}
			holes, err := s.repo.ListHoles(ctx, tx, round.ID)
			if err != nil {
				return nil, err
			}
			if holes == nil {
				holes = []*rounddb.RoundHole{}
			}

			return &RoundWithHoles{Round: created, Holes: holes}, nil
		})
	})
}
