package roundservice

import (
	"context"
	"errors"
	"fmt"

	roundevents "github.com/Black-And-White-Club/scorecard/app/modules/round/domain/events"
	rounddb "github.com/Black-And-White-Club/scorecard/app/modules/round/infrastructure/repositories"
	scoringdomain "github.com/Black-And-White-Club/scorecard/app/modules/scoring/domain"
	"github.com/Black-And-White-Club/scorecard/app/shared/database"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// recentRoundWindow is how many recent scored rounds are checked for a personal best.
const recentRoundWindow = 5

func (s *RoundService) GetRound(ctx context.Context, roundID uuid.UUID) (*RoundDetail, error) {
	return withTelemetry(s, ctx, "GetRound", roundID.String(), func(ctx context.Context) (*RoundDetail, error) {
		return s.loadDetail(ctx, nil, roundID)
	})
}

// loadDetail reads a round and its holes and derives totals, statistics and Tiger 5.
func (s *RoundService) loadDetail(ctx context.Context, db bun.IDB, roundID uuid.UUID) (*RoundDetail, error) {
	round, err := s.repo.GetRound(ctx, db, roundID)
	if err != nil {
		if errors.Is(err, rounddb.ErrNotFound) {
			return nil, ErrRoundNotFound
		}
		return nil, err
	}

	holes, err := s.repo.ListHoles(ctx, db, roundID)
	if err != nil {
		return nil, err
	}
	if holes == nil {
		holes = []*rounddb.RoundHole{}
	}

	records := rounddb.Records(holes)
	return &RoundDetail{
		Round:      round,
		Holes:      holes,
		Totals:     scoringdomain.AggregateRound(records, round.CompetitionType, round.Handicap()),
		Statistics: scoringdomain.ComputeStatistics(records),
		Tiger5:     scoringdomain.Tiger5(records),
	}, nil
}

func (s *RoundService) ListRounds(ctx context.Context) ([]*rounddb.Round, error) {
	return withTelemetry(s, ctx, "ListRounds", "all", func(ctx context.Context) ([]*rounddb.Round, error) {
		rounds, err := s.repo.ListRounds(ctx, nil)
		if err != nil {
			return nil, err
		}
		if rounds == nil {
			rounds = []*rounddb.Round{}
		}
		return rounds, nil
	})
}

// DeleteRound removes a round and, by cascade, its holes.
func (s *RoundService) DeleteRound(ctx context.Context, roundID uuid.UUID) error {
	_, err := withTelemetry(s, ctx, "DeleteRound", roundID.String(), func(ctx context.Context) (struct{}, error) {
		round, err := database.RunInTx(ctx, s.db, func(ctx context.Context, tx bun.IDB) (*rounddb.Round, error) {
			round, err := s.repo.GetRound(ctx, tx, roundID)
			if err != nil {
				if errors.Is(err, rounddb.ErrNotFound) {
					return nil, ErrRoundNotFound
				}
				return nil, err
			}
			if err := s.repo.DeleteRound(ctx, tx, roundID); err != nil {
				if errors.Is(err, rounddb.ErrNotFound) {
					return nil, ErrRoundNotFound
				}
				return nil, err
			}
			return round, nil
		})
		if err != nil {
			return struct{}{}, err
		}

		s.publish(ctx, roundevents.RoundDeletedV1, roundevents.RoundDeletedPayloadV1{
			RoundID:         roundID,
			CompetitionType: round.CompetitionType,
		})
		return struct{}{}, nil
	})
	return err
}

// GetStats summarises all rounds. Averages are rounded to one decimal and
// points only consider competitions where more points is better.
func (s *RoundService) GetStats(ctx context.Context) (*Stats, error) {
	return withTelemetry(s, ctx, "GetStats", "all", func(ctx context.Context) (*Stats, error) {
		summary, err := s.repo.Summary(ctx, nil)
		if err != nil {
			return nil, err
		}

		stats := &Stats{
			TotalRounds:   summary.TotalRounds,
			BestScore:     summary.BestScore,
			WorstScore:    summary.WorstScore,
			AverageScore:  roundTenth(summary.AverageScore),
			BestPoints:    summary.BestPoints,
			AveragePoints: roundTenth(summary.AveragePoints),
			CoursesPlayed: summary.CoursesPlayed,
		}
		if stats.TotalRounds == 0 || stats.BestScore == nil {
			return stats, nil
		}

		recent, err := s.repo.RecentScoredRounds(ctx, nil, recentRoundWindow)
		if err != nil {
			return nil, err
		}
		stats.RecentAchievement = personalBest(recent, *stats.BestScore)
		return stats, nil
	})
}

// personalBest reports an achievement when the best of the recent rounds
// matches the all-time best score. Ties go to the most recent round.
func personalBest(recent []*rounddb.Round, best int) *Achievement {
	var top *rounddb.Round
	for _, r := range recent {
		if r.TotalScore == nil {
			continue
		}
		if top == nil || *r.TotalScore < *top.TotalScore {
			top = r
		}
	}
	if top == nil || *top.TotalScore != best {
		return nil
	}
	return &Achievement{
		Type:        "personal_best",
		Description: fmt.Sprintf("New Personal Best: %d at %s!", *top.TotalScore, top.CourseName),
		Date:        top.Date,
	}
}

func roundTenth(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := scoringdomain.RoundTenth(*v)
	return &r
}
