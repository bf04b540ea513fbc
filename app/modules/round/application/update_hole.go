package roundservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	roundevents "github.com/Black-And-White-Club/scorecard/app/modules/round/domain/events"
	rounddb "github.com/Black-And-White-Club/scorecard/app/modules/round/infrastructure/repositories"
	scoringdomain "github.com/Black-And-White-Club/scorecard/app/modules/scoring/domain"
	"github.com/Black-And-White-Club/scorecard/app/shared/database"
	"github.com/Black-And-White-Club/scorecard/app/shared/observability"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// UpdateHole applies patch to one hole, rescores it with the round's
// handicap, and recomputes the round totals over every hole.
func (s *RoundService) UpdateHole(ctx context.Context, roundID uuid.UUID, holeNumber int, patch HolePatch) (*HoleUpdate, error) {
	identifier := fmt.Sprintf("%s/%d", roundID, holeNumber)
	return withTelemetry(s, ctx, "UpdateHole", identifier, func(ctx context.Context) (*HoleUpdate, error) {
		if err := validatePatch(patch); err != nil {
			return nil, err
		}

		var round *rounddb.Round
		update, err := database.RunInTx(ctx, s.db, func(ctx context.Context, tx bun.IDB) (*HoleUpdate, error) {
			var err error
			round, err = s.repo.GetRound(ctx, tx, roundID)
			if err != nil {
				if errors.Is(err, rounddb.ErrNotFound) {
					return nil, ErrRoundNotFound
				}
				return nil, err
			}

			hole, err := s.repo.GetHole(ctx, tx, roundID, holeNumber)
			if err != nil {
				if errors.Is(err, rounddb.ErrHoleNotFound) {
					return nil, ErrHoleNotFound
				}
				return nil, err
			}

			applyPatch(hole, patch)

			ct := round.CompetitionType
			if !ct.Valid() {
				s.logger.WarnContext(ctx, "Round has unknown competition type; hole left unscored",
					observability.RequestIDAttr(ctx),
					slog.String("round_id", roundID.String()),
					slog.String("competition_type", string(ct)),
				)
			}
			hole.Points = hole.Record().Result(ct, round.Handicap())

			if err := s.repo.UpdateHole(ctx, tx, hole); err != nil {
				if errors.Is(err, rounddb.ErrHoleNotFound) {
					return nil, ErrHoleNotFound
				}
				return nil, err
			}

			holes, err := s.repo.ListHoles(ctx, tx, roundID)
			if err != nil {
				return nil, err
			}
			records := rounddb.Records(holes)
			totals := scoringdomain.AggregateRound(records, ct, round.Handicap())
			round.ApplyTotals(totals, playedCount(records))

			if err := s.repo.UpdateTotals(ctx, tx, round); err != nil {
				return nil, err
			}

			return &HoleUpdate{Hole: hole, Totals: totals}, nil
		})
		if err != nil {
			return nil, err
		}

		s.publish(ctx, roundevents.RoundHoleScoredV1, roundevents.RoundHoleScoredPayloadV1{
			RoundID:         roundID,
			HoleNumber:      update.Hole.HoleNumber,
			Par:             update.Hole.Par,
			Score:           update.Hole.Score,
			Points:          update.Hole.Points,
			CompetitionType: round.CompetitionType,
			Totals:          update.Totals,
			Tiger5:          scoringdomain.EvaluateTiger5Hole(update.Hole.Record()),
		})

		return update, nil
	})
}

func applyPatch(h *rounddb.RoundHole, p HolePatch) {
	if p.Clears(FieldScore) {
		h.Score = nil
	}
	if p.Clears(FieldPenalties) {
		h.Penalties = 0
	}
	if p.Clears(FieldFairway) {
		h.Fairway = ""
	}
	if p.Clears(FieldGIR) {
		h.GIR = nil
	}
	if p.Clears(FieldUpDown) {
		h.UpDown = ""
	}
	if p.Clears(FieldFirstPuttDistance) {
		h.FirstPuttDistance = nil
	}
	if p.Clears(FieldTotalPutts) {
		h.TotalPutts = nil
	}
	if p.Clears(FieldTiger5ShortMiss) {
		h.Tiger5ShortMiss = false
	}
	if p.Clears(FieldTiger5MissedUpDown) {
		h.Tiger5MissedUpDown = false
	}

	if p.Score != nil {
		h.Score = p.Score
	}
	if p.Penalties != nil {
		h.Penalties = *p.Penalties
	}
	if p.Fairway != nil {
		h.Fairway = *p.Fairway
	}
	if p.GIR != nil {
		h.GIR = p.GIR
	}
	if p.UpDown != nil {
		h.UpDown = *p.UpDown
	}
	if p.FirstPuttDistance != nil {
		h.FirstPuttDistance = p.FirstPuttDistance
	}
	if p.TotalPutts != nil {
		h.TotalPutts = p.TotalPutts
	}
	if p.Tiger5ShortMiss != nil {
		h.Tiger5ShortMiss = *p.Tiger5ShortMiss
	}
	if p.Tiger5MissedUpDown != nil {
		h.Tiger5MissedUpDown = *p.Tiger5MissedUpDown
	}
}

func validatePatch(p HolePatch) error {
	switch {
	case p.Score != nil && *p.Score < 0:
		return fmt.Errorf("%w: score must not be negative", ErrInvalidHoleData)
	case p.Penalties != nil && *p.Penalties < 0:
		return fmt.Errorf("%w: penalties must not be negative", ErrInvalidHoleData)
	case p.TotalPutts != nil && *p.TotalPutts < 0:
		return fmt.Errorf("%w: total_putts must not be negative", ErrInvalidHoleData)
	case p.FirstPuttDistance != nil && *p.FirstPuttDistance < 0:
		return fmt.Errorf("%w: first_putt_distance must not be negative", ErrInvalidHoleData)
	case p.Fairway != nil && !p.Fairway.Valid():
		return fmt.Errorf("%w: unknown fairway %q", ErrInvalidHoleData, *p.Fairway)
	case p.UpDown != nil && !p.UpDown.Valid():
		return fmt.Errorf("%w: unknown up_down %q", ErrInvalidHoleData, *p.UpDown)
	}
	return nil
}

func playedCount(holes []scoringdomain.HoleRecord) int {
	n := 0
	for _, h := range holes {
		if h.Played() {
			n++
		}
	}
	return n
}
