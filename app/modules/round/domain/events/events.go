package roundevents

import (
	scoringdomain "github.com/Black-And-White-Club/scorecard/app/modules/scoring/domain"
	"github.com/google/uuid"
)

const (
	// RoundHoleScoredV1 is published after a hole has been updated and the
	// round totals recomputed.
	RoundHoleScoredV1 = "round.hole.scored.v1"

	// RoundDeletedV1 is published after a round and its holes are removed.
	RoundDeletedV1 = "round.deleted.v1"
)

// RoundHoleScoredPayloadV1 describes a scored hole and the round it belongs to.
type RoundHoleScoredPayloadV1 struct {
	RoundID         uuid.UUID                     `json:"round_id"`
	HoleNumber      int                           `json:"hole_number"`
	Par             int                           `json:"par"`
	Score           *int                          `json:"score"`
	Points          *int                          `json:"points"`
	CompetitionType scoringdomain.CompetitionType `json:"competition_type"`
	Totals          scoringdomain.RoundTotals     `json:"totals"`
	Tiger5          scoringdomain.Tiger5Hole      `json:"tiger5"`
}

// RoundDeletedPayloadV1 identifies a deleted round.
type RoundDeletedPayloadV1 struct {
	RoundID         uuid.UUID                     `json:"round_id"`
	CompetitionType scoringdomain.CompetitionType `json:"competition_type"`
}
