package roundservice

import (
	"context"
	"time"

	rounddb "github.com/Black-And-White-Club/scorecard/app/modules/round/infrastructure/repositories"
	scoringdomain "github.com/Black-And-White-Club/scorecard/app/modules/scoring/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Service records rounds hole by hole and reports on them.
type Service interface {
	CreateRound(ctx context.Context, req CreateRoundRequest) (*RoundWithHoles, error)
	UpdateHole(ctx context.Context, roundID uuid.UUID, holeNumber int, patch HolePatch) (*HoleUpdate, error)
	GetRound(ctx context.Context, roundID uuid.UUID) (*RoundDetail, error)
	ListRounds(ctx context.Context) ([]*rounddb.Round, error)
	DeleteRound(ctx context.Context, roundID uuid.UUID) error
	GetStats(ctx context.Context) (*Stats, error)
	ExportScorecard(ctx context.Context, roundID uuid.UUID) (*Scorecard, error)
}

// PlayerIdentity is the player data a round copies at creation.
type PlayerIdentity struct {
	ID       uuid.UUID
	Name     string
	Handicap float64
}

// PlayerLookup resolves players. FindPlayer returns nil, nil when the player
// does not exist.
type PlayerLookup interface {
	FindPlayer(ctx context.Context, db bun.IDB, id uuid.UUID) (*PlayerIdentity, error)
}

// CourseLookup checks course and tee references.
type CourseLookup interface {
	TeeOnCourse(ctx context.Context, db bun.IDB, courseID, teeID uuid.UUID) (bool, error)
}

type CreateRoundRequest struct {
	CourseID        uuid.UUID `json:"course_id"`
	TeeID           uuid.UUID `json:"tee_id"`
	PlayerID        uuid.UUID `json:"player_id"`
	CompetitionType string    `json:"competition_type"`
	Date            string    `json:"date"`
	PlayerName      string    `json:"player_name"`
	PlayerHandicap  *float64  `json:"player_handicap"`
	DailyHandicap   *float64  `json:"daily_handicap"`
}

// RoundWithHoles is a newly created round and its empty holes.
type RoundWithHoles struct {
	*rounddb.Round
	Holes []*rounddb.RoundHole `json:"holes"`
}

// HolePatch changes only the fields that are set. A field sent as JSON null,
// or named in Clear, is reset to its unrecorded value.
type HolePatch struct {
	Score              *int                   `json:"score"`
	Penalties          *int                   `json:"penalties"`
	Fairway            *scoringdomain.Fairway `json:"fairway"`
	GIR                *bool                  `json:"gir"`
	UpDown             *scoringdomain.UpDown  `json:"up_down"`
	FirstPuttDistance  *float64               `json:"first_putt_distance"`
	TotalPutts         *int                   `json:"total_putts"`
	Tiger5ShortMiss    *bool                  `json:"tiger5_short_miss"`
	Tiger5MissedUpDown *bool                  `json:"tiger5_missed_updown"`

	cleared map[string]bool
}

// HoleUpdate is the stored hole after an update plus the new round totals.
type HoleUpdate struct {
	Hole   *rounddb.RoundHole        `json:"hole"`
	Totals scoringdomain.RoundTotals `json:"totals"`
}

// RoundDetail is a round with its holes and everything derived from them.
type RoundDetail struct {
	*rounddb.Round
	Holes      []*rounddb.RoundHole       `json:"holes"`
	Totals     scoringdomain.RoundTotals  `json:"totals"`
	Statistics scoringdomain.Statistics   `json:"statistics"`
	Tiger5     scoringdomain.Tiger5Result `json:"tiger5"`
}

// Stats summarises every round on record.
type Stats struct {
	TotalRounds       int          `json:"total_rounds"`
	BestScore         *int         `json:"best_score"`
	WorstScore        *int         `json:"worst_score"`
	AverageScore      *float64     `json:"average_score"`
	BestPoints        *int         `json:"best_points"`
	AveragePoints     *float64     `json:"average_points"`
	CoursesPlayed     int          `json:"courses_played"`
	RecentAchievement *Achievement `json:"recent_achievement"`
}

// Achievement highlights a recent result.
type Achievement struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// Scorecard is an exported round.
type Scorecard struct {
	Filename    string
	ContentType string
	Data        []byte
}
