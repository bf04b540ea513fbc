package rounddb

import (
	"time"

	scoringdomain "github.com/Black-And-White-Club/scorecard/app/modules/scoring/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Round is one player's round on one tee of a course.
type Round struct {
	bun.BaseModel `bun:"table:rounds,alias:r"`

	ID              uuid.UUID                     `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	CourseID        uuid.UUID                     `bun:"course_id,type:uuid,notnull" json:"course_id"`
	TeeID           uuid.UUID                     `bun:"tee_id,type:uuid,notnull" json:"tee_id"`
	PlayerID        *uuid.UUID                    `bun:"player_id,type:uuid" json:"player_id"`
	PlayerName      string                        `bun:"player_name,notnull" json:"player_name"`
	PlayerHandicap  float64                       `bun:"player_handicap,notnull" json:"player_handicap"`
	DailyHandicap   *float64                      `bun:"daily_handicap" json:"daily_handicap"`
	CompetitionType scoringdomain.CompetitionType `bun:"competition_type,notnull" json:"competition_type"`
	Date            time.Time                     `bun:"date,type:date,notnull" json:"date"`
	CreatedAt       time.Time                     `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`

	TotalScore  *int `bun:"total_score" json:"total_score"`
	TotalPoints *int `bun:"total_points" json:"total_points"`
	OutScore    int  `bun:"out_score,notnull" json:"out_score"`
	InScore     int  `bun:"in_score,notnull" json:"in_score"`
	OutPoints   int  `bun:"out_points,notnull" json:"out_points"`
	InPoints    int  `bun:"in_points,notnull" json:"in_points"`

	// Joined from courses, tees and course_holes.
	CourseName     string   `bun:"course_name,scanonly" json:"course_name,omitempty"`
	CourseLocation *string  `bun:"course_location,scanonly" json:"course_location,omitempty"`
	TeeName        string   `bun:"tee_name,scanonly" json:"tee_name,omitempty"`
	TeeRating      *float64 `bun:"tee_rating,scanonly" json:"tee_rating,omitempty"`
	TeeSlope       *int     `bun:"tee_slope,scanonly" json:"tee_slope,omitempty"`
	CoursePar      *int     `bun:"course_par,scanonly" json:"course_par,omitempty"`
}

// Handicap returns the handicap used for scoring: the daily handicap when
// one was set, otherwise the player's handicap.
func (r *Round) Handicap() float64 {
	if r.DailyHandicap != nil {
		return *r.DailyHandicap
	}
	return r.PlayerHandicap
}

// ApplyTotals stores t on the round. A round with no played holes has no
// total score or points.
func (r *Round) ApplyTotals(t scoringdomain.RoundTotals, played int) {
	if played == 0 {
		r.TotalScore, r.TotalPoints = nil, nil
	} else {
		r.TotalScore, r.TotalPoints = &t.TotalScore, &t.TotalPoints
	}
	r.OutScore, r.InScore = t.OutScore, t.InScore
	r.OutPoints, r.InPoints = t.OutPoints, t.InPoints
}

// RoundHole is the play data for one hole of a round.
type RoundHole struct {
	bun.BaseModel `bun:"table:holes,alias:h"`

	ID                 uuid.UUID             `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	RoundID            uuid.UUID             `bun:"round_id,type:uuid,notnull" json:"round_id"`
	HoleNumber         int                   `bun:"hole_number,notnull" json:"hole_number"`
	Par                int                   `bun:"par,notnull" json:"par"`
	Score              *int                  `bun:"score" json:"score"`
	Penalties          int                   `bun:"penalties,notnull" json:"penalties"`
	Fairway            scoringdomain.Fairway `bun:"fairway,nullzero" json:"fairway,omitempty"`
	GIR                *bool                 `bun:"gir" json:"gir"`
	UpDown             scoringdomain.UpDown  `bun:"up_down,nullzero" json:"up_down,omitempty"`
	FirstPuttDistance  *float64              `bun:"first_putt_distance" json:"first_putt_distance"`
	TotalPutts         *int                  `bun:"total_putts" json:"total_putts"`
	Points             *int                  `bun:"points" json:"points"`
	Tiger5ShortMiss    bool                  `bun:"tiger5_short_miss,notnull" json:"tiger5_short_miss"`
	Tiger5MissedUpDown bool                  `bun:"tiger5_missed_updown,notnull" json:"tiger5_missed_updown"`

	// Joined from course_holes for the round's tee.
	StrokeIndex *int `bun:"stroke_index,scanonly" json:"stroke_index,omitempty"`
	Distance    *int `bun:"distance,scanonly" json:"distance,omitempty"`
}

// Record converts the hole into the scoring input.
func (h *RoundHole) Record() scoringdomain.HoleRecord {
	rec := scoringdomain.HoleRecord{
		HoleNumber:         h.HoleNumber,
		Par:                h.Par,
		Score:              h.Score,
		Penalties:          h.Penalties,
		TotalPutts:         h.TotalPutts,
		FirstPuttDistance:  h.FirstPuttDistance,
		Fairway:            h.Fairway,
		GIR:                h.GIR,
		UpDown:             h.UpDown,
		Tiger5ShortMiss:    h.Tiger5ShortMiss,
		Tiger5MissedUpDown: h.Tiger5MissedUpDown,
	}
	if h.StrokeIndex != nil {
		rec.StrokeIndex = *h.StrokeIndex
	}
	if h.Distance != nil {
		rec.Distance = *h.Distance
	}
	return rec
}

// Records converts holes into scoring inputs, preserving order.
func Records(holes []*RoundHole) []scoringdomain.HoleRecord {
	out := make([]scoringdomain.HoleRecord, 0, len(holes))
	for _, h := range holes {
		out = append(out, h.Record())
	}
	return out
}

// Summary aggregates every stored round.
type Summary struct {
	TotalRounds   int      `bun:"total_rounds"`
	BestScore     *int     `bun:"best_score"`
	WorstScore    *int     `bun:"worst_score"`
	AverageScore  *float64 `bun:"average_score"`
	BestPoints    *int     `bun:"best_points"`
	AveragePoints *float64 `bun:"average_points"`
	CoursesPlayed int      `bun:"courses_played"`
}
