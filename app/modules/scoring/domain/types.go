package scoringdomain

import (
	"errors"
	"fmt"
)

// ErrUnknownCompetition is returned when a competition type string is not recognised.
var ErrUnknownCompetition = errors.New("unknown competition type")

// CompetitionType selects the formula used to score a hole.
type CompetitionType string

const (
	CompetitionStroke     CompetitionType = "Stroke"
	CompetitionStableford CompetitionType = "Stableford"
	CompetitionPar        CompetitionType = "Par"
)

// Valid reports whether c is one of the supported competition types.
func (c CompetitionType) Valid() bool {
	switch c {
	case CompetitionStroke, CompetitionStableford, CompetitionPar:
		return true
	}
	return false
}

// PointsRanked reports whether a higher round points total is better.
// Stroke rounds carry net strokes in their points column.
func (c CompetitionType) PointsRanked() bool {
	return c == CompetitionStableford || c == CompetitionPar
}

// ParseCompetitionType converts s into a CompetitionType.
func ParseCompetitionType(s string) (CompetitionType, error) {
	c := CompetitionType(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCompetition, s)
	}
	return c, nil
}

// Fairway records where the tee shot finished on a par 4 or par 5.
type Fairway string

const (
	FairwayHit   Fairway = "hit"
	FairwayMiss  Fairway = "miss"
	FairwayLeft  Fairway = "left"
	FairwayRight Fairway = "right"
	FairwayShort Fairway = "short"
	FairwayLong  Fairway = "long"
	FairwayNA    Fairway = "na"
)

// Valid reports whether f is a known value. The empty value means "not recorded".
func (f Fairway) Valid() bool {
	switch f {
	case "", FairwayHit, FairwayMiss, FairwayLeft, FairwayRight, FairwayShort, FairwayLong, FairwayNA:
		return true
	}
	return false
}

// UpDown records the outcome of a scrambling attempt around the green.
type UpDown string

const (
	UpDownYes    UpDown = "yes"
	UpDownNo     UpDown = "no"
	UpDownChipIn UpDown = "chip_in"
	UpDownNA     UpDown = "na"
)

// Valid reports whether u is a known value. The empty value means "not recorded".
func (u UpDown) Valid() bool {
	switch u {
	case "", UpDownYes, UpDownNo, UpDownChipIn, UpDownNA:
		return true
	}
	return false
}

// DefaultStrokeIndex is used when a hole carries no stroke index.
const DefaultStrokeIndex = 10

// HoleRecord is one hole of one round, joined with the course data for that hole.
type HoleRecord struct {
	HoleNumber  int
	Par         int
	StrokeIndex int
	Distance    int

	Score             *int
	Penalties         int
	TotalPutts        *int
	FirstPuttDistance *float64
	Fairway           Fairway
	GIR               *bool
	UpDown            UpDown

	Tiger5ShortMiss    bool
	Tiger5MissedUpDown bool
}

// Played reports whether a score has been entered for the hole.
func (h HoleRecord) Played() bool {
	return h.Score != nil && *h.Score != 0
}

// FrontNine reports whether the hole counts towards the "out" total.
func (h HoleRecord) FrontNine() bool {
	return h.HoleNumber <= 9
}

func (h HoleRecord) effectiveStrokeIndex() int {
	if h.StrokeIndex == 0 {
		return DefaultStrokeIndex
	}
	return h.StrokeIndex
}

// Result scores the hole under ct, falling back to DefaultStrokeIndex when
// the stroke index is unknown.
func (h HoleRecord) Result(ct CompetitionType, playerHandicap float64) *int {
	return HoleResult(ct, h.Score, h.Par, h.effectiveStrokeIndex(), playerHandicap)
}
