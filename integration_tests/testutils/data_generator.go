package testutils

import (
	"math"
	"time"

	roundservice "github.com/Black-And-White-Club/scorecard/app/modules/round/application"
	scoringdomain "github.com/Black-And-White-Club/scorecard/app/modules/scoring/domain"
	"github.com/brianvoe/gofakeit/v7"
)

// TestDataGenerator provides methods to create test data for integration tests
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a new test data generator with optional seed
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}

	return &TestDataGenerator{
		faker: gofakeit.New(uint64(s)),
		seed:  s,
	}
}

// Seed returns the seed, for reproducing a failing run.
func (g *TestDataGenerator) Seed() int64 {
	return g.seed
}

// PlayerName returns a random full name.
func (g *TestDataGenerator) PlayerName() string {
	return g.faker.Name()
}

// Handicap returns a handicap between 0 and 36 with one decimal place.
func (g *TestDataGenerator) Handicap() float64 {
	return math.Round(g.faker.Float64Range(0, 36)*10) / 10
}

// HolePatch returns a plausible scored hole for par. The score stays within
// par-1 and par+3.
func (g *TestDataGenerator) HolePatch(par int) roundservice.HolePatch {
	score := par + g.faker.Number(-1, 3)
	putts := g.faker.Number(1, 3)
	if putts >= score {
		putts = score - 1
	}
	penalties := 0
	if g.faker.Number(1, 10) == 1 {
		penalties = 1
	}
	gir := score-putts <= par-2
	short := g.faker.Number(1, 8) == 1

	patch := roundservice.HolePatch{
		Score:           &score,
		Penalties:       &penalties,
		GIR:             &gir,
		TotalPutts:      &putts,
		Tiger5ShortMiss: &short,
	}
	if par > 3 {
		fairways := []scoringdomain.Fairway{
			scoringdomain.FairwayHit, scoringdomain.FairwayLeft, scoringdomain.FairwayRight,
		}
		fw := fairways[g.faker.Number(0, len(fairways)-1)]
		patch.Fairway = &fw
	}
	return patch
}
