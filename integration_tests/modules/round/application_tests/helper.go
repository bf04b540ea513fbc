package roundintegrationtests

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"

	coursedb "github.com/Black-And-White-Club/scorecard/app/modules/course/infrastructure/repositories"
	playerdb "github.com/Black-And-White-Club/scorecard/app/modules/player/infrastructure/repositories"
	roundservice "github.com/Black-And-White-Club/scorecard/app/modules/round/application"
	"github.com/Black-And-White-Club/scorecard/app/modules/round/infrastructure/adapters"
	rounddb "github.com/Black-And-White-Club/scorecard/app/modules/round/infrastructure/repositories"
	roundtime "github.com/Black-And-White-Club/scorecard/app/modules/round/time_utils"
	"github.com/Black-And-White-Club/scorecard/integration_tests/testutils"
	"github.com/uptrace/bun"
)

var (
	testEnv     *testutils.TestEnvironment
	testEnvOnce sync.Once
	testEnvErr  error
)

type RoundTestDeps struct {
	Ctx       context.Context
	DB        rounddb.Repository
	Players   playerdb.Repository
	BunDB     *bun.DB
	Service   roundservice.Service
	Env       *testutils.TestEnvironment
	Seed      testutils.SeedIDs
	Generator *testutils.TestDataGenerator
}

func GetTestEnv(t *testing.T) *testutils.TestEnvironment {
	t.Helper()

	testEnvOnce.Do(func() {
		log.Println("Initializing round test environment...")
		testEnv, testEnvErr = testutils.NewTestEnvironment(t)
	})

	if testEnvErr != nil {
		t.Fatalf("Round test environment initialization failed: %v", testEnvErr)
	}
	if testEnv == nil {
		t.Skip("round test environment not available")
	}
	return testEnv
}

func SetupTestRoundService(t *testing.T) RoundTestDeps {
	t.Helper()
	env := GetTestEnv(t)

	ctx, cancel := context.WithTimeout(env.Ctx, 30*time.Second)
	t.Cleanup(cancel)

	if err := env.Reset(ctx); err != nil {
		t.Fatalf("Failed to reset environment: %v", err)
	}
	seed, err := env.Seed(ctx)
	if err != nil {
		t.Fatalf("Failed to load seed data: %v", err)
	}

	repo := rounddb.NewRepository(env.DB)
	players := playerdb.NewRepository(env.DB)
	service := roundservice.NewRoundService(
		repo,
		adapters.NewPlayerLookupAdapter(players),
		adapters.NewCourseLookupAdapter(coursedb.NewRepository(env.DB)),
		env.EventBus,
		roundtime.NewDateParser(roundtime.NewAnchorClock(time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC))),
		env.Logger,
		env.Metrics,
		env.Tracer,
		env.DB,
	)

	return RoundTestDeps{
		Ctx:       ctx,
		DB:        repo,
		Players:   players,
		BunDB:     env.DB,
		Service:   service,
		Env:       env,
		Seed:      seed,
		Generator: testutils.NewTestDataGenerator(),
	}
}

func ptr[T any](v T) *T { return &v }

// createRound starts a round for the seeded player on the seeded blue tee.
func createRound(t *testing.T, deps RoundTestDeps, competition, date string) *roundservice.RoundWithHoles {
	t.Helper()
	round, err := deps.Service.CreateRound(deps.Ctx, roundservice.CreateRoundRequest{
		CourseID:        deps.Seed.CourseID,
		TeeID:           deps.Seed.TeeID,
		PlayerID:        deps.Seed.PlayerID,
		CompetitionType: competition,
		Date:            date,
	})
	if err != nil {
		t.Fatalf("CreateRound failed: %v", err)
	}
	return round
}

// scoreEveryHole records score(par) on each hole of the round.
func scoreEveryHole(t *testing.T, deps RoundTestDeps, round *roundservice.RoundWithHoles, score func(par int) int) *roundservice.HoleUpdate {
	t.Helper()
	var last *roundservice.HoleUpdate
	for _, h := range round.Holes {
		s := score(h.Par)
		update, err := deps.Service.UpdateHole(deps.Ctx, round.ID, h.HoleNumber, roundservice.HolePatch{Score: &s})
		if err != nil {
			t.Fatalf("UpdateHole %d failed: %v", h.HoleNumber, err)
		}
		last = update
	}
	return last
}
