package roundservice

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	rounddb "github.com/Black-And-White-Club/scorecard/app/modules/round/infrastructure/repositories"
	roundtime "github.com/Black-And-White-Club/scorecard/app/modules/round/time_utils"
	scoringdomain "github.com/Black-And-White-Club/scorecard/app/modules/scoring/domain"
	"github.com/Black-And-White-Club/scorecard/app/shared/observability"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"
)

// Metropolitan blue tee: par and stroke index per hole.
var (
	testPars    = [18]int{4, 3, 4, 5, 4, 5, 3, 5, 4, 4, 3, 4, 3, 5, 4, 4, 4, 4}
	testIndexes = [18]int{7, 15, 11, 3, 9, 1, 13, 5, 17, 8, 14, 12, 16, 2, 6, 10, 18, 4}
)

var testNow = time.Date(2024, 3, 13, 10, 0, 0, 0, time.UTC)

type testDeps struct {
	repo      *FakeRoundRepo
	players   *FakePlayerLookup
	courses   *FakeCourseLookup
	publisher *FakePublisher
}

func newTestDeps() *testDeps {
	return &testDeps{
		repo:      NewFakeRoundRepo(),
		players:   &FakePlayerLookup{},
		courses:   &FakeCourseLookup{},
		publisher: NewFakePublisher(),
	}
}

func (d *testDeps) service() *RoundService {
	return NewRoundService(
		d.repo,
		d.players,
		d.courses,
		d.publisher,
		roundtime.NewDateParser(roundtime.NewAnchorClock(testNow)),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		observability.NewNoop(),
		noop.NewTracerProvider().Tracer("test"),
		nil,
	)
}

func ptr[T any](v T) *T { return &v }

// roundFixture backs the fake repository with one stored round and its holes.
type roundFixture struct {
	round *rounddb.Round
	holes map[int]*rounddb.RoundHole
}

func newRoundFixture(ct scoringdomain.CompetitionType, playerHandicap float64, daily *float64) *roundFixture {
	f := &roundFixture{
		round: &rounddb.Round{
			ID:              uuid.New(),
			CourseID:        uuid.New(),
			TeeID:           uuid.New(),
			PlayerName:      "Alan McLaughlin",
			PlayerHandicap:  playerHandicap,
			DailyHandicap:   daily,
			CompetitionType: ct,
			Date:            time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
			CourseName:      "Metropolitan Golf Club",
			TeeName:         "Blue",
		},
		holes: map[int]*rounddb.RoundHole{},
	}
	for i := 0; i < 18; i++ {
		f.holes[i+1] = &rounddb.RoundHole{
			ID:          uuid.New(),
			RoundID:     f.round.ID,
			HoleNumber:  i + 1,
			Par:         testPars[i],
			StrokeIndex: ptr(testIndexes[i]),
			Distance:    ptr(300 + i),
		}
	}
	return f
}

// score sets gross scores directly on the stored holes, starting at hole 1.
func (f *roundFixture) score(scores ...int) {
	for i, s := range scores {
		f.holes[i+1].Score = ptr(s)
	}
}

func (f *roundFixture) install(repo *FakeRoundRepo) {
	repo.GetRoundFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) (*rounddb.Round, error) {
		if id != f.round.ID {
			return nil, rounddb.ErrNotFound
		}
		r := *f.round
		return &r, nil
	}
	repo.GetHoleFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID, n int) (*rounddb.RoundHole, error) {
		h, ok := f.holes[n]
		if !ok || id != f.round.ID {
			return nil, rounddb.ErrHoleNotFound
		}
		c := *h
		return &c, nil
	}
	repo.UpdateHoleFunc = func(ctx context.Context, db bun.IDB, hole *rounddb.RoundHole) error {
		c := *hole
		f.holes[hole.HoleNumber] = &c
		return nil
	}
	repo.ListHolesFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) ([]*rounddb.RoundHole, error) {
		out := make([]*rounddb.RoundHole, 0, len(f.holes))
		for _, h := range f.holes {
			c := *h
			out = append(out, &c)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].HoleNumber < out[j].HoleNumber })
		return out, nil
	}
	repo.UpdateTotalsFunc = func(ctx context.Context, db bun.IDB, round *rounddb.Round) error {
		r := *round
		f.round = &r
		return nil
	}
	repo.DeleteRoundFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) error {
		if id != f.round.ID {
			return rounddb.ErrNotFound
		}
		return nil
	}
}
