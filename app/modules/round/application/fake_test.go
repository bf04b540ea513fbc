package roundservice

import (
	"context"
	"sync"

	rounddb "github.com/Black-And-White-Club/scorecard/app/modules/round/infrastructure/repositories"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Round Repo
// ------------------------

type FakeRoundRepo struct {
	trace []string

	CreateRoundFunc        func(ctx context.Context, db bun.IDB, round *rounddb.Round) error
	GetRoundFunc           func(ctx context.Context, db bun.IDB, id uuid.UUID) (*rounddb.Round, error)
	ListRoundsFunc         func(ctx context.Context, db bun.IDB) ([]*rounddb.Round, error)
	UpdateTotalsFunc       func(ctx context.Context, db bun.IDB, round *rounddb.Round) error
	DeleteRoundFunc        func(ctx context.Context, db bun.IDB, id uuid.UUID) error
	SeedHolesFunc          func(ctx context.Context, db bun.IDB, round *rounddb.Round) (int, error)
	ListHolesFunc          func(ctx context.Context, db bun.IDB, roundID uuid.UUID) ([]*rounddb.RoundHole, error)
	GetHoleFunc            func(ctx context.Context, db bun.IDB, roundID uuid.UUID, holeNumber int) (*rounddb.RoundHole, error)
	UpdateHoleFunc         func(ctx context.Context, db bun.IDB, hole *rounddb.RoundHole) error
	SummaryFunc            func(ctx context.Context, db bun.IDB) (*rounddb.Summary, error)
	RecentScoredRoundsFunc func(ctx context.Context, db bun.IDB, limit int) ([]*rounddb.Round, error)
}

func NewFakeRoundRepo() *FakeRoundRepo {
	return &FakeRoundRepo{trace: []string{}}
}

func (f *FakeRoundRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeRoundRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeRoundRepo) CreateRound(ctx context.Context, db bun.IDB, round *rounddb.Round) error {
	f.record("CreateRound")
	if f.CreateRoundFunc != nil {
		return f.CreateRoundFunc(ctx, db, round)
	}
	if round.ID == uuid.Nil {
		round.ID = uuid.New()
	}
	return nil
}

func (f *FakeRoundRepo) GetRound(ctx context.Context, db bun.IDB, id uuid.UUID) (*rounddb.Round, error) {
	f.record("GetRound")
	if f.GetRoundFunc != nil {
		return f.GetRoundFunc(ctx, db, id)
	}
	return nil, rounddb.ErrNotFound
}

func (f *FakeRoundRepo) ListRounds(ctx context.Context, db bun.IDB) ([]*rounddb.Round, error) {
	f.record("ListRounds")
	if f.ListRoundsFunc != nil {
		return f.ListRoundsFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeRoundRepo) UpdateTotals(ctx context.Context, db bun.IDB, round *rounddb.Round) error {
	f.record("UpdateTotals")
	if f.UpdateTotalsFunc != nil {
		return f.UpdateTotalsFunc(ctx, db, round)
	}
	return nil
}

func (f *FakeRoundRepo) DeleteRound(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	f.record("DeleteRound")
	if f.DeleteRoundFunc != nil {
		return f.DeleteRoundFunc(ctx, db, id)
	}
	return nil
}

func (f *FakeRoundRepo) SeedHoles(ctx context.Context, db bun.IDB, round *rounddb.Round) (int, error) {
	f.record("SeedHoles")
	if f.SeedHolesFunc != nil {
		return f.SeedHolesFunc(ctx, db, round)
	}
	return 18, nil
}

func (f *FakeRoundRepo) ListHoles(ctx context.Context, db bun.IDB, roundID uuid.UUID) ([]*rounddb.RoundHole, error) {
	f.record("ListHoles")
	if f.ListHolesFunc != nil {
		return f.ListHolesFunc(ctx, db, roundID)
	}
	return nil, nil
}

func (f *FakeRoundRepo) GetHole(ctx context.Context, db bun.IDB, roundID uuid.UUID, holeNumber int) (*rounddb.RoundHole, error) {
	f.record("GetHole")
	if f.GetHoleFunc != nil {
		return f.GetHoleFunc(ctx, db, roundID, holeNumber)
	}
	return nil, rounddb.ErrHoleNotFound
}

func (f *FakeRoundRepo) UpdateHole(ctx context.Context, db bun.IDB, hole *rounddb.RoundHole) error {
	f.record("UpdateHole")
	if f.UpdateHoleFunc != nil {
		return f.UpdateHoleFunc(ctx, db, hole)
	}
	return nil
}

func (f *FakeRoundRepo) Summary(ctx context.Context, db bun.IDB) (*rounddb.Summary, error) {
	f.record("Summary")
	if f.SummaryFunc != nil {
		return f.SummaryFunc(ctx, db)
	}
	return &rounddb.Summary{}, nil
}

func (f *FakeRoundRepo) RecentScoredRounds(ctx context.Context, db bun.IDB, limit int) ([]*rounddb.Round, error) {
	f.record("RecentScoredRounds")
	if f.RecentScoredRoundsFunc != nil {
		return f.RecentScoredRoundsFunc(ctx, db, limit)
	}
	return nil, nil
}

var _ rounddb.Repository = (*FakeRoundRepo)(nil)

// ------------------------
// Fake Lookups
// ------------------------

type FakePlayerLookup struct {
	FindPlayerFunc func(ctx context.Context, db bun.IDB, id uuid.UUID) (*PlayerIdentity, error)
}

func (f *FakePlayerLookup) FindPlayer(ctx context.Context, db bun.IDB, id uuid.UUID) (*PlayerIdentity, error) {
	if f.FindPlayerFunc != nil {
		return f.FindPlayerFunc(ctx, db, id)
	}
	return nil, nil
}

type FakeCourseLookup struct {
	TeeOnCourseFunc func(ctx context.Context, db bun.IDB, courseID, teeID uuid.UUID) (bool, error)
}

func (f *FakeCourseLookup) TeeOnCourse(ctx context.Context, db bun.IDB, courseID, teeID uuid.UUID) (bool, error) {
	if f.TeeOnCourseFunc != nil {
		return f.TeeOnCourseFunc(ctx, db, courseID, teeID)
	}
	return true, nil
}

var (
	_ PlayerLookup = (*FakePlayerLookup)(nil)
	_ CourseLookup = (*FakeCourseLookup)(nil)
)

// ------------------------
// Fake Publisher
// ------------------------

type FakePublisher struct {
	mu       sync.Mutex
	messages map[string][]*message.Message
	err      error
}

func NewFakePublisher() *FakePublisher {
	return &FakePublisher{messages: map[string][]*message.Message{}}
}

func (p *FakePublisher) Publish(topic string, msgs ...*message.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.messages[topic] = append(p.messages[topic], msgs...)
	return nil
}

func (p *FakePublisher) Close() error { return nil }

func (p *FakePublisher) Messages(topic string) []*message.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*message.Message(nil), p.messages[topic]...)
}

var _ message.Publisher = (*FakePublisher)(nil)
