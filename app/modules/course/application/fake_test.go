package courseservice

import (
	"context"

	coursedb "github.com/Black-And-White-Club/scorecard/app/modules/course/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Course Repo
// ------------------------

type FakeCourseRepo struct {
	trace []string

	ListCoursesFunc  func(ctx context.Context, db bun.IDB) ([]*coursedb.Course, error)
	GetCourseFunc    func(ctx context.Context, db bun.IDB, id uuid.UUID) (*coursedb.Course, error)
	CreateCourseFunc func(ctx context.Context, db bun.IDB, course *coursedb.Course) error
	ListTeesFunc     func(ctx context.Context, db bun.IDB, courseID uuid.UUID) ([]*coursedb.Tee, error)
	GetTeeFunc       func(ctx context.Context, db bun.IDB, teeID uuid.UUID) (*coursedb.Tee, error)
	CreateTeeFunc    func(ctx context.Context, db bun.IDB, tee *coursedb.Tee) error
	ListHolesFunc    func(ctx context.Context, db bun.IDB, teeID uuid.UUID) ([]*coursedb.CourseHole, error)
	GetHoleFunc      func(ctx context.Context, db bun.IDB, teeID uuid.UUID, holeNumber int) (*coursedb.CourseHole, error)
	InsertHolesFunc  func(ctx context.Context, db bun.IDB, holes []*coursedb.CourseHole) error
	UpdateHoleFunc   func(ctx context.Context, db bun.IDB, hole *coursedb.CourseHole) error
}

func NewFakeCourseRepo() *FakeCourseRepo {
	return &FakeCourseRepo{trace: []string{}}
}

func (f *FakeCourseRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeCourseRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeCourseRepo) ListCourses(ctx context.Context, db bun.IDB) ([]*coursedb.Course, error) {
	f.record("ListCourses")
	if f.ListCoursesFunc != nil {
		return f.ListCoursesFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeCourseRepo) GetCourse(ctx context.Context, db bun.IDB, id uuid.UUID) (*coursedb.Course, error) {
	f.record("GetCourse")
	if f.GetCourseFunc != nil {
		return f.GetCourseFunc(ctx, db, id)
	}
	return nil, coursedb.ErrNotFound
}

func (f *FakeCourseRepo) CreateCourse(ctx context.Context, db bun.IDB, course *coursedb.Course) error {
	f.record("CreateCourse")
	if f.CreateCourseFunc != nil {
		return f.CreateCourseFunc(ctx, db, course)
	}
	return nil
}

func (f *FakeCourseRepo) ListTees(ctx context.Context, db bun.IDB, courseID uuid.UUID) ([]*coursedb.Tee, error) {
	f.record("ListTees")
	if f.ListTeesFunc != nil {
		return f.ListTeesFunc(ctx, db, courseID)
	}
	return nil, nil
}

func (f *FakeCourseRepo) GetTee(ctx context.Context, db bun.IDB, teeID uuid.UUID) (*coursedb.Tee, error) {
	f.record("GetTee")
	if f.GetTeeFunc != nil {
		return f.GetTeeFunc(ctx, db, teeID)
	}
	return nil, coursedb.ErrNotFound
}

func (f *FakeCourseRepo) CreateTee(ctx context.Context, db bun.IDB, tee *coursedb.Tee) error {
	f.record("CreateTee")
	if f.CreateTeeFunc != nil {
		return f.CreateTeeFunc(ctx, db, tee)
	}
	return nil
}

func (f *FakeCourseRepo) ListHoles(ctx context.Context, db bun.IDB, teeID uuid.UUID) ([]*coursedb.CourseHole, error) {
	f.record("ListHoles")
	if f.ListHolesFunc != nil {
		return f.ListHolesFunc(ctx, db, teeID)
	}
	return nil, nil
}

func (f *FakeCourseRepo) GetHole(ctx context.Context, db bun.IDB, teeID uuid.UUID, holeNumber int) (*coursedb.CourseHole, error) {
	f.record("GetHole")
	if f.GetHoleFunc != nil {
		return f.GetHoleFunc(ctx, db, teeID, holeNumber)
	}
	return nil, coursedb.ErrNotFound
}

func (f *FakeCourseRepo) InsertHoles(ctx context.Context, db bun.IDB, holes []*coursedb.CourseHole) error {
	f.record("InsertHoles")
	if f.InsertHolesFunc != nil {
		return f.InsertHolesFunc(ctx, db, holes)
	}
	return nil
}

func (f *FakeCourseRepo) UpdateHole(ctx context.Context, db bun.IDB, hole *coursedb.CourseHole) error {
	f.record("UpdateHole")
	if f.UpdateHoleFunc != nil {
		return f.UpdateHoleFunc(ctx, db, hole)
	}
	return nil
}

var _ coursedb.Repository = (*FakeCourseRepo)(nil)
