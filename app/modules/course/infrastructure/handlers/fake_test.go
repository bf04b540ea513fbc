package coursehandlers

import (
	"context"

	courseservice "github.com/Black-And-White-Club/scorecard/app/modules/course/application"
	coursedb "github.com/Black-And-White-Club/scorecard/app/modules/course/infrastructure/repositories"
	"github.com/google/uuid"
)

// FakeService is a programmable courseservice.Service.
type FakeService struct {
	ListCoursesFunc  func(ctx context.Context) ([]*coursedb.Course, error)
	GetCourseFunc    func(ctx context.Context, id uuid.UUID) (*coursedb.Course, error)
	CreateCourseFunc func(ctx context.Context, req courseservice.CreateCourseRequest) (*coursedb.Course, error)
	ListTeesFunc     func(ctx context.Context, courseID uuid.UUID) ([]*coursedb.Tee, error)
	CreateTeeFunc    func(ctx context.Context, courseID uuid.UUID, req courseservice.CreateTeeRequest) (*coursedb.Tee, error)
	ListHolesFunc    func(ctx context.Context, courseID, teeID uuid.UUID) ([]*coursedb.CourseHole, error)
	AddHolesFunc     func(ctx context.Context, courseID, teeID uuid.UUID, holes []courseservice.HoleInput) ([]*coursedb.CourseHole, error)
	UpdateHoleFunc   func(ctx context.Context, courseID, teeID uuid.UUID, holeNumber int, req courseservice.UpdateHoleRequest) (*coursedb.CourseHole, error)
}

func (f *FakeService) ListCourses(ctx context.Context) ([]*coursedb.Course, error) {
	if f.ListCoursesFunc != nil {
		return f.ListCoursesFunc(ctx)
	}
	return []*coursedb.Course{}, nil
}

func (f *FakeService) GetCourse(ctx context.Context, id uuid.UUID) (*coursedb.Course, error) {
	if f.GetCourseFunc != nil {
		return f.GetCourseFunc(ctx, id)
	}
	return nil, courseservice.ErrCourseNotFound
}

func (f *FakeService) CreateCourse(ctx context.Context, req courseservice.CreateCourseRequest) (*coursedb.Course, error) {
	if f.CreateCourseFunc != nil {
		return f.CreateCourseFunc(ctx, req)
	}
	return &coursedb.Course{ID: uuid.New(), Name: req.Name}, nil
}

func (f *FakeService) ListTees(ctx context.Context, courseID uuid.UUID) ([]*coursedb.Tee, error) {
	if f.ListTeesFunc != nil {
		return f.ListTeesFunc(ctx, courseID)
	}
	return []*coursedb.Tee{}, nil
}

func (f *FakeService) CreateTee(ctx context.Context, courseID uuid.UUID, req courseservice.CreateTeeRequest) (*coursedb.Tee, error) {
	if f.CreateTeeFunc != nil {
		return f.CreateTeeFunc(ctx, courseID, req)
	}
	return &coursedb.Tee{ID: uuid.New(), CourseID: courseID, Name: req.Name}, nil
}

func (f *FakeService) ListHoles(ctx context.Context, courseID, teeID uuid.UUID) ([]*coursedb.CourseHole, error) {
	if f.ListHolesFunc != nil {
		return f.ListHolesFunc(ctx, courseID, teeID)
	}
	return []*coursedb.CourseHole{}, nil
}

func (f *FakeService) AddHoles(ctx context.Context, courseID, teeID uuid.UUID, holes []courseservice.HoleInput) ([]*coursedb.CourseHole, error) {
	if f.AddHolesFunc != nil {
		return f.AddHolesFunc(ctx, courseID, teeID, holes)
	}
	return []*coursedb.CourseHole{}, nil
}

func (f *FakeService) UpdateHole(ctx context.Context, courseID, teeID uuid.UUID, holeNumber int, req courseservice.UpdateHoleRequest) (*coursedb.CourseHole, error) {
	if f.UpdateHoleFunc != nil {
		return f.UpdateHoleFunc(ctx, courseID, teeID, holeNumber, req)
	}
	return &coursedb.CourseHole{TeeID: teeID, HoleNumber: holeNumber}, nil
}

var _ courseservice.Service = (*FakeService)(nil)
