package courseservice

import (
	"context"

	coursedb "github.com/Black-And-White-Club/scorecard/app/modules/course/infrastructure/repositories"
	"github.com/google/uuid"
)

// Service manages courses, their tees and per-tee hole data.
type Service interface {
	ListCourses(ctx context.Context) ([]*coursedb.Course, error)
	GetCourse(ctx context.Context, id uuid.UUID) (*coursedb.Course, error)
	CreateCourse(ctx context.Context, req CreateCourseRequest) (*coursedb.Course, error)

	ListTees(ctx context.Context, courseID uuid.UUID) ([]*coursedb.Tee, error)
	CreateTee(ctx context.Context, courseID uuid.UUID, req CreateTeeRequest) (*coursedb.Tee, error)

	ListHoles(ctx context.Context, courseID, teeID uuid.UUID) ([]*coursedb.CourseHole, error)
	AddHoles(ctx context.Context, courseID, teeID uuid.UUID, holes []HoleInput) ([]*coursedb.CourseHole, error)
	UpdateHole(ctx context.Context, courseID, teeID uuid.UUID, holeNumber int, req UpdateHoleRequest) (*coursedb.CourseHole, error)
}

type CreateCourseRequest struct {
	Name        string  `json:"name"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

type CreateTeeRequest struct {
	Name          string   `json:"name"`
	Rating        *float64 `json:"rating"`
	Slope         *int     `json:"slope"`
	TotalDistance *int     `json:"total_distance"`
	Color         *string  `json:"color"`
}

// HoleInput describes one hole in a bulk AddHoles call.
type HoleInput struct {
	HoleNumber  int  `json:"hole_number"`
	Par         int  `json:"par"`
	Distance    *int `json:"distance"`
	StrokeIndex *int `json:"stroke_index"`
}

// UpdateHoleRequest changes only the fields that are set.
type UpdateHoleRequest struct {
	Par         *int `json:"par"`
	Distance    *int `json:"distance"`
	StrokeIndex *int `json:"stroke_index"`
}
