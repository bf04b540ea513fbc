package coursedb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for course, tee and hole persistence.
type Repository interface {
	ListCourses(ctx context.Context, db bun.IDB) ([]*Course, error)
	GetCourse(ctx context.Context, db bun.IDB, id uuid.UUID) (*Course, error)
	CreateCourse(ctx context.Context, db bun.IDB, course *Course) error

	ListTees(ctx context.Context, db bun.IDB, courseID uuid.UUID) ([]*Tee, error)
	GetTee(ctx context.Context, db bun.IDB, teeID uuid.UUID) (*Tee, error)
	CreateTee(ctx context.Context, db bun.IDB, tee *Tee) error

	// ListHoles returns a tee's holes ordered by hole number.
	ListHoles(ctx context.Context, db bun.IDB, teeID uuid.UUID) ([]*CourseHole, error)
	GetHole(ctx context.Context, db bun.IDB, teeID uuid.UUID, holeNumber int) (*CourseHole, error)
	InsertHoles(ctx context.Context, db bun.IDB, holes []*CourseHole) error
	UpdateHole(ctx context.Context, db bun.IDB, hole *CourseHole) error
}
