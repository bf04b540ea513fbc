package coursedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Black-And-White-Club/scorecard/app/shared/database"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Impl implements Repository using Bun.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new course repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) ListCourses(ctx context.Context, db bun.IDB) ([]*Course, error) {
	db = r.resolveDB(db)
	var courses []*Course
	if err := db.NewSelect().Model(&courses).Order("name ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

func (r *Impl) GetCourse(ctx context.Context, db bun.IDB, id uuid.UUID) (*Course, error) {
	db = r.resolveDB(db)
	course := new(Course)
	if err := db.NewSelect().Model(course).Where("c.id = ?", id).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return course, nil
}

func (r *Impl) CreateCourse(ctx context.Context, db bun.IDB, course *Course) error {
	db = r.resolveDB(db)
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	course.CreatedAt = time.Now().UTC()
	if _, err := db.NewInsert().Model(course).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

func (r *Impl) ListTees(ctx context.Context, db bun.IDB, courseID uuid.UUID) ([]*Tee, error) {
	db = r.resolveDB(db)
	var tees []*Tee
	err := db.NewSelect().
		Model(&tees).
		Where("t.course_id = ?", courseID).
		Order("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tees: %w", err)
	}
	return tees, nil
}

func (r *Impl) GetTee(ctx context.Context, db bun.IDB, teeID uuid.UUID) (*Tee, error) {
	db = r.resolveDB(db)
	tee := new(Tee)
	if err := db.NewSelect().Model(tee).Where("t.id = ?", teeID).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tee: %w", err)
	}
	return tee, nil
}

func (r *Impl) CreateTee(ctx context.Context, db bun.IDB, tee *Tee) error {
	db = r.resolveDB(db)
	if tee.ID == uuid.Nil {
		tee.ID = uuid.New()
	}
	if _, err := db.NewInsert().Model(tee).Exec(ctx); err != nil {
		if database.IsForeignKeyViolation(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to create tee: %w", err)
	}
	return nil
}

func (r *Impl) ListHoles(ctx context.Context, db bun.IDB, teeID uuid.UUID) ([]*CourseHole, error) {
	db = r.resolveDB(db)
	var holes []*CourseHole
	err := db.NewSelect().
		Model(&holes).
		Where("ch.tee_id = ?", teeID).
		Order("hole_number ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holes: %w", err)
	}
	return holes, nil
}

func (r *Impl) GetHole(ctx context.Context, db bun.IDB, teeID uuid.UUID, holeNumber int) (*CourseHole, error) {
	db = r.resolveDB(db)
	hole := new(CourseHole)
	err := db.NewSelect().
		Model(hole).
		Where("ch.tee_id = ?", teeID).
		Where("ch.hole_number = ?", holeNumber).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get hole: %w", err)
	}
	return hole, nil
}

func (r *Impl) InsertHoles(ctx context.Context, db bun.IDB, holes []*CourseHole) error {
	if len(holes) == 0 {
		return nil
	}
	db = r.resolveDB(db)
	for _, h := range holes {
		if h.ID == uuid.Nil {
			h.ID = uuid.New()
		}
	}
	if _, err := db.NewInsert().Model(&holes).Exec(ctx); err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicateHole
		}
		return fmt.Errorf("failed to insert holes: %w", err)
	}
	return nil
}

func (r *Impl) UpdateHole(ctx context.Context, db bun.IDB, hole *CourseHole) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model(hole).
		Column("par", "distance", "stroke_index").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update hole: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
