package courseservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	coursedb "github.com/Black-And-White-Club/scorecard/app/modules/course/infrastructure/repositories"
	"github.com/Black-And-White-Club/scorecard/app/shared/database"
	"github.com/Black-And-White-Club/scorecard/app/shared/observability"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// CourseService implements Service.
type CourseService struct {
	repo    coursedb.Repository
	logger  *slog.Logger
	metrics observability.ServiceMetrics
	tracer  trace.Tracer
	db      *bun.DB
}

// NewCourseService creates a new CourseService.
func NewCourseService(
	repo coursedb.Repository,
	logger *slog.Logger,
	metrics observability.ServiceMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *CourseService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CourseService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
		db:      db,
	}
}

func (s *CourseService) ListCourses(ctx context.Context) ([]*coursedb.Course, error) {
	return withTelemetry(s, ctx, "ListCourses", "all", func(ctx context.Context) ([]*coursedb.Course, error) {
		courses, err := s.repo.ListCourses(ctx, nil)
		if err != nil {
			return nil, err
		}
		if courses == nil {
			courses = []*coursedb.Course{}
		}
		return courses, nil
	})
}

func (s *CourseService) GetCourse(ctx context.Context, id uuid.UUID) (*coursedb.Course, error) {
	return withTelemetry(s, ctx, "GetCourse", id.String(), func(ctx context.Context) (*coursedb.Course, error) {
		course, err := s.repo.GetCourse(ctx, nil, id)
		if errors.Is(err, coursedb.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return course, err
	})
}

func (s *CourseService) CreateCourse(ctx context.Context, req CreateCourseRequest) (*coursedb.Course, error) {
	return withTelemetry(s, ctx, "CreateCourse", req.Name, func(ctx context.Context) (*coursedb.Course, error) {
		name := strings.TrimSpace(req.Name)
		if name == "" {
			return nil, fmt.Errorf("course %w", ErrNameRequired)
		}
		course := &coursedb.Course{
			Name:        name,
			Location:    req.Location,
			Description: req.Description,
		}
		if err := s.repo.CreateCourse(ctx, nil, course); err != nil {
			return nil, err
		}
		return course, nil
	})
}

func (s *CourseService) ListTees(ctx context.Context, courseID uuid.UUID) ([]*coursedb.Tee, error) {
	return withTelemetry(s, ctx, "ListTees", courseID.String(), func(ctx context.Context) ([]*coursedb.Tee, error) {
		if _, err := s.repo.GetCourse(ctx, nil, courseID); err != nil {
			if errors.Is(err, coursedb.ErrNotFound) {
				return nil, ErrCourseNotFound
			}
			return nil, err
		}
		tees, err := s.repo.ListTees(ctx, nil, courseID)
		if err != nil {
			return nil, err
		}
		if tees == nil {
			tees = []*coursedb.Tee{}
		}
		return tees, nil
	})
}

func (s *CourseService) CreateTee(ctx context.Context, courseID uuid.UUID, req CreateTeeRequest) (*coursedb.Tee, error) {
	return withTelemetry(s, ctx, "CreateTee", courseID.String(), func(ctx context.Context) (*coursedb.Tee, error) {
		name := strings.TrimSpace(req.Name)
		if name == "" {
			return nil, fmt.Errorf("tee %w", ErrNameRequired)
		}

		return database.RunInTx(ctx, s.db, func(ctx context.Context, tx bun.IDB) (*coursedb.Tee, error) {
			if _, err := s.repo.GetCourse(ctx, tx, courseID); err != nil {
				if errors.Is(err, coursedb.ErrNotFound) {
					return nil, ErrCourseNotFound
				}
				return nil, err
			}

			tee := &coursedb.Tee{
				CourseID:      courseID,
				Name:          name,
				Rating:        req.Rating,
				Slope:         req.Slope,
				TotalDistance: req.TotalDistance,
				Color:         req.Color,
			}
			if err := s.repo.CreateTee(ctx, tx, tee); err != nil {
				return nil, err
			}
			return tee, nil
		})
	})
}

func (s *CourseService) ListHoles(ctx context.Context, courseID, teeID uuid.UUID) ([]*coursedb.CourseHole, error) {
	return withTelemetry(s, ctx, "ListHoles", teeID.String(), func(ctx context.Context) ([]*coursedb.CourseHole, error) {
		if err := s.checkTee(ctx, nil, courseID, teeID); err != nil {
			return nil, err
		}
		holes, err := s.repo.ListHoles(ctx, nil, teeID)
		if err != nil {
			return nil, err
		}
		if holes == nil {
			holes = []*coursedb.CourseHole{}
		}
		return holes, nil
	})
}

func (s *CourseService) AddHoles(ctx context.Context, courseID, teeID uuid.UUID, input []HoleInput) ([]*coursedb.CourseHole, error) {
	return withTelemetry(s, ctx, "AddHoles", teeID.String(), func(ctx context.Context) ([]*coursedb.CourseHole, error) {
		if err := validateHoles(input); err != nil {
			return nil, err
		}

		return database.RunInTx(ctx, s.db, func(ctx context.Context, tx bun.IDB) ([]*coursedb.CourseHole, error) {
			if err := s.checkTee(ctx, tx, courseID, teeID); err != nil {
				return nil, err
			}

			holes := make([]*coursedb.CourseHole, 0, len(input))
			for _, in := range input {
				holes = append(holes, &coursedb.CourseHole{
					CourseID:    courseID,
					TeeID:       teeID,
					HoleNumber:  in.HoleNumber,
					Par:         in.Par,
					Distance:    in.Distance,
					StrokeIndex: in.StrokeIndex,
				})
			}

			if err := s.repo.InsertHoles(ctx, tx, holes); err != nil {
				if errors.Is(err, coursedb.ErrDuplicateHole) {
					return nil, ErrDuplicateHoleNumber
				}
				return nil, err
			}
			return s.repo.ListHoles(ctx, tx, teeID)
		})
	})
}

func (s *CourseService) UpdateHole(ctx context.Context, courseID, teeID uuid.UUID, holeNumber int, req UpdateHoleRequest) (*coursedb.CourseHole, error) {
	identifier := fmt.Sprintf("%s/%d", teeID, holeNumber)
	return withTelemetry(s, ctx, "UpdateHole", identifier, func(ctx context.Context) (*coursedb.CourseHole, error) {
		return database.RunInTx(ctx, s.db, func(ctx context.Context, tx bun.IDB) (*coursedb.CourseHole, error) {
			if err := s.checkTee(ctx, tx, courseID, teeID); err != nil {
				return nil, err
			}

			hole, err := s.repo.GetHole(ctx, tx, teeID, holeNumber)
			if err != nil {
				if errors.Is(err, coursedb.ErrNotFound) {
					return nil, ErrHoleNotFound
				}
				return nil, err
			}

			if req.Par != nil {
				hole.Par = *req.Par
			}
			if req.Distance != nil {
				hole.Distance = req.Distance
			}
			if req.StrokeIndex != nil {
				hole.StrokeIndex = req.StrokeIndex
			}
			if err := validateHole(HoleInput{
				HoleNumber:  hole.HoleNumber,
				Par:         hole.Par,
				Distance:    hole.Distance,
				StrokeIndex: hole.StrokeIndex,
			}); err != nil {
				return nil, err
			}

			if err := s.repo.UpdateHole(ctx, tx, hole); err != nil {
				if errors.Is(err, coursedb.ErrNotFound) {
					return nil, ErrHoleNotFound
				}
				return nil, err
			}
			return hole, nil
		})
	})
}

// checkTee verifies the tee exists and belongs to the course.
func (s *CourseService) checkTee(ctx context.Context, db bun.IDB, courseID, teeID uuid.UUID) error {
	tee, err := s.repo.GetTee(ctx, db, teeID)
	if err != nil {
		if errors.Is(err, coursedb.ErrNotFound) {
			return ErrTeeNotFound
		}
		return err
	}
	if tee.CourseID != courseID {
		return ErrTeeNotFound
	}
	return nil
}

func validateHoles(holes []HoleInput) error {
	if len(holes) == 0 {
		return ErrHolesRequired
	}

	numbers := make(map[int]struct{}, len(holes))
	indexes := make(map[int]struct{}, len(holes))
	for _, h := range holes {
		if err := validateHole(h); err != nil {
			return err
		}
		if _, dup := numbers[h.HoleNumber]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateHoleNumber, h.HoleNumber)
		}
		numbers[h.HoleNumber] = struct{}{}

		if h.StrokeIndex != nil {
			if _, dup := indexes[*h.StrokeIndex]; dup {
				return fmt.Errorf("%w: %d", ErrDuplicateStrokeIdx, *h.StrokeIndex)
			}
			indexes[*h.StrokeIndex] = struct{}{}
		}
	}
	return nil
}

func validateHole(h HoleInput) error {
	if h.HoleNumber < 1 || h.HoleNumber > 18 {
		return fmt.Errorf("%w: hole number %d out of range", ErrInvalidHole, h.HoleNumber)
	}
	if h.Par < 1 {
		return fmt.Errorf("%w: hole %d par must be positive", ErrInvalidHole, h.HoleNumber)
	}
	if h.StrokeIndex != nil && (*h.StrokeIndex < 1 || *h.StrokeIndex > 18) {
		return fmt.Errorf("%w: hole %d stroke index %d out of range", ErrInvalidHole, h.HoleNumber, *h.StrokeIndex)
	}
	if h.Distance != nil && *h.Distance < 0 {
		return fmt.Errorf("%w: hole %d distance must not be negative", ErrInvalidHole, h.HoleNumber)
	}
	return nil
}

// withTelemetry wraps an operation with tracing, metrics and logging.
func withTelemetry[T any](s *CourseService, ctx context.Context, operation, identifier string, op func(ctx context.Context) (T, error)) (T, error) {
	return observability.RunOperation(ctx, observability.OperationRunner{
		Service:   "CourseService",
		Logger:    s.logger,
		Tracer:    s.tracer,
		Metrics:   s.metrics,
		IsFailure: IsFailure,
	}, operation, identifier, op)
}
