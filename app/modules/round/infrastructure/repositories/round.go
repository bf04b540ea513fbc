package rounddb

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

// NewRepository creates a new round repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) CreateRound(ctx context.Context, db bun.IDB, round *Round) error {
	db = r.resolveDB(db)
	if round.ID == uuid.Nil {
		round.ID = uuid.New()
	}
	round.CreatedAt = time.Now().UTC()

	if _, err := db.NewInsert().Model(round).Exec(ctx); err != nil {
		if database.IsForeignKeyViolation(err) {
			return ErrInvalidRef
		}
		return fmt.Errorf("failed to create round: %w", err)
	}
	return nil
}

// joinCourse selects the round columns plus course and tee details.
func joinCourse(q *bun.SelectQuery) *bun.SelectQuery {
	return q.
		ColumnExpr("r.*").
		ColumnExpr("c.name AS course_name").
		ColumnExpr("c.location AS course_location").
		ColumnExpr("t.name AS tee_name").
		ColumnExpr("t.rating AS tee_rating").
		ColumnExpr("t.slope AS tee_slope").
		Join("JOIN courses AS c ON c.id = r.course_id").
		Join("JOIN tees AS t ON t.id = r.tee_id")
}

func (r *Impl) GetRound(ctx context.Context, db bun.IDB, id uuid.UUID) (*Round, error) {
	db = r.resolveDB(db)
	round := new(Round)

	err := db.NewSelect().
		Model(round).
		Apply(joinCourse).
		Where("r.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get round: %w", err)
	}
	return round, nil
}

func (r *Impl) ListRounds(ctx context.Context, db bun.IDB) ([]*Round, error) {
	db = r.resolveDB(db)
	var rounds []*Round

	err := db.NewSelect().
		Model(&rounds).
		Apply(joinCourse).
		ColumnExpr("(SELECT SUM(ch.par) FROM course_holes AS ch WHERE ch.tee_id = r.tee_id) AS course_par").
		OrderExpr("r.date DESC, r.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}
	return rounds, nil
}

func (r *Impl) UpdateTotals(ctx context.Context, db bun.IDB, round *Round) error {
	db = r.resolveDB(db)

	res, err := db.NewUpdate().
		Model(round).
		Column("total_score", "total_points", "out_score", "in_score", "out_points", "in_points").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update round totals: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func (r *Impl) DeleteRound(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	db = r.resolveDB(db)

	res, err := db.NewDelete().
		Model((*Round)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete round: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Impl) SeedHoles(ctx context.Context, db bun.IDB, round *Round) (int, error) {
	db = r.resolveDB(db)

	res, err := db.ExecContext(ctx, `
		INSERT INTO holes (id, round_id, hole_number, par, penalties, tiger5_short_miss, tiger5_missed_updown)
		SELECT gen_random_uuid(), ?, ch.hole_number, ch.par, 0, FALSE, FALSE
		FROM course_holes AS ch
		WHERE ch.course_id = ? AND ch.tee_id = ?
		ORDER BY ch.hole_number
	`, round.ID, round.CourseID, round.TeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to seed round holes: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (r *Impl) ListHoles(ctx context.Context, db bun.IDB, roundID uuid.UUID) ([]*RoundHole, error) {
	db = r.resolveDB(db)
	var holes []*RoundHole

	err := db.NewSelect().
		Model(&holes).
		ColumnExpr("h.*").
		ColumnExpr("ch.stroke_index, ch.distance").
		Join("JOIN rounds AS r ON r.id = h.round_id").
		Join("LEFT JOIN course_holes AS ch ON ch.tee_id = r.tee_id AND ch.hole_number = h.hole_number").
		Where("h.round_id = ?", roundID).
		Order("h.hole_number ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list round holes: %w", err)
	}
	return holes, nil
}

func (r *Impl) GetHole(ctx context.Context, db bun.IDB, roundID uuid.UUID, holeNumber int) (*RoundHole, error) {
	db = r.resolveDB(db)
	hole := new(RoundHole)

	err := db.NewSelect().
		Model(hole).
		ColumnExpr("h.*").
		ColumnExpr("ch.stroke_index, ch.distance").
		Join("JOIN rounds AS r ON r.id = h.round_id").
		Join("LEFT JOIN course_holes AS ch ON ch.tee_id = r.tee_id AND ch.hole_number = h.hole_number").
		Where("h.round_id = ?", roundID).
		Where("h.hole_number = ?", holeNumber).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHoleNotFound
		}
		return nil, fmt.Errorf("failed to get round hole: %w", err)
	}
	return hole, nil
}

func (r *Impl) UpdateHole(ctx context.Context, db bun.IDB, hole *RoundHole) error {
	db = r.resolveDB(db)

	res, err := db.NewUpdate().
		Model(hole).
		Column(
			"score", "penalties", "fairway", "gir", "up_down",
			"first_putt_distance", "total_putts", "points",
			"tiger5_short_miss", "tiger5_missed_updown",
		).
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update round hole: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrHoleNotFound
	}
	return nil
}

func (r *Impl) Summary(ctx context.Context, db bun.IDB) (*Summary, error) {
	db = r.resolveDB(db)
	summary := new(Summary)

	err := db.NewSelect().
		TableExpr("rounds AS r").
		ColumnExpr("COUNT(*) AS total_rounds").
		ColumnExpr("MIN(r.total_score) AS best_score").
		ColumnExpr("MAX(r.total_score) AS worst_score").
		ColumnExpr("AVG(r.total_score)::float8 AS average_score").
		ColumnExpr("MAX(r.total_points) FILTER (WHERE r.competition_type <> 'Stroke') AS best_points").
		ColumnExpr("(AVG(r.total_points) FILTER (WHERE r.competition_type <> 'Stroke'))::float8 AS average_points").
		ColumnExpr("COUNT(DISTINCT r.course_id) AS courses_played").
		Scan(ctx, summary)
	if err != nil {
		return nil, fmt.Errorf("failed to summarise rounds: %w", err)
	}
	return summary, nil
}

func (r *Impl) RecentScoredRounds(ctx context.Context, db bun.IDB, limit int) ([]*Round, error) {
	db = r.resolveDB(db)
	var rounds []*Round

	err := db.NewSelect().
		Model(&rounds).
		Apply(joinCourse).
		Where("r.total_score IS NOT NULL").
		OrderExpr("r.date DESC, r.created_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent rounds: %w", err)
	}
	return rounds, nil
}
