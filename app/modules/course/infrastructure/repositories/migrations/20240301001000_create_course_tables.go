package coursemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating courses, tees and course_holes tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS courses (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					name VARCHAR(200) NOT NULL,
					location TEXT,
					description TEXT,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`); err != nil {
				return fmt.Errorf("failed to create courses table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS tees (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					course_id UUID NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
					name VARCHAR(50) NOT NULL,
					rating DOUBLE PRECISION,
					slope INTEGER,
					total_distance INTEGER,
					color VARCHAR(20)
				);
				CREATE INDEX IF NOT EXISTS idx_tees_course_id ON tees(course_id);
			`); err != nil {
				return fmt.Errorf("failed to create tees table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS course_holes (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					course_id UUID NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
					tee_id UUID NOT NULL REFERENCES tees(id) ON DELETE CASCADE,
					hole_number INTEGER NOT NULL CHECK (hole_number BETWEEN 1 AND 18),
					par INTEGER NOT NULL,
					distance INTEGER,
					stroke_index INTEGER,
					UNIQUE (tee_id, hole_number)
				);
			`); err != nil {
				return fmt.Errorf("failed to create course_holes table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping course tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			for _, table := range []string{"course_holes", "tees", "courses"} {
				if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table+" CASCADE;"); err != nil {
					return fmt.Errorf("failed to drop %s table: %w", table, err)
				}
			}
			return nil
		})
	})
}
