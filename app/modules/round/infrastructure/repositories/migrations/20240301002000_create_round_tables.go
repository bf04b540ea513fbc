package roundmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating rounds and holes tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS rounds (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					course_id UUID NOT NULL REFERENCES courses(id),
					tee_id UUID NOT NULL REFERENCES tees(id),
					player_id UUID REFERENCES players(id) ON DELETE SET NULL,
					player_name VARCHAR(100) NOT NULL,
					player_handicap DOUBLE PRECISION NOT NULL DEFAULT 0,
					daily_handicap DOUBLE PRECISION,
					competition_type VARCHAR(20) NOT NULL
						CHECK (competition_type IN ('Stroke', 'Stableford', 'Par')),
					date DATE NOT NULL,
					total_score INTEGER,
					total_points INTEGER,
					out_score INTEGER NOT NULL DEFAULT 0,
					in_score INTEGER NOT NULL DEFAULT 0,
					out_points INTEGER NOT NULL DEFAULT 0,
					in_points INTEGER NOT NULL DEFAULT 0,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_rounds_date ON rounds(date DESC, created_at DESC);
			`); err != nil {
				return fmt.Errorf("failed to create rounds table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS holes (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					round_id UUID NOT NULL REFERENCES rounds(id) ON DELETE CASCADE,
					hole_number INTEGER NOT NULL CHECK (hole_number BETWEEN 1 AND 18),
					par INTEGER NOT NULL,
					score INTEGER,
					penalties INTEGER NOT NULL DEFAULT 0,
					fairway VARCHAR(10)
						CHECK (fairway IN ('hit', 'miss', 'left', 'right', 'short', 'long', 'na')),
					gir BOOLEAN,
					up_down VARCHAR(10) CHECK (up_down IN ('yes', 'no', 'chip_in', 'na')),
					first_putt_distance DOUBLE PRECISION,
					total_putts INTEGER,
					points INTEGER,
					tiger5_short_miss BOOLEAN NOT NULL DEFAULT FALSE,
					tiger5_missed_updown BOOLEAN NOT NULL DEFAULT FALSE,
					UNIQUE (round_id, hole_number)
				);
			`); err != nil {
				return fmt.Errorf("failed to create holes table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping round tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			for _, table := range []string{"holes", "rounds"} {
				if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table+" CASCADE;"); err != nil {
					return fmt.Errorf("failed to drop %s table: %w", table, err)
				}
			}
			return nil
		})
	})
}
