package coursemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

const seedCourseName = "Metropolitan Golf Club"

// metropolitanBlue is hole number, par, distance (m) and stroke index off the blue tee.
var metropolitanBlue = [18][4]int{
	{1, 4, 380, 7}, {2, 3, 165, 15}, {3, 4, 340, 11}, {4, 5, 480, 3},
	{5, 4, 360, 9}, {6, 5, 510, 1}, {7, 3, 180, 13}, {8, 5, 490, 5},
	{9, 4, 350, 17}, {10, 4, 370, 8}, {11, 3, 170, 14}, {12, 4, 345, 12},
	{13, 3, 155, 16}, {14, 5, 505, 2}, {15, 4, 375, 6}, {16, 4, 365, 10},
	{17, 4, 340, 18}, {18, 4, 390, 4},
}

// whiteTeeOffset is how much shorter each hole plays off the white tee.
const whiteTeeOffset = 30

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Seeding Metropolitan Golf Club...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			var exists bool
			if err := tx.QueryRowContext(ctx,
				`SELECT EXISTS (SELECT 1 FROM courses WHERE name = ?)`, seedCourseName,
			).Scan(&exists); err != nil {
				return fmt.Errorf("failed to check seed course: %w", err)
			}
			if exists {
				return nil
			}

			var courseID string
			if err := tx.QueryRowContext(ctx, `
				INSERT INTO courses (name, location, description)
				VALUES (?, 'South Oakleigh, Victoria', 'Championship sandbelt course in Melbourne')
				RETURNING id`, seedCourseName,
			).Scan(&courseID); err != nil {
				return fmt.Errorf("failed to insert course: %w", err)
			}

			tees := []struct {
				name, color   string
				rating        float64
				slope, total  int
				distanceDelta int
			}{
				{"Blue", "#4169E1", 72.5, 135, 6200, 0},
				{"White", "#FFFFFF", 70.2, 128, 5800, whiteTeeOffset},
			}

			for _, tee := range tees {
				var teeID string
				if err := tx.QueryRowContext(ctx, `
					INSERT INTO tees (course_id, name, rating, slope, total_distance, color)
					VALUES (?, ?, ?, ?, ?, ?)
					RETURNING id`,
					courseID, tee.name, tee.rating, tee.slope, tee.total, tee.color,
				).Scan(&teeID); err != nil {
					return fmt.Errorf("failed to insert %s tee: %w", tee.name, err)
				}

				for _, h := range metropolitanBlue {
					if _, err := tx.ExecContext(ctx, `
						INSERT INTO course_holes (course_id, tee_id, hole_number, par, distance, stroke_index)
						VALUES (?, ?, ?, ?, ?, ?)`,
						courseID, teeID, h[0], h[1], h[2]-tee.distanceDelta, h[3],
					); err != nil {
						return fmt.Errorf("failed to insert hole %d for %s tee: %w", h[0], tee.name, err)
					}
				}
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Removing Metropolitan Golf Club seed...")

		if _, err := db.ExecContext(ctx, `DELETE FROM courses WHERE name = ?`, seedCourseName); err != nil {
			return fmt.Errorf("failed to remove seed course: %w", err)
		}
		return nil
	})
}
