package playermigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Seeding default player...")

		if _, err := db.ExecContext(ctx, `
			INSERT INTO players (name, handicap)
			VALUES ('Alan McLaughlin', 7.8)
			ON CONFLICT (name) DO NOTHING;
		`); err != nil {
			return fmt.Errorf("failed to seed default player: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Removing default player...")

		if _, err := db.ExecContext(ctx, `DELETE FROM players WHERE name = 'Alan McLaughlin';`); err != nil {
			return fmt.Errorf("failed to remove default player: %w", err)
		}
		return nil
	})
}
