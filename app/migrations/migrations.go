// Package migrations collects every module's bun migrations in dependency
// order: rounds reference players and courses.
package migrations

import (
	"context"
	"fmt"

	coursemigrations "github.com/Black-And-White-Club/scorecard/app/modules/course/infrastructure/repositories/migrations"
	playermigrations "github.com/Black-And-White-Club/scorecard/app/modules/player/infrastructure/repositories/migrations"
	roundmigrations "github.com/Black-And-White-Club/scorecard/app/modules/round/infrastructure/repositories/migrations"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

// ModuleMigrator is a named module migrator.
type ModuleMigrator struct {
	Name     string
	Migrator *migrate.Migrator
}

// Migrators returns one migrator per module, in apply order.
func Migrators(db *bun.DB) []ModuleMigrator {
	return []ModuleMigrator{
		{"player", migrate.NewMigrator(db, playermigrations.Migrations)},
		{"course", migrate.NewMigrator(db, coursemigrations.Migrations)},
		{"round", migrate.NewMigrator(db, roundmigrations.Migrations)},
	}
}

// Find returns the migrator for module name.
func Find(migrators []ModuleMigrator, name string) (*migrate.Migrator, error) {
	for _, m := range migrators {
		if m.Name == name {
			return m.Migrator, nil
		}
	}
	return nil, fmt.Errorf("invalid module name: %s", name)
}

// MigrateAll creates the migration tables and applies every module's pending
// migrations.
func MigrateAll(ctx context.Context, db *bun.DB) error {
	for _, m := range Migrators(db) {
		if err := m.Migrator.Init(ctx); err != nil {
			return fmt.Errorf("failed to init %s migrations: %w", m.Name, err)
		}
		if _, err := m.Migrator.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", m.Name, err)
		}
	}
	return nil
}
