package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"log/slog"
	"testing"
	"time"

	"github.com/Black-And-White-Club/scorecard/app/migrations"
	"github.com/Black-And-White-Club/scorecard/app/shared/database"
	"github.com/Black-And-White-Club/scorecard/app/shared/eventbus"
	"github.com/Black-And-White-Club/scorecard/app/shared/observability"
	"github.com/Black-And-White-Club/scorecard/config"
	"github.com/Black-And-White-Club/scorecard/integration_tests/containers"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	SeedCourseName = "Metropolitan Golf Club"
	SeedTeeName    = "Blue"
	SeedPlayerName = "Alan McLaughlin"
)

// TestEnvironment holds the resources shared by an integration test package.
type TestEnvironment struct {
	Ctx           context.Context
	CancelContext context.CancelFunc
	PgContainer   *postgres.PostgresContainer
	DB            *bun.DB
	EventBus      eventbus.EventBus
	Config        *config.Config
	Logger        *slog.Logger
	Tracer        trace.Tracer
	Metrics       observability.ServiceMetrics
}

// SeedIDs are the ids of the rows the migrations seed.
type SeedIDs struct {
	CourseID uuid.UUID
	TeeID    uuid.UUID
	PlayerID uuid.UUID
}

// NewTestEnvironment starts Postgres, runs every migration and opens an
// in-memory event bus. It skips the test when no container runtime is
// available.
func NewTestEnvironment(t *testing.T) (*TestEnvironment, error) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx, cancel := context.WithCancel(context.Background())

	pgContainer, connStr, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to setup postgres container: %w", err)
	}

	sqlDB, err := sql.Open("pgx", connStr)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("failed to open sql DB connection: %w", err)
	}
	db := database.Wrap(sqlDB)

	migrateCtx, migrateCancel := context.WithTimeout(ctx, 30*time.Second)
	defer migrateCancel()
	if err := migrations.MigrateAll(migrateCtx, db); err != nil {
		db.Close()
		_ = pgContainer.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &TestEnvironment{
		Ctx:           ctx,
		CancelContext: cancel,
		PgContainer:   pgContainer,
		DB:            db,
		EventBus:      eventbus.New(logger),
		Config:        &config.Config{Postgres: config.PostgresConfig{DSN: connStr}},
		Logger:        logger,
		Tracer:        noop.NewTracerProvider().Tracer("test"),
		Metrics:       observability.NewNoop(),
	}, nil
}

// Reset removes everything except the seeded course and player.
func (env *TestEnvironment) Reset(ctx context.Context) error {
	stmts := []string{
		`TRUNCATE TABLE holes, rounds RESTART IDENTITY CASCADE`,
		fmt.Sprintf(`DELETE FROM players WHERE name <> '%s'`, SeedPlayerName),
		fmt.Sprintf(`DELETE FROM courses WHERE name <> '%s'`, SeedCourseName),
	}
	for _, stmt := range stmts {
		if _, err := env.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("reset %q: %w", stmt, err)
		}
	}
	return nil
}

// Seed looks up the seeded course, blue tee and default player.
func (env *TestEnvironment) Seed(ctx context.Context) (SeedIDs, error) {
	var ids SeedIDs
	err := env.DB.QueryRowContext(ctx, `
		SELECT c.id, t.id
		FROM courses c
		JOIN tees t ON t.course_id = c.id
		WHERE c.name = ? AND t.name = ?`, SeedCourseName, SeedTeeName,
	).Scan(&ids.CourseID, &ids.TeeID)
	if err != nil {
		return ids, fmt.Errorf("failed to find seed course: %w", err)
	}

	if err := env.DB.QueryRowContext(ctx,
		`SELECT id FROM players WHERE name = ?`, SeedPlayerName,
	).Scan(&ids.PlayerID); err != nil {
		return ids, fmt.Errorf("failed to find seed player: %w", err)
	}
	return ids, nil
}

// Cleanup releases every resource of the environment.
func (env *TestEnvironment) Cleanup() {
	if env.EventBus != nil {
		if err := env.EventBus.Close(); err != nil {
			log.Printf("Error closing event bus: %v", err)
		}
	}
	if env.DB != nil {
		if err := env.DB.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}
	if env.PgContainer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := env.PgContainer.Terminate(ctx); err != nil {
			log.Printf("Error terminating postgres container: %v", err)
		}
	}
	if env.CancelContext != nil {
		env.CancelContext()
	}
}
