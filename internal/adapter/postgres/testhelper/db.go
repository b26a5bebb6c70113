// Package testhelper provides a migrated PostgreSQL for repository,
// integration and end-to-end tests, plus seeding helpers for the factor
// catalog and calculations.
package testhelper

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/greencampus/emission-engine/internal/adapter/postgres"
)

// DSNEnv points tests at an already running database instead of a container.
const DSNEnv = "TEST_DATABASE_DSN"

const (
	image    = "postgres:17-alpine"
	user     = "emission"
	password = "emission"
	dbName   = "emission_test"

	// poolSize covers the concurrent submission tests.
	poolSize = 16
)

var (
	once    sync.Once
	dsn     string
	initErr error
)

// SetupTestDB returns a pool on a migrated database shared by the whole test
// binary. The database is TEST_DATABASE_DSN when set, otherwise a container
// started on first use. The pool is closed on t.Cleanup. Skipped under -short.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("testhelper: PostgreSQL-backed test skipped in -short mode")
	}

	once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		dsn, initErr = prepare(ctx)
	})
	if initErr != nil {
		t.Fatalf("testhelper: prepare database: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		t.Fatalf("testhelper: parse DSN: %v", err)
	}
	cfg.MaxConns = poolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		t.Fatalf("testhelper: connect: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func prepare(ctx context.Context) (string, error) {
	target := os.Getenv(DSNEnv)
	if target == "" {
		var err error
		if target, err = startContainer(ctx); err != nil {
			return "", err
		}
	}

	if err := migrate(ctx, target); err != nil {
		return "", err
	}
	return target, nil
}

// startContainer runs PostgreSQL for the lifetime of the test process.
func startContainer(ctx context.Context) (string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     user,
				"POSTGRES_PASSWORD": password,
				"POSTGRES_DB":       dbName,
			},
			// The server restarts once after initdb; wait for the second start.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start %s: %w", image, err)
	}

	endpoint, err := container.PortEndpoint(ctx, "5432/tcp", "")
	if err != nil {
		return "", fmt.Errorf("container endpoint: %w", err)
	}

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", user, password, endpoint, dbName), nil
}

func migrate(ctx context.Context, target string) error {
	provider, db, err := postgres.NewMigrator(target)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
