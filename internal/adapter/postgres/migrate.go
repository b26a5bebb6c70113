package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/greencampus/emission-engine/migrations"
)

// NewMigrator opens a database/sql handle over the pgx driver and returns a
// goose provider for the embedded migrations. The caller closes the *sql.DB.
//
// goose.NewProvider handles the $$-delimited trigger functions in the catalog
// migration, unlike the legacy goose.Up.
func NewMigrator(dsn string) (*goose.Provider, *sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("goose provider: %w", err)
	}

	return provider, db, nil
}
