// Package migrations embeds the SQL schema of every supported database and
// applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Dialect names accepted by Migrate.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

var ErrUnknownDialect = errors.New("unknown migration dialect")

// Migrate applies all pending migrations of dialect to db.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, gooseDialect, err := resolve(dialect)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	migrationsFS, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("migration error opening %s migrations: %w", dir, err)
	}
	goose.SetBaseFS(migrationsFS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func resolve(dialect string) (dir string, gooseDialect string, err error) {
	switch dialect {
	case DialectPostgres:
		return "postgres", "pgx", nil
	case DialectSQLite:
		return "sqlite", "sqlite3", nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}
}
