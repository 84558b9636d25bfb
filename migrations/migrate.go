// Package migrations embeds the SQL schema of the users server and applies
// it with goose. Each backend has its own directory because the insertion
// sequence column is declared differently in Postgres and SQLite.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var errNilDB = errors.New("migration error: db is nil")

// dirs maps goose dialect names to their migration directory.
var dirs = map[string]string{
	"pgx":      "postgres",
	"postgres": "postgres",
	"sqlite3":  "sqlite",
	"sqlite":   "sqlite",
}

// Migrate applies every pending migration. dialect is a goose dialect name
// ("pgx", "postgres", "sqlite3").
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errNilDB
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	dir, ok := dirs[dialect]
	if !ok {
		return fmt.Errorf("migration error: no migrations for dialect %q", dialect)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
