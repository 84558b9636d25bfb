// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the db on its own; no expectations means every query fails

	err = Migrate(db, "pgx")
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "sqlite3")
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(db, "oracle-ish")
	if err == nil {
		t.Fatal("expected error for unknown dialect, got nil")
	}

	if !strings.Contains(err.Error(), "setting dialect") {
		t.Errorf("expected dialect error, got: %v", err)
	}
}

func TestMigrate_DialectWithoutMigrations(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// goose knows mysql, but no schema is shipped for it
	err = Migrate(db, "mysql")
	if err == nil {
		t.Fatal("expected error for dialect without migrations, got nil")
	}

	if !strings.Contains(err.Error(), "no migrations for dialect") {
		t.Errorf("expected missing-migrations error, got: %v", err)
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	for _, dir := range []string{"postgres", "sqlite"} {
		t.Run(dir, func(t *testing.T) {
			files, err := fs.Glob(embedMigrations, dir+"/*.sql")
			if err != nil {
				t.Fatalf("glob failed: %v", err)
			}
			if len(files) == 0 {
				t.Fatal("expected embedded migrations")
			}

			body, err := fs.ReadFile(embedMigrations, dir+"/00001_create_users.sql")
			if err != nil {
				t.Fatalf("read failed: %v", err)
			}
			for _, want := range []string{"-- +goose Up", "CREATE TABLE IF NOT EXISTS users", "seq ", "id         TEXT NOT NULL UNIQUE"} {
				if !strings.Contains(string(body), want) {
					t.Errorf("migration body lacks %q: %s", want, body)
				}
			}
		})
	}
}

func TestDirsCoverStoreDialects(t *testing.T) {
	for _, dialect := range []string{"pgx", "sqlite3"} {
		if _, ok := dirs[dialect]; !ok {
			t.Errorf("no migration directory for dialect %q", dialect)
		}
	}
}
