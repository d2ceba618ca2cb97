// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Juan D. Cruz

// Package migrations embeds the registry schema and applies it with goose.
//
// The schema is kept per dialect: LGU data centers run PostgreSQL while
// standalone barangay installs run SQLite, and the two disagree on
// auto-increment syntax.
package migrations

import (
	"database/sql"
	"errors"
	"fmt"

	"embed"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations to db. The dialect must match the
// configured storage driver ("pgx" or "sqlite3").
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	var dir string
	switch dialect {
	case "pgx", "postgres":
		dir = "postgres"
	case "sqlite3", "sqlite":
		dir = "sqlite"
	default:
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
