// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations holds the embedded goose migrations of the server
// (PostgreSQL) and client (SQLite) schemas.
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

const (
	postgresDir = "postgres"
	sqliteDir   = "sqlite"
)

var errNilDB = errors.New("db is nil")

// Migrate applies the server schema to a PostgreSQL database opened with
// the pgx driver.
func Migrate(db *sql.DB) error {
	return up(db, "pgx", postgresDir)
}

// MigrateClient applies the client schema to the local SQLite database.
func MigrateClient(db *sql.DB) error {
	return up(db, "sqlite3", sqliteDir)
}

func up(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
