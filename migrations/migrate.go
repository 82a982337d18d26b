// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the goose SQL migrations of the food store.
// Each supported driver has its own directory so that column types can
// follow the dialect while the schema stays the same.
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

// Driver names accepted by [Migrate]. They match the database/sql driver
// names registered by pgx and go-sqlite3.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

var (
	// ErrNilDB is returned when Migrate is called without a connection.
	ErrNilDB = errors.New("migration error: db is nil")
	// ErrUnsupportedDriver is returned for a driver without migrations.
	ErrUnsupportedDriver = errors.New("migration error: unsupported driver")
)

// Migrate applies every pending migration for driver to db.
//
// goose keeps its dialect and filesystem in package state, so concurrent
// calls are not supported.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return ErrNilDB
	}

	dir, err := migrationsDir(driver)
	if err != nil {
		return err
	}

	goose.SetBaseFS(embedMigrations)

	if err = goose.SetDialect(driver); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err = goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func migrationsDir(driver string) (string, error) {
	switch driver {
	case DriverPostgres:
		return "postgres", nil
	case DriverSQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}
