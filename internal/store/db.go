// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-food-keeper/internal/config"
	"github.com/MKhiriev/go-food-keeper/internal/logger"
	"github.com/MKhiriev/go-food-keeper/migrations"
)

// DB wraps a database/sql pool together with the dialect-specific pieces a
// repository needs: the squirrel placeholder format and the error
// classifier of the driver.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens and pings a connection for cfg.Driver.
//
// PostgreSQL goes through the pgx stdlib driver. SQLite is limited to a
// single open connection because the engine serializes writers anyway and
// concurrent writers would otherwise fail with SQLITE_BUSY.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	switch cfg.Driver {
	case config.DriverPostgres:
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(4)
	case config.DriverSQLite:
		conn.SetMaxOpenConns(1)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("connected to database successfully")

	return newDB(conn, cfg.Driver, log), nil
}

// newDB builds a DB around an already opened pool. Tests use it to wrap
// sqlmock connections.
func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:     conn,
		driver: driver,
		logger: log,
	}

	switch driver {
	case config.DriverSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// Driver returns the database/sql driver name of the pool.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies the embedded schema migrations of the pool's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// classify delegates to the driver's classifier.
func (db *DB) classify(err error) ErrorClassification {
	return db.errorClassificator.Classify(err)
}
