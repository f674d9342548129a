// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-qnexus/internal/config"
	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/migrations"
)

// DB is a connection pool together with the SQL dialect it speaks.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectDB opens the database named by cfg.DSN. DSNs with a postgres
// scheme use pgx; everything else is handed to sqlite.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// statements returns a squirrel builder using the dialect's placeholders.
func (db *DB) statements() sq.StatementBuilderType {
	placeholder := db.placeholder
	if placeholder == nil {
		placeholder = sq.Question
	}
	return sq.StatementBuilder.PlaceholderFormat(placeholder)
}

// classify maps driver constraint errors to store sentinels and returns err
// unchanged otherwise.
func (db *DB) classify(err error) error {
	if db.errorClassificator == nil {
		return err
	}
	return db.errorClassificator.Constraint(err)
}
