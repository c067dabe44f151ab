// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/migrations"
)

// DB wraps a database handle with the error classifier and the placeholder
// format of its dialect.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	placeholder        sq.PlaceholderFormat
	logger             *logger.Logger
}

// MigrateServer applies the PostgreSQL schema.
func (db *DB) MigrateServer() error {
	return migrations.MigrateServer(db.DB)
}

// MigrateClient applies the Local Store schema.
func (db *DB) MigrateClient() error {
	return migrations.MigrateClient(db.DB)
}

// sb returns a statement builder for the connection's dialect. Dollar
// placeholders are used when none is set.
func (db *DB) sb() sq.StatementBuilderType {
	if db.placeholder == nil {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// maxTxAttempts bounds how often a transaction failing with a retryable
// error is replayed.
const maxTxAttempts = 3

// inTx runs fn inside a transaction. The transaction is rolled back when fn
// or the commit fails, and replayed while the classifier reports the failure
// as retryable.
func (db *DB) inTx(ctx context.Context, funcName string, fn func(tx *sql.Tx) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		if err = db.runTx(ctx, funcName, fn); err == nil {
			return nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable || ctx.Err() != nil {
			return err
		}
		logger.FromContext(ctx).Warn().
			Str("func", funcName).
			Int("attempt", attempt).
			Err(err).
			Msg("retrying transaction")
	}

	return err
}

func (db *DB) runTx(ctx context.Context, funcName string, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
