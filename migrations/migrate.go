// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schemas of both binaries and applies them
// with goose. The server schema targets PostgreSQL, the client schema targets
// the local SQLite store.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed server/*.sql client/*.sql
var embedMigrations embed.FS

// ErrNilDB is returned when a migration is requested without a connection.
var ErrNilDB = errors.New("db is nil")

const (
	serverDir = "server"
	clientDir = "client"

	serverDialect = "pgx"
	clientDialect = "sqlite3"
)

// goose keeps its base FS and dialect in package state.
var mu sync.Mutex

// MigrateServer applies the PostgreSQL schema of the sync server.
func MigrateServer(db *sql.DB) error {
	return migrate(db, serverDialect, serverDir)
}

// MigrateClient applies the SQLite schema of the client's local store.
func MigrateClient(db *sql.DB) error {
	return migrate(db, clientDialect, clientDir)
}

func migrate(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	mu.Lock()
	defer mu.Unlock()

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
