// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/hymusic-sync/internal/config"
	"github.com/MKhiriev/hymusic-sync/internal/logger"
)

// Storages groups the server repositories over one PostgreSQL connection.
type Storages struct {
	UserRepository           UserRepository
	SyncRepository           SyncRepository
	AnnouncementRepository   AnnouncementRepository
	SystemSettingsRepository SystemSettingsRepository

	// DB answers health pings.
	DB Pinger

	closer func() error
}

// NewStorages connects to PostgreSQL, applies pending migrations and builds
// every server repository.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.MigrateServer(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:           NewUserRepository(db, log),
		SyncRepository:           NewSyncRepository(db, log),
		AnnouncementRepository:   NewAnnouncementRepository(db, log),
		SystemSettingsRepository: NewSystemSettingsRepository(db, log),
		DB:                       db,
		closer:                   db.Close,
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
