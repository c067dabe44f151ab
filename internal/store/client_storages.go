// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/hymusic-sync/internal/config"
	"github.com/MKhiriev/hymusic-sync/internal/logger"
)

// ClientStorages groups the Local Store repositories over one SQLite file.
type ClientStorages struct {
	SongRepository     SongRepository
	PlaylistRepository LocalPlaylistRepository
	LibraryRepository  LibraryRepository
	SettingsRepository SettingsRepository
	SessionRepository  SessionRepository

	closer func() error
}

// NewClientStorages opens the Local Store at cfg.Path, creating the file if
// needed, and applies pending migrations.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("path", cfg.Path).Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.Path, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.MigrateClient(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, log), nil
}

func newClientStorages(db *DB, log *logger.Logger) *ClientStorages {
	return &ClientStorages{
		SongRepository:     NewLocalSongRepository(db, log),
		PlaylistRepository: NewLocalPlaylistRepository(db, log),
		LibraryRepository:  NewLocalLibraryRepository(db, log),
		SettingsRepository: NewLocalSettingsRepository(db, log),
		SessionRepository:  NewLocalSessionRepository(db, log),
		closer:             db.Close,
	}
}

// Close releases the Local Store connection.
func (s *ClientStorages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
