// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/models"
)

// localPlaylistRepository is the SQLite-backed [LocalPlaylistRepository].
// Track order is kept by storing the video ids as a JSON array.
type localPlaylistRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewLocalPlaylistRepository(db *DB, logger *logger.Logger) LocalPlaylistRepository {
	logger.Debug().Msg("creating local playlist repository")
	return &localPlaylistRepository{
		db:     db,
		logger: logger,
	}
}

func (r *localPlaylistRepository) ListPlaylists(ctx context.Context) ([]models.LocalPlaylist, error) {
	playlists := make([]models.LocalPlaylist, 0)
	err := queryRows(ctx, r.db, getLocalPlaylists, nil, func(rows *sql.Rows) error {
		var (
			p      models.LocalPlaylist
			tracks string
		)
		if err := rows.Scan(&p.ID, &p.Title, &p.Thumbnail, &tracks, &p.InLibrary, &p.DownloadState); err != nil {
			return err
		}
		if err := decodeStrings(tracks, &p.Tracks); err != nil {
			return err
		}
		playlists = append(playlists, p)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localPlaylistRepository.ListPlaylists").Msg("failed to list playlists")
		return nil, err
	}

	return playlists, nil
}

func (r *localPlaylistRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countLocalPlaylistsByTitle, title).Scan(&n); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localPlaylistRepository.ExistsByTitle").
			Str("title", title).
			Msg("failed to count playlists")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n > 0, nil
}

// CreatePlaylist stores the playlist and returns its new id.
func (r *localPlaylistRepository) CreatePlaylist(ctx context.Context, playlist models.LocalPlaylist) (int64, error) {
	log := logger.FromContext(ctx)

	tracks, err := encodeStrings(playlist.Tracks)
	if err != nil {
		return 0, err
	}
	if playlist.InLibrary.IsZero() {
		playlist.InLibrary = time.Now()
	}

	res, err := r.db.ExecContext(ctx, insertLocalPlaylist, playlist.Title, playlist.Thumbnail, tracks, playlist.InLibrary, playlist.DownloadState)
	if err != nil {
		log.Err(err).Str("func", "localPlaylistRepository.CreatePlaylist").Str("title", playlist.Title).Msg("failed to insert playlist")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

func (r *localPlaylistRepository) UpdateTracks(ctx context.Context, id int64, tracks []string) error {
	encoded, err := encodeStrings(tracks)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, updateLocalPlaylistTracks, encoded, id); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localPlaylistRepository.UpdateTracks").
			Int64("id", id).
			Msg("failed to update tracks")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localPlaylistRepository) DeletePlaylist(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, deleteLocalPlaylist, id); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localPlaylistRepository.DeletePlaylist").
			Int64("id", id).
			Msg("failed to delete playlist")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
