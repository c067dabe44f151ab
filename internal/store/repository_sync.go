// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/models"
)

// syncRepository is the PostgreSQL-backed implementation of
// [SyncRepository]. Every write that replaces a collection runs in a single
// transaction, so a failed upload leaves the previous copy intact.
type syncRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSyncRepository(db *DB, logger *logger.Logger) SyncRepository {
	logger.Debug().Msg("creating sync repository")
	return &syncRepository{
		db:     db,
		logger: logger,
	}
}

// ── Favorites ───────────────────────────────────────────────────────────────

func (r *syncRepository) GetFavorites(ctx context.Context, userID string) ([]models.FavoriteItem, error) {
	return queryTracks[models.FavoriteItem](ctx, r.db, "syncRepository.GetFavorites", getFavorites, userID)
}

// ReplaceFavorites deletes the user's favorites and inserts items. Repeated
// video ids in items collapse into one row (the last one wins).
func (r *syncRepository) ReplaceFavorites(ctx context.Context, userID string, items []models.FavoriteItem) (int, error) {
	log := logger.FromContext(ctx)

	err := r.db.inTx(ctx, "syncRepository.ReplaceFavorites", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteFavorites, userID); err != nil {
			log.Err(err).Str("func", "syncRepository.ReplaceFavorites").Str("user_id", userID).Msg("failed to delete favorites")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return execEach(ctx, tx, "syncRepository.ReplaceFavorites", insertFavorite, items, func(f models.FavoriteItem) []any {
			return []any{userID, f.VideoID, f.Title, f.Artist, f.Thumbnail, f.Duration}
		})
	})
	if err != nil {
		return 0, err
	}

	return len(items), nil
}

func (r *syncRepository) DeleteFavorite(ctx context.Context, userID, videoID string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteFavorite, userID, videoID)
	if err != nil {
		log.Err(err).Str("func", "syncRepository.DeleteFavorite").Str("video_id", videoID).Msg("failed to delete favorite")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

// ── Playlists ───────────────────────────────────────────────────────────────

// GetPlaylists returns the user's playlists, most recently updated first,
// with their songs in position order.
func (r *syncRepository) GetPlaylists(ctx context.Context, userID string) ([]models.PlaylistItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getPlaylists, userID)
	if err != nil {
		log.Err(err).Str("func", "syncRepository.GetPlaylists").Str("user_id", userID).Msg("failed to query playlists")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	playlists := make([]models.PlaylistItem, 0)
	index := make(map[string]int)
	for rows.Next() {
		var (
			id string
			p  models.PlaylistItem
		)
		if err = rows.Scan(&id, &p.Title, &p.Description, &p.Thumbnail); err != nil {
			log.Err(err).Str("func", "syncRepository.GetPlaylists").Msg("failed to scan playlist row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		p.ID = &id
		p.Songs = make([]models.FavoriteItem, 0)
		index[id] = len(playlists)
		playlists = append(playlists, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	songRows, err := r.db.QueryContext(ctx, getPlaylistSongs, userID)
	if err != nil {
		log.Err(err).Str("func", "syncRepository.GetPlaylists").Str("user_id", userID).Msg("failed to query playlist songs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer songRows.Close()

	for songRows.Next() {
		var (
			playlistID string
			s          models.FavoriteItem
		)
		if err = songRows.Scan(&playlistID, &s.VideoID, &s.Title, &s.Artist, &s.Thumbnail, &s.Duration); err != nil {
			log.Err(err).Str("func", "syncRepository.GetPlaylists").Msg("failed to scan playlist song row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if i, ok := index[playlistID]; ok {
			playlists[i].Songs = append(playlists[i].Songs, s)
		}
	}
	if err = songRows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return playlists, nil
}

// ReplacePlaylists drops every playlist of the user (songs cascade) and
// recreates them. The position of a song is its index in the playlist.
func (r *syncRepository) ReplacePlaylists(ctx context.Context, userID string, playlists []models.PlaylistItem, ids []string) (int, error) {
	log := logger.FromContext(ctx)

	if len(ids) != len(playlists) {
		return 0, fmt.Errorf("%w: %d ids for %d playlists", ErrBuildingSQLQuery, len(ids), len(playlists))
	}

	err := r.db.inTx(ctx, "syncRepository.ReplacePlaylists", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deletePlaylists, userID); err != nil {
			log.Err(err).Str("func", "syncRepository.ReplacePlaylists").Str("user_id", userID).Msg("failed to delete playlists")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		playlistStmt, err := tx.PrepareContext(ctx, insertPlaylist)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
		}
		defer playlistStmt.Close()

		songStmt, err := tx.PrepareContext(ctx, insertPlaylistSong)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
		}
		defer songStmt.Close()

		for i, p := range playlists {
			if _, err = playlistStmt.ExecContext(ctx, ids[i], userID, p.Title, p.Description, p.Thumbnail); err != nil {
				log.Err(err).
					Str("func", "syncRepository.ReplacePlaylists").
					Str("title", p.Title).
					Msg("failed to insert playlist")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}

			for pos, s := range p.Songs {
				if _, err = songStmt.ExecContext(ctx, ids[i], s.VideoID, s.Title, s.Artist, s.Thumbnail, s.Duration, pos); err != nil {
					log.Err(err).
						Str("func", "syncRepository.ReplacePlaylists").
						Str("title", p.Title).
						Int("position", pos).
						Msg("failed to insert playlist song")
					return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(playlists), nil
}

// ── History ─────────────────────────────────────────────────────────────────

func (r *syncRepository) GetHistory(ctx context.Context, userID string, limit int) ([]models.HistoryItem, error) {
	return queryTracks[models.HistoryItem](ctx, r.db, "syncRepository.GetHistory", getHistory, userID, limit)
}

// AppendHistory inserts items and skips videos the user already has in the
// history. It returns the number of items received.
func (r *syncRepository) AppendHistory(ctx context.Context, userID string, items []models.HistoryItem) (int, error) {
	err := r.db.inTx(ctx, "syncRepository.AppendHistory", func(tx *sql.Tx) error {
		return execEach(ctx, tx, "syncRepository.AppendHistory", insertHistory, items, func(h models.HistoryItem) []any {
			return []any{userID, h.VideoID, h.Title, h.Artist, h.Thumbnail, h.Duration}
		})
	})
	if err != nil {
		return 0, err
	}

	return len(items), nil
}

// ── Settings ────────────────────────────────────────────────────────────────

// GetSettings returns every stored setting, or nil when the user has no
// settings row.
func (r *syncRepository) GetSettings(ctx context.Context, userID string) (*models.SettingsBundle, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sb().Select(settingsColumnNames()...).
		From("user_settings").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var s models.Settings
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(settingsScanDest(&s)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Err(err).Str("func", "syncRepository.GetSettings").Str("user_id", userID).Msg("failed to scan settings")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	bundle := s.Bundle()
	return &bundle, nil
}

// UpsertSettings inserts the settings row when missing and overwrites only
// the columns present in the bundle. Absent columns keep their value, or the
// column default on insert.
func (r *syncRepository) UpsertSettings(ctx context.Context, userID string, settings models.SettingsBundle) error {
	log := logger.FromContext(ctx)

	values := settings.Values()

	columns := []string{"user_id"}
	args := []any{userID}
	updates := []string{"updated_at = NOW()"}
	for _, c := range settingsColumns {
		v, ok := values[c.key]
		if !ok {
			continue
		}
		columns = append(columns, c.column)
		args = append(args, v)
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", c.column, c.column))
	}

	query, qArgs, err := r.db.sb().Insert("user_settings").
		Columns(columns...).
		Values(args...).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET " + strings.Join(updates, ", ")).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "syncRepository.UpsertSettings").Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, qArgs...); err != nil {
		log.Err(err).
			Str("func", "syncRepository.UpsertSettings").
			Str("user_id", userID).
			Int("fields", len(values)).
			Msg("failed to upsert settings")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ── Library ─────────────────────────────────────────────────────────────────

func (r *syncRepository) GetLibrary(ctx context.Context, userID string) (*models.LibraryBundle, error) {
	log := logger.FromContext(ctx)

	library := &models.LibraryBundle{
		Albums:    make([]models.AlbumItem, 0),
		Artists:   make([]models.ArtistItem, 0),
		Playlists: make([]models.YouTubePlaylistItem, 0),
	}

	err := queryRows(ctx, r.db, getLibraryAlbums, []any{userID}, func(rows *sql.Rows) error {
		var a models.AlbumItem
		if err := rows.Scan(&a.BrowseID, &a.Title, &a.Artist, &a.Thumbnail); err != nil {
			return err
		}
		library.Albums = append(library.Albums, a)
		return nil
	})
	if err == nil {
		err = queryRows(ctx, r.db, getLibraryArtists, []any{userID}, func(rows *sql.Rows) error {
			var a models.ArtistItem
			if err := rows.Scan(&a.ChannelID, &a.Name, &a.Thumbnail); err != nil {
				return err
			}
			library.Artists = append(library.Artists, a)
			return nil
		})
	}
	if err == nil {
		err = queryRows(ctx, r.db, getLibraryPlaylists, []any{userID}, func(rows *sql.Rows) error {
			var p models.YouTubePlaylistItem
			if err := rows.Scan(&p.PlaylistID, &p.Title, &p.Thumbnail); err != nil {
				return err
			}
			library.Playlists = append(library.Playlists, p)
			return nil
		})
	}
	if err != nil {
		log.Err(err).Str("func", "syncRepository.GetLibrary").Str("user_id", userID).Msg("failed to read library")
		return nil, err
	}

	return library, nil
}

// ReplaceLibrary clears all three library collections of the user and
// repopulates them in one transaction.
func (r *syncRepository) ReplaceLibrary(ctx context.Context, userID string, library models.LibraryBundle) (int, error) {
	log := logger.FromContext(ctx)

	err := r.db.inTx(ctx, "syncRepository.ReplaceLibrary", func(tx *sql.Tx) error {
		for _, stmt := range []string{deleteLibraryAlbums, deleteLibraryArtists, deleteLibraryPlaylists} {
			if _, err := tx.ExecContext(ctx, stmt, userID); err != nil {
				log.Err(err).Str("func", "syncRepository.ReplaceLibrary").Str("user_id", userID).Msg("failed to clear library")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		err := execEach(ctx, tx, "syncRepository.ReplaceLibrary", insertLibraryAlbum, library.Albums, func(a models.AlbumItem) []any {
			return []any{userID, a.BrowseID, a.Title, a.Artist, a.Thumbnail}
		})
		if err != nil {
			return err
		}
		err = execEach(ctx, tx, "syncRepository.ReplaceLibrary", insertLibraryArtist, library.Artists, func(a models.ArtistItem) []any {
			return []any{userID, a.ChannelID, a.Name, a.Thumbnail}
		})
		if err != nil {
			return err
		}
		return execEach(ctx, tx, "syncRepository.ReplaceLibrary", insertLibraryPlaylist, library.Playlists, func(p models.YouTubePlaylistItem) []any {
			return []any{userID, p.PlaylistID, p.Title, p.Thumbnail}
		})
	})
	if err != nil {
		return 0, err
	}

	return library.Len(), nil
}

// ── helpers ─────────────────────────────────────────────────────────────────

// execEach prepares query once inside tx and executes it for every item.
func execEach[T any](ctx context.Context, tx *sql.Tx, funcName, query string, items []T, args func(T) []any) error {
	if len(items) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to prepare statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for idx, item := range items {
		if _, err = stmt.ExecContext(ctx, args(item)...); err != nil {
			log.Err(err).
				Str("func", funcName).
				Int("iteration", idx+1).
				Int("total", len(items)).
				Msg("failed to execute prepared statement")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// queryRows runs query and hands every row to scan.
func queryRows(ctx context.Context, db *DB, query string, args []any, scan func(rows *sql.Rows) error) error {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err = scan(rows); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}

// track is the common column layout of favorites and history rows. Both
// types share one underlying struct.
type track interface {
	models.FavoriteItem | models.HistoryItem
}

func queryTracks[T track](ctx context.Context, db *DB, funcName, query string, args ...any) ([]T, error) {
	items := make([]T, 0)
	err := queryRows(ctx, db, query, args, func(rows *sql.Rows) error {
		var f models.FavoriteItem
		if err := rows.Scan(&f.VideoID, &f.Title, &f.Artist, &f.Thumbnail, &f.Duration); err != nil {
			return err
		}
		items = append(items, T(f))
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to query tracks")
		return nil, err
	}

	return items, nil
}
