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

// localLibraryRepository is the SQLite-backed [LibraryRepository].
type localLibraryRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewLocalLibraryRepository(db *DB, logger *logger.Logger) LibraryRepository {
	logger.Debug().Msg("creating local library repository")
	return &localLibraryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *localLibraryRepository) InsertAlbum(ctx context.Context, album models.Album) error {
	artists, err := encodeStrings(album.Artists)
	if err != nil {
		return err
	}
	return r.insert(ctx, "localLibraryRepository.InsertAlbum", insertAlbum,
		album.BrowseID, album.Title, artists, album.Thumbnail, album.AudioPlaylistID, album.Type, album.Liked, orNow(album.InLibrary))
}

func (r *localLibraryRepository) InsertArtist(ctx context.Context, artist models.Artist) error {
	return r.insert(ctx, "localLibraryRepository.InsertArtist", insertArtist,
		artist.ChannelID, artist.Name, artist.Thumbnail, artist.Followed, orNow(artist.InLibrary))
}

func (r *localLibraryRepository) InsertYouTubePlaylist(ctx context.Context, playlist models.YouTubePlaylist) error {
	return r.insert(ctx, "localLibraryRepository.InsertYouTubePlaylist", insertYouTubePlaylist,
		playlist.ID, playlist.Title, playlist.Thumbnail, playlist.Liked, orNow(playlist.InLibrary))
}

func (r *localLibraryRepository) insert(ctx context.Context, funcName, query string, args ...any) error {
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to insert library item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// Albums returns saved albums, newest first. A non-positive limit returns
// all of them.
func (r *localLibraryRepository) Albums(ctx context.Context, limit int) ([]models.Album, error) {
	albums := make([]models.Album, 0)
	err := r.list(ctx, "albums",
		[]string{"browse_id", "title", "artists", "thumbnail", "audio_playlist_id", "type", "liked", "in_library"},
		limit, func(rows *sql.Rows) error {
			var (
				a       models.Album
				artists string
			)
			if err := rows.Scan(&a.BrowseID, &a.Title, &artists, &a.Thumbnail, &a.AudioPlaylistID, &a.Type, &a.Liked, &a.InLibrary); err != nil {
				return err
			}
			if err := decodeStrings(artists, &a.Artists); err != nil {
				return err
			}
			albums = append(albums, a)
			return nil
		})
	if err != nil {
		return nil, err
	}
	return albums, nil
}

func (r *localLibraryRepository) Artists(ctx context.Context, limit int) ([]models.Artist, error) {
	artists := make([]models.Artist, 0)
	err := r.list(ctx, "artists",
		[]string{"channel_id", "name", "thumbnail", "followed", "in_library"},
		limit, func(rows *sql.Rows) error {
			var a models.Artist
			if err := rows.Scan(&a.ChannelID, &a.Name, &a.Thumbnail, &a.Followed, &a.InLibrary); err != nil {
				return err
			}
			artists = append(artists, a)
			return nil
		})
	if err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *localLibraryRepository) YouTubePlaylists(ctx context.Context, limit int) ([]models.YouTubePlaylist, error) {
	playlists := make([]models.YouTubePlaylist, 0)
	err := r.list(ctx, "youtube_playlists",
		[]string{"id", "title", "thumbnail", "liked", "in_library"},
		limit, func(rows *sql.Rows) error {
			var p models.YouTubePlaylist
			if err := rows.Scan(&p.ID, &p.Title, &p.Thumbnail, &p.Liked, &p.InLibrary); err != nil {
				return err
			}
			playlists = append(playlists, p)
			return nil
		})
	if err != nil {
		return nil, err
	}
	return playlists, nil
}

func (r *localLibraryRepository) list(ctx context.Context, table string, columns []string, limit int, scan func(*sql.Rows) error) error {
	log := logger.FromContext(ctx)

	builder := r.db.sb().Select(columns...).From(table).OrderBy("in_library DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = queryRows(ctx, r.db, query, args, scan); err != nil {
		log.Err(err).Str("func", "localLibraryRepository.list").Str("table", table).Msg("failed to list library")
		return err
	}

	return nil
}

func orNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
