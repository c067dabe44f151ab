// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/models"
)

// localSongRepository is the SQLite-backed [SongRepository].
type localSongRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewLocalSongRepository(db *DB, logger *logger.Logger) SongRepository {
	logger.Debug().Msg("creating local song repository")
	return &localSongRepository{
		db:     db,
		logger: logger,
	}
}

func scanSong(row rowScanner) (models.Song, error) {
	var (
		s          models.Song
		artists    string
		likeStatus string
	)
	err := row.Scan(&s.VideoID, &s.Title, &artists, &s.Thumbnail, &s.Duration, &s.DurationSeconds, &s.IsAvailable, &s.IsExplicit,
		&likeStatus, &s.VideoType, &s.Category, &s.ResultType, &s.Liked, &s.LikedAt, &s.TotalPlayTime, &s.LastPlayedAt, &s.InLibrary)
	if err != nil {
		return models.Song{}, err
	}
	s.LikeStatus = models.LikeStatus(likeStatus)

	if err = decodeStrings(artists, &s.Artists); err != nil {
		return models.Song{}, err
	}

	return s, nil
}

func (r *localSongRepository) GetSong(ctx context.Context, videoID string) (models.Song, error) {
	log := logger.FromContext(ctx)

	song, err := scanSong(r.db.QueryRowContext(ctx, getSong, videoID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Song{}, ErrSongNotFound
		}
		log.Err(err).Str("func", "localSongRepository.GetSong").Str("video_id", videoID).Msg("failed to scan song")
		return models.Song{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return song, nil
}

func (r *localSongRepository) InsertSong(ctx context.Context, song models.Song) error {
	log := logger.FromContext(ctx)

	artists, err := encodeStrings(song.Artists)
	if err != nil {
		return err
	}
	if song.InLibrary.IsZero() {
		song.InLibrary = time.Now()
	}

	_, err = r.db.ExecContext(ctx, insertSong,
		song.VideoID, song.Title, artists, song.Thumbnail, song.Duration, song.DurationSeconds, song.IsAvailable, song.IsExplicit,
		string(song.LikeStatus), song.VideoType, song.Category, song.ResultType, song.Liked, song.LikedAt,
		song.TotalPlayTime, song.LastPlayedAt, song.InLibrary)
	if err != nil {
		log.Err(err).Str("func", "localSongRepository.InsertSong").Str("video_id", song.VideoID).Msg("failed to insert song")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// SetLiked marks the song liked at the given time, or clears the mark.
func (r *localSongRepository) SetLiked(ctx context.Context, videoID string, liked bool, at time.Time) error {
	if liked {
		return r.execOnSong(ctx, "localSongRepository.SetLiked", likeSong, at, videoID)
	}
	return r.execOnSong(ctx, "localSongRepository.SetLiked", unlikeSong, videoID)
}

// RecordPlay adds playTime to the song's total and stamps the play time.
func (r *localSongRepository) RecordPlay(ctx context.Context, videoID string, playTime int64, at time.Time) error {
	return r.execOnSong(ctx, "localSongRepository.RecordPlay", recordPlay, playTime, at, videoID)
}

func (r *localSongRepository) execOnSong(ctx context.Context, funcName, query string, args ...any) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to update song")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrSongNotFound
	}

	return nil
}

func (r *localSongRepository) LikedSongs(ctx context.Context) ([]models.Song, error) {
	return r.querySongs(ctx, "localSongRepository.LikedSongs", getLikedSongs)
}

func (r *localSongRepository) RecentlyPlayed(ctx context.Context, limit int) ([]models.Song, error) {
	return r.querySongs(ctx, "localSongRepository.RecentlyPlayed", getRecentlyPlayed, limit)
}

func (r *localSongRepository) querySongs(ctx context.Context, funcName, query string, args ...any) ([]models.Song, error) {
	songs := make([]models.Song, 0)
	err := queryRows(ctx, r.db, query, args, func(rows *sql.Rows) error {
		s, err := scanSong(rows)
		if err != nil {
			return err
		}
		songs = append(songs, s)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to query songs")
		return nil, err
	}

	return songs, nil
}

// encodeStrings stores a string list as a JSON array column.
func encodeStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return string(b), nil
}

func decodeStrings(raw string, dst *[]string) error {
	if raw == "" {
		*dst = []string{}
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingColumn, err)
	}
	return nil
}
