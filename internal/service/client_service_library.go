// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/hymusic-sync/internal/adapter"
	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/store"
	"github.com/MKhiriev/hymusic-sync/models"
)

// ShareBaseURL is the prefix of a song share link.
const ShareBaseURL = "https://music.youtube.com/watch?v="

type clientLibraryService struct {
	songs     store.SongRepository
	playlists store.LocalPlaylistRepository
	library   store.LibraryRepository
	settings  store.SettingsRepository

	adapter adapter.ServerAdapter
	session SessionState
	sync    ClientSyncService
	logger  *logger.Logger
	now     func() time.Time
}

func NewClientLibraryService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, sess SessionState, syncSvc ClientSyncService, log *logger.Logger) ClientLibraryService {
	return &clientLibraryService{
		songs:     storages.SongRepository,
		playlists: storages.PlaylistRepository,
		library:   storages.LibraryRepository,
		settings:  storages.SettingsRepository,
		adapter:   serverAdapter,
		session:   sess,
		sync:      syncSvc,
		logger:    log,
		now:       time.Now,
	}
}

func (l *clientLibraryService) LikedSongs(ctx context.Context) ([]models.Song, error) {
	return l.songs.LikedSongs(ctx)
}

func (l *clientLibraryService) RecentlyPlayed(ctx context.Context, limit int) ([]models.Song, error) {
	return l.songs.RecentlyPlayed(ctx, limit)
}

func (l *clientLibraryService) Playlists(ctx context.Context) ([]models.LocalPlaylist, error) {
	return l.playlists.ListPlaylists(ctx)
}

func (l *clientLibraryService) Library(ctx context.Context) (models.LibraryBundle, error) {
	return readLibrary(ctx, l.library, 0)
}

func (l *clientLibraryService) Settings(ctx context.Context) (models.Settings, error) {
	return l.settings.GetSettings(ctx)
}

func (l *clientLibraryService) Announcements(ctx context.Context) ([]models.Announcement, error) {
	items, err := l.adapter.Announcements(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return items, nil
}

func (l *clientLibraryService) Like(ctx context.Context, videoID string) error {
	if err := l.songs.SetLiked(ctx, videoID, true, l.now()); err != nil {
		return songError(err)
	}
	l.sync.OnLocalMutation(models.CollectionFavorites)
	return nil
}

// Unlike removes the like locally and then on the server. When the remote
// delete cannot be made right away the favorites are re-uploaded in the
// background instead.
func (l *clientLibraryService) Unlike(ctx context.Context, videoID string) error {
	if err := l.songs.SetLiked(ctx, videoID, false, l.now()); err != nil {
		return songError(err)
	}

	if !l.session.IsLoggedIn() {
		return nil
	}

	err := l.adapter.DeleteFavorite(ctx, videoID)
	switch {
	case err == nil, errors.Is(err, adapter.ErrNotFound):
		return nil
	default:
		l.logger.Debug().
			Err(err).
			Str("func", "clientLibraryService.Unlike").
			Str("video_id", videoID).
			Msg("remote unlike failed, scheduling upload")
		l.sync.OnLocalMutation(models.CollectionFavorites)
		return nil
	}
}

// RecordPlay adds playTime milliseconds to the song. Nothing is recorded
// when the user turned history off.
func (l *clientLibraryService) RecordPlay(ctx context.Context, videoID string, playTime int64) error {
	settings, err := l.settings.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}
	if !settings.SaveHistory {
		return nil
	}

	if err = l.songs.RecordPlay(ctx, videoID, playTime, l.now()); err != nil {
		return songError(err)
	}
	l.sync.OnLocalMutation(models.CollectionHistory)
	return nil
}

func (l *clientLibraryService) CreatePlaylist(ctx context.Context, title string, tracks []string) (int64, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, fmt.Errorf("%w: empty title", ErrInvalidDataProvided)
	}

	exists, err := l.playlists.ExistsByTitle(ctx, title)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrPlaylistExists
	}

	for _, videoID := range tracks {
		if _, err = l.songs.GetSong(ctx, videoID); err != nil {
			return 0, songError(err)
		}
	}

	id, err := l.playlists.CreatePlaylist(ctx, models.LocalPlaylist{
		Title:     title,
		Tracks:    tracks,
		InLibrary: l.now(),
	})
	if err != nil {
		return 0, err
	}

	l.sync.OnLocalMutation(models.CollectionPlaylists)
	return id, nil
}

func (l *clientLibraryService) DeletePlaylist(ctx context.Context, id int64) error {
	if err := l.playlists.DeletePlaylist(ctx, id); err != nil {
		return err
	}
	l.sync.OnLocalMutation(models.CollectionPlaylists)
	return nil
}

func (l *clientLibraryService) UpdateSettings(ctx context.Context, bundle models.SettingsBundle) error {
	if bundle.IsEmpty() {
		return ErrEmptyUpdate
	}
	if _, err := l.settings.PatchSettings(ctx, bundle); err != nil {
		return err
	}
	l.sync.OnLocalMutation(models.CollectionSettings)
	return nil
}

func (l *clientLibraryService) ShareLink(videoID string) string {
	return ShareBaseURL + url.QueryEscape(videoID)
}

func songError(err error) error {
	if errors.Is(err, store.ErrSongNotFound) {
		return fmt.Errorf("%w: %w", ErrSongNotInStore, err)
	}
	return err
}
