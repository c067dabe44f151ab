// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/hymusic-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SongRepository stores songs of the Local Store, liked or played.
type SongRepository interface {
	// GetSong returns [ErrSongNotFound] for an unknown video id.
	GetSong(ctx context.Context, videoID string) (models.Song, error)
	// InsertSong stores song unless a song with the same video id exists.
	InsertSong(ctx context.Context, song models.Song) error
	SetLiked(ctx context.Context, videoID string, liked bool, at time.Time) error
	RecordPlay(ctx context.Context, videoID string, playTime int64, at time.Time) error

	// LikedSongs returns liked songs, most recently liked first.
	LikedSongs(ctx context.Context) ([]models.Song, error)
	// RecentlyPlayed returns up to limit played songs, most recent first.
	RecentlyPlayed(ctx context.Context, limit int) ([]models.Song, error)
}

// LocalPlaylistRepository stores user-created playlists.
type LocalPlaylistRepository interface {
	ListPlaylists(ctx context.Context) ([]models.LocalPlaylist, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	CreatePlaylist(ctx context.Context, playlist models.LocalPlaylist) (int64, error)
	UpdateTracks(ctx context.Context, id int64, tracks []string) error
	DeletePlaylist(ctx context.Context, id int64) error
}

// LibraryRepository stores saved albums, followed artists and saved
// playlists. Inserts never overwrite an existing entry.
type LibraryRepository interface {
	InsertAlbum(ctx context.Context, album models.Album) error
	InsertArtist(ctx context.Context, artist models.Artist) error
	InsertYouTubePlaylist(ctx context.Context, playlist models.YouTubePlaylist) error

	Albums(ctx context.Context, limit int) ([]models.Album, error)
	Artists(ctx context.Context, limit int) ([]models.Artist, error)
	YouTubePlaylists(ctx context.Context, limit int) ([]models.YouTubePlaylist, error)
}

// SettingsRepository stores the tracked settings as key/value pairs.
type SettingsRepository interface {
	// GetSettings returns the stored values over the local defaults.
	GetSettings(ctx context.Context) (models.Settings, error)
	// PatchSettings writes the present fields of bundle and returns their
	// names.
	PatchSettings(ctx context.Context, bundle models.SettingsBundle) ([]string, error)
}

// SessionRepository persists the logged-in session between runs.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	// LoadSession returns [ErrNoSession] when nobody is logged in.
	LoadSession(ctx context.Context) (models.Session, error)
	ClearSession(ctx context.Context) error
}
