// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/hymusic-sync/internal/session"
	"github.com/MKhiriev/hymusic-sync/models"
)

// ClientSyncService is the sync engine of the client. It reconciles the
// Local Store with the server on explicit request, on a timer and after
// local edits.
//
// Every operation is a silent no-op while no session is active.
type ClientSyncService interface {
	// TriggerFullSync runs a download-merge pass followed by an upload pass.
	// SyncState moves to Syncing, then to Success or Failed.
	TriggerFullSync(ctx context.Context) error
	TriggerUploadOnly(ctx context.Context) error
	TriggerDownloadOnly(ctx context.Context) error

	// SyncNow is what the UI's sync button calls. Same as TriggerFullSync.
	SyncNow(ctx context.Context) error

	// OnLoginSuccess starts the periodic upload and runs a full sync.
	OnLoginSuccess(ctx context.Context) error

	// OnLocalMutation schedules a background upload of one collection. It
	// never touches SyncState. Bursts of edits are coalesced.
	OnLocalMutation(kind models.Collection)

	// StartPeriodicSync starts the upload-only timer. Failures are logged
	// and dropped. A running timer is replaced.
	StartPeriodicSync(interval time.Duration)
	StopBackground()

	State() models.SyncState
	SubscribeState() (<-chan models.SyncState, func())
	// LastSyncTime returns the end of the last successful explicit pass.
	LastSyncTime() (time.Time, bool)
	// LastReports returns the reports of the last explicit pass.
	LastReports() []models.PassReport

	// Run watches the session and stops background work on logout. It
	// returns when ctx is cancelled.
	Run(ctx context.Context)
}

// ClientAuthService logs the terminal client in and out.
type ClientAuthService interface {
	// Register creates an account and starts a session for it.
	Register(ctx context.Context, req models.RegisterRequest) (models.UserInfo, error)
	// Login starts a session and kicks off the first full sync in the
	// background.
	Login(ctx context.Context, req models.LoginRequest) (models.UserInfo, error)
	// Resume restores a persisted session, if any.
	Resume(ctx context.Context) (models.UserInfo, bool, error)
	Logout(ctx context.Context) error
}

// ClientLibraryService reads and edits the Local Store on behalf of the UI.
// Every edit notifies the sync engine.
type ClientLibraryService interface {
	LikedSongs(ctx context.Context) ([]models.Song, error)
	RecentlyPlayed(ctx context.Context, limit int) ([]models.Song, error)
	Playlists(ctx context.Context) ([]models.LocalPlaylist, error)
	Library(ctx context.Context) (models.LibraryBundle, error)
	Settings(ctx context.Context) (models.Settings, error)
	Announcements(ctx context.Context) ([]models.Announcement, error)

	Like(ctx context.Context, videoID string) error
	Unlike(ctx context.Context, videoID string) error
	RecordPlay(ctx context.Context, videoID string, playTime int64) error
	CreatePlaylist(ctx context.Context, title string, tracks []string) (int64, error)
	DeletePlaylist(ctx context.Context, id int64) error
	UpdateSettings(ctx context.Context, bundle models.SettingsBundle) error

	// ShareLink returns the public link of a song.
	ShareLink(videoID string) string
}

// SessionState is the part of the session the services read.
type SessionState interface {
	IsLoggedIn() bool
	Token() string
	User() (models.UserInfo, bool)
	Subscribe() (<-chan session.Change, func())
}

// SessionManager is the session as the auth service drives it.
type SessionManager interface {
	SessionState
	Start(ctx context.Context, token string, user models.UserInfo) error
	End(ctx context.Context) error
	Restore(ctx context.Context) (bool, error)
}
