// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/hymusic-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts and serves the admin views over them.
type UserRepository interface {
	// CreateUser inserts the user and its default settings row.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	UpdateProfile(ctx context.Context, id string, update models.UpdateProfileRequest) (models.User, error)

	ListUsers(ctx context.Context, query models.UserListQuery) ([]models.AdminUser, int, error)
	GetAdminUser(ctx context.Context, id string) (models.AdminUser, error)
	SetBanned(ctx context.Context, id string, banned bool) (models.AdminUser, error)
	SetAdmin(ctx context.Context, id string, isAdmin bool) (models.AdminUser, error)
	DeleteUser(ctx context.Context, id string) error
	Stats(ctx context.Context, todayStart time.Time) (models.Stats, error)
	RecentUsers(ctx context.Context, limit int) ([]models.AdminUser, error)
}

// SyncRepository holds the authoritative per-user copy of every synced
// collection.
type SyncRepository interface {
	GetFavorites(ctx context.Context, userID string) ([]models.FavoriteItem, error)
	// ReplaceFavorites deletes every favorite of the user and inserts items.
	ReplaceFavorites(ctx context.Context, userID string, items []models.FavoriteItem) (int, error)
	DeleteFavorite(ctx context.Context, userID, videoID string) error

	GetPlaylists(ctx context.Context, userID string) ([]models.PlaylistItem, error)
	// ReplacePlaylists deletes every playlist of the user and recreates them
	// with songs ordered by their index. ids[i] is the new id of playlists[i].
	ReplacePlaylists(ctx context.Context, userID string, playlists []models.PlaylistItem, ids []string) (int, error)

	GetHistory(ctx context.Context, userID string, limit int) ([]models.HistoryItem, error)
	// AppendHistory inserts items, skipping videos already in the history.
	AppendHistory(ctx context.Context, userID string, items []models.HistoryItem) (int, error)

	GetSettings(ctx context.Context, userID string) (*models.SettingsBundle, error)
	// UpsertSettings writes only the fields present in the bundle.
	UpsertSettings(ctx context.Context, userID string, settings models.SettingsBundle) error

	GetLibrary(ctx context.Context, userID string) (*models.LibraryBundle, error)
	// ReplaceLibrary clears and repopulates albums, artists and playlists in
	// one transaction.
	ReplaceLibrary(ctx context.Context, userID string, library models.LibraryBundle) (int, error)
}

// AnnouncementRepository stores admin announcements.
type AnnouncementRepository interface {
	List(ctx context.Context, activeOnly bool) ([]models.Announcement, error)
	Create(ctx context.Context, announcement models.Announcement) (models.Announcement, error)
	Update(ctx context.Context, id string, update models.AnnouncementUpdate) (models.Announcement, error)
	Delete(ctx context.Context, id string) error
}

// SystemSettingsRepository stores the singleton server-wide settings row.
type SystemSettingsRepository interface {
	Get(ctx context.Context) (models.SystemSettings, error)
	Update(ctx context.Context, update models.SystemSettingsUpdate) (models.SystemSettings, error)
}

// Pinger reports whether the database answers.
type Pinger interface {
	PingContext(ctx context.Context) error
}
