// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/hymusic-sync/models"
)

// AuthService registers and authenticates users of the sync server and
// issues their tokens.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Authenticate resolves a bearer token to its user. A banned user is
	// returned together with ErrUserBanned.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)

	Me(ctx context.Context, userID string) (models.User, error)
	UpdateProfile(ctx context.Context, userID string, update models.UpdateProfileRequest) (models.User, error)
}

// SyncService stores and serves the per-user collections.
type SyncService interface {
	Snapshot(ctx context.Context, userID string) (models.SyncAllResponse, error)

	// ReplaceFavorites makes favorites the user's complete favorite set.
	ReplaceFavorites(ctx context.Context, userID string, favorites []models.FavoriteItem) (int, error)
	DeleteFavorite(ctx context.Context, userID, videoID string) error

	// ReplacePlaylists makes playlists the user's complete playlist set.
	// Every playlist gets a fresh id.
	ReplacePlaylists(ctx context.Context, userID string, playlists []models.PlaylistItem) (int, error)

	// AppendHistory adds plays the server has not seen yet.
	AppendHistory(ctx context.Context, userID string, history []models.HistoryItem) (int, error)

	// UpsertSettings overwrites the settings present in the bundle.
	UpsertSettings(ctx context.Context, userID string, settings models.SettingsBundle) error

	ReplaceLibrary(ctx context.Context, userID string, library models.LibraryBundle) (int, error)
}

// SyncServiceWrapper defines middleware composition for SyncService.
// Implementations wrap an existing SyncService to add behavior such as
// validation.
type SyncServiceWrapper interface {
	Wrap(SyncService) SyncService
}

// AdminService backs the moderation endpoints.
type AdminService interface {
	ListUsers(ctx context.Context, query models.UserListQuery) (models.UserListResponse, error)
	GetUser(ctx context.Context, id string) (models.UserDetail, error)
	SetBanned(ctx context.Context, id string, banned bool) (models.AdminUser, error)
	SetAdmin(ctx context.Context, id string, isAdmin bool) (models.AdminUser, error)

	// DeleteUser removes the user id on behalf of actorID. Admins cannot
	// delete themselves.
	DeleteUser(ctx context.Context, actorID, id string) error

	Stats(ctx context.Context) (models.StatsResponse, error)
	SystemSettings(ctx context.Context) (models.SystemSettings, error)
	UpdateSystemSettings(ctx context.Context, update models.SystemSettingsUpdate) (models.SystemSettings, error)
}

// AnnouncementService manages admin announcements.
type AnnouncementService interface {
	// Active lists active announcements, highest priority first, newest
	// first within a priority.
	Active(ctx context.Context) ([]models.Announcement, error)
	All(ctx context.Context) ([]models.Announcement, error)
	Create(ctx context.Context, create models.AnnouncementCreate) (models.Announcement, error)
	Update(ctx context.Context, id string, update models.AnnouncementUpdate) (models.Announcement, error)
	Delete(ctx context.Context, id string) error
}

// AppInfoService reports the server version and liveness.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Status(ctx context.Context) models.StatusResponse
	Health(ctx context.Context) (models.StatusResponse, error)
}

// idGenerator issues ids for new rows.
type idGenerator interface {
	Generate() string
}
