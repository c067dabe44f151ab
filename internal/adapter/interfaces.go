// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the sync server.
//
// [ServerAdapter] decouples the sync engine from the protocol. The HTTP
// implementation reads the bearer token from a [TokenSource] on every call
// and reports HTTP 403 back to it, so a banned account is logged out no
// matter which request noticed it.
//
// Non-2xx responses are mapped to the sentinel errors in errors.go, so
// callers match them with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/hymusic-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the request/response API of the sync server.
type ServerAdapter interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	Me(ctx context.Context) (models.UserInfo, error)

	// FetchAll returns the full per-user snapshot.
	FetchAll(ctx context.Context) (models.SyncAllResponse, error)

	UploadFavorites(ctx context.Context, favorites []models.FavoriteItem) (int, error)
	DeleteFavorite(ctx context.Context, videoID string) error
	UploadPlaylists(ctx context.Context, playlists []models.PlaylistItem) (int, error)
	UploadHistory(ctx context.Context, history []models.HistoryItem) (int, error)
	UploadSettings(ctx context.Context, settings models.SettingsBundle) error
	UploadLibrary(ctx context.Context, library models.LibraryBundle) (int, error)

	// Announcements returns the active announcements.
	Announcements(ctx context.Context) ([]models.Announcement, error)
}

// TokenSource owns the bearer token. The adapter only reads it.
type TokenSource interface {
	// Token returns the current token, or "" when logged out.
	Token() string
	// ForceLogout drops the session after the server rejected it with 403.
	ForceLogout(ctx context.Context, reason error)
}
