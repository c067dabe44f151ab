// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/hymusic-sync/internal/validators"
	"github.com/MKhiriev/hymusic-sync/models"
)

// SyncValidationService rejects malformed uploads before they reach the
// wrapped SyncService. Rejections wrap ErrInvalidDataProvided.
type SyncValidationService struct {
	inner     SyncService
	validator validators.Validator
}

func NewSyncValidationService() SyncServiceWrapper {
	return &SyncValidationService{
		validator: validators.NewSyncValidator(),
	}
}

func (v *SyncValidationService) Wrap(inner SyncService) SyncService {
	v.inner = inner
	return v
}

func (v *SyncValidationService) Snapshot(ctx context.Context, userID string) (models.SyncAllResponse, error) {
	return v.inner.Snapshot(ctx, userID)
}

func (v *SyncValidationService) ReplaceFavorites(ctx context.Context, userID string, favorites []models.FavoriteItem) (int, error) {
	if err := v.validate(ctx, models.FavoritesRequest{Favorites: favorites}); err != nil {
		return 0, err
	}
	return v.inner.ReplaceFavorites(ctx, userID, favorites)
}

func (v *SyncValidationService) DeleteFavorite(ctx context.Context, userID, videoID string) error {
	if strings.TrimSpace(videoID) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyVideoID)
	}
	return v.inner.DeleteFavorite(ctx, userID, videoID)
}

func (v *SyncValidationService) ReplacePlaylists(ctx context.Context, userID string, playlists []models.PlaylistItem) (int, error) {
	if err := v.validate(ctx, models.PlaylistsRequest{Playlists: playlists}); err != nil {
		return 0, err
	}
	return v.inner.ReplacePlaylists(ctx, userID, playlists)
}

func (v *SyncValidationService) AppendHistory(ctx context.Context, userID string, history []models.HistoryItem) (int, error) {
	if err := v.validate(ctx, models.HistoryRequest{History: history}); err != nil {
		return 0, err
	}
	return v.inner.AppendHistory(ctx, userID, history)
}

func (v *SyncValidationService) UpsertSettings(ctx context.Context, userID string, settings models.SettingsBundle) error {
	if err := v.validate(ctx, models.SettingsRequest{Settings: settings}); err != nil {
		return err
	}
	return v.inner.UpsertSettings(ctx, userID, settings)
}

func (v *SyncValidationService) ReplaceLibrary(ctx context.Context, userID string, library models.LibraryBundle) (int, error) {
	if err := v.validate(ctx, library); err != nil {
		return 0, err
	}
	return v.inner.ReplaceLibrary(ctx, userID, library)
}

func (v *SyncValidationService) validate(ctx context.Context, obj any) error {
	if err := v.validator.Validate(ctx, obj); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
