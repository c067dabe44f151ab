// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/store"
	"github.com/MKhiriev/hymusic-sync/internal/utils"
	"github.com/MKhiriev/hymusic-sync/models"
)

type syncService struct {
	repo store.SyncRepository
	ids  idGenerator

	logger *logger.Logger
}

func NewSyncService(repo store.SyncRepository, logger *logger.Logger) SyncService {
	return &syncService{
		repo:   repo,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// Snapshot reads the five collections concurrently.
func (s *syncService) Snapshot(ctx context.Context, userID string) (models.SyncAllResponse, error) {
	var snapshot models.SyncAllResponse

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snapshot.Favorites, err = s.repo.GetFavorites(gctx, userID)
		return wrapRead("favorites", err)
	})
	g.Go(func() (err error) {
		snapshot.Playlists, err = s.repo.GetPlaylists(gctx, userID)
		return wrapRead("playlists", err)
	})
	g.Go(func() (err error) {
		snapshot.History, err = s.repo.GetHistory(gctx, userID, models.HistoryLimit)
		return wrapRead("history", err)
	})
	g.Go(func() (err error) {
		snapshot.Settings, err = s.repo.GetSettings(gctx, userID)
		return wrapRead("settings", err)
	})
	g.Go(func() (err error) {
		snapshot.Library, err = s.repo.GetLibrary(gctx, userID)
		return wrapRead("library", err)
	})

	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "syncService.Snapshot").Str("user_id", userID).Msg("snapshot failed")
		return models.SyncAllResponse{}, err
	}

	// empty collections travel as [] rather than null
	if snapshot.Favorites == nil {
		snapshot.Favorites = []models.FavoriteItem{}
	}
	if snapshot.Playlists == nil {
		snapshot.Playlists = []models.PlaylistItem{}
	}
	if snapshot.History == nil {
		snapshot.History = []models.HistoryItem{}
	}

	return snapshot, nil
}

func (s *syncService) ReplaceFavorites(ctx context.Context, userID string, favorites []models.FavoriteItem) (int, error) {
	return s.repo.ReplaceFavorites(ctx, userID, favorites)
}

func (s *syncService) DeleteFavorite(ctx context.Context, userID, videoID string) error {
	return s.repo.DeleteFavorite(ctx, userID, videoID)
}

func (s *syncService) ReplacePlaylists(ctx context.Context, userID string, playlists []models.PlaylistItem) (int, error) {
	ids := make([]string, len(playlists))
	for i := range ids {
		ids[i] = s.ids.Generate()
	}
	return s.repo.ReplacePlaylists(ctx, userID, playlists, ids)
}

func (s *syncService) AppendHistory(ctx context.Context, userID string, history []models.HistoryItem) (int, error) {
	return s.repo.AppendHistory(ctx, userID, history)
}

func (s *syncService) UpsertSettings(ctx context.Context, userID string, settings models.SettingsBundle) error {
	return s.repo.UpsertSettings(ctx, userID, settings)
}

func (s *syncService) ReplaceLibrary(ctx context.Context, userID string, library models.LibraryBundle) (int, error) {
	return s.repo.ReplaceLibrary(ctx, userID, library)
}

func wrapRead(collection string, err error) error {
	if err != nil {
		return fmt.Errorf("read %s: %w", collection, err)
	}
	return nil
}
