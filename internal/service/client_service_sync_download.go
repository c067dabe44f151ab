// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/store"
	"github.com/MKhiriev/hymusic-sync/models"
)

// downloadMerge fetches the server snapshot and merges it into the Local
// Store. Only a failed fetch fails the pass; a record that cannot be merged
// is reported in its collection outcome and skipped.
func (s *clientSyncService) downloadMerge(ctx context.Context) (models.PassReport, error) {
	report := models.PassReport{Direction: models.DirectionDownload, StartedAt: s.now()}
	log := logger.FromContext(ctx)

	snapshot, err := s.adapter.FetchAll(ctx)
	if err != nil {
		report.FinishedAt = s.now()
		return report, fmt.Errorf("fetch snapshot: %w", mapAdapterError(err))
	}

	log.Debug().
		Str("func", "clientSyncService.downloadMerge").
		Int("favorites", len(snapshot.Favorites)).
		Int("playlists", len(snapshot.Playlists)).
		Int("history", len(snapshot.History)).
		Bool("settings", snapshot.Settings != nil).
		Bool("library", snapshot.Library != nil).
		Msg("snapshot downloaded")

	report.Outcomes = []models.CollectionOutcome{
		s.mergeFavorites(ctx, snapshot.Favorites),
		s.mergePlaylists(ctx, snapshot.Playlists),
		s.mergeHistory(ctx, snapshot.History),
		s.mergeSettings(ctx, snapshot.Settings),
		s.mergeLibrary(ctx, snapshot.Library),
	}
	report.FinishedAt = s.now()

	for _, o := range report.Outcomes {
		if len(o.FailedKeys) > 0 || o.Err != nil {
			log.Warn().
				Err(o.Err).
				Str("func", "clientSyncService.downloadMerge").
				Str("collection", string(o.Collection)).
				Strs("failed_keys", o.FailedKeys).
				Msg("collection merged partially")
		}
	}

	return report, nil
}

// mergeFavorites inserts unknown songs as liked and promotes known ones to
// liked. A locally liked song is never unliked.
func (s *clientSyncService) mergeFavorites(ctx context.Context, favorites []models.FavoriteItem) models.CollectionOutcome {
	outcome := models.CollectionOutcome{Collection: models.CollectionFavorites}

	for _, fav := range favorites {
		if err := s.mergeFavorite(ctx, fav); err != nil {
			outcome.FailedKeys = append(outcome.FailedKeys, fav.VideoID)
			continue
		}
		outcome.Succeeded++
	}

	return outcome
}

func (s *clientSyncService) mergeFavorite(ctx context.Context, fav models.FavoriteItem) error {
	now := s.now()

	local, err := s.songs.GetSong(ctx, fav.VideoID)
	switch {
	case errors.Is(err, store.ErrSongNotFound):
		return s.songs.InsertSong(ctx, favoriteToSong(fav, now))
	case err != nil:
		return err
	case !local.Liked:
		return s.songs.SetLiked(ctx, fav.VideoID, true, now)
	default:
		return nil
	}
}

// mergeHistory inserts songs the device has never seen.
func (s *clientSyncService) mergeHistory(ctx context.Context, history []models.HistoryItem) models.CollectionOutcome {
	outcome := models.CollectionOutcome{Collection: models.CollectionHistory}

	for _, item := range history {
		if err := s.ensureSong(ctx, historyToSong(item, s.now())); err != nil {
			outcome.FailedKeys = append(outcome.FailedKeys, item.VideoID)
			continue
		}
		outcome.Succeeded++
	}

	return outcome
}

// mergePlaylists restores server playlists whose title is unknown locally.
// The songs of a playlist are stored before the playlist that references
// them; a song that cannot be stored is left out of the playlist.
func (s *clientSyncService) mergePlaylists(ctx context.Context, playlists []models.PlaylistItem) models.CollectionOutcome {
	outcome := models.CollectionOutcome{Collection: models.CollectionPlaylists}

	for _, remote := range playlists {
		exists, err := s.playlists.ExistsByTitle(ctx, remote.Title)
		if err != nil {
			outcome.FailedKeys = append(outcome.FailedKeys, remote.Title)
			continue
		}
		if exists {
			outcome.Succeeded++
			continue
		}

		tracks := make([]string, 0, len(remote.Songs))
		for _, song := range remote.Songs {
			if err = s.ensureSong(ctx, playlistSongToSong(song, s.now())); err != nil {
				outcome.FailedKeys = append(outcome.FailedKeys, remote.Title+"/"+song.VideoID)
				continue
			}
			tracks = append(tracks, song.VideoID)
		}

		_, err = s.playlists.CreatePlaylist(ctx, models.LocalPlaylist{
			Title:     remote.Title,
			Thumbnail: remote.Thumbnail,
			Tracks:    tracks,
			InLibrary: s.now(),
		})
		if err != nil {
			outcome.FailedKeys = append(outcome.FailedKeys, remote.Title)
			continue
		}
		outcome.Succeeded++
	}

	return outcome
}

// ensureSong inserts song unless a song with its id is already stored.
func (s *clientSyncService) ensureSong(ctx context.Context, song models.Song) error {
	_, err := s.songs.GetSong(ctx, song.VideoID)
	if errors.Is(err, store.ErrSongNotFound) {
		return s.songs.InsertSong(ctx, song)
	}
	return err
}

// mergeSettings overwrites the settings present in the snapshot.
func (s *clientSyncService) mergeSettings(ctx context.Context, settings *models.SettingsBundle) models.CollectionOutcome {
	outcome := models.CollectionOutcome{Collection: models.CollectionSettings}
	if settings == nil {
		return outcome
	}

	applied, err := s.settings.PatchSettings(ctx, *settings)
	if err != nil {
		outcome.Err = fmt.Errorf("patch settings: %w", err)
		return outcome
	}
	outcome.Succeeded = len(applied)

	return outcome
}

// mergeLibrary inserts subscriptions; local ones missing on the server stay.
func (s *clientSyncService) mergeLibrary(ctx context.Context, library *models.LibraryBundle) models.CollectionOutcome {
	outcome := models.CollectionOutcome{Collection: models.CollectionLibrary}
	if library == nil {
		return outcome
	}

	record := func(key string, err error) {
		if err != nil {
			outcome.FailedKeys = append(outcome.FailedKeys, key)
			return
		}
		outcome.Succeeded++
	}

	for _, album := range library.Albums {
		record(album.BrowseID, s.library.InsertAlbum(ctx, itemToAlbum(album, s.now())))
	}
	for _, artist := range library.Artists {
		record(artist.ChannelID, s.library.InsertArtist(ctx, itemToArtist(artist, s.now())))
	}
	for _, playlist := range library.Playlists {
		record(playlist.PlaylistID, s.library.InsertYouTubePlaylist(ctx, itemToYouTubePlaylist(playlist, s.now())))
	}

	return outcome
}
