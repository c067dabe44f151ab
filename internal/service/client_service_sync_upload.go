// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/store"
	"github.com/MKhiriev/hymusic-sync/models"
)

// uploadOverwrite publishes the local state of each collection. Collections
// are uploaded concurrently and independently: one failing does not stop
// the others.
func (s *clientSyncService) uploadOverwrite(ctx context.Context, collections ...models.Collection) models.PassReport {
	report := models.PassReport{
		Direction: models.DirectionUpload,
		StartedAt: s.now(),
		Outcomes:  make([]models.CollectionOutcome, len(collections)),
	}

	var g errgroup.Group
	for i, c := range collections {
		g.Go(func() error {
			report.Outcomes[i] = s.uploadCollection(ctx, c)
			return nil
		})
	}
	_ = g.Wait()

	report.FinishedAt = s.now()

	for _, o := range report.Outcomes {
		if o.Err != nil {
			logger.FromContext(ctx).Debug().
				Err(o.Err).
				Str("func", "clientSyncService.uploadOverwrite").
				Str("collection", string(o.Collection)).
				Msg("collection upload failed")
		}
	}

	return report
}

func (s *clientSyncService) uploadCollection(ctx context.Context, c models.Collection) models.CollectionOutcome {
	var outcome models.CollectionOutcome
	switch c {
	case models.CollectionFavorites:
		outcome = s.uploadFavorites(ctx)
	case models.CollectionPlaylists:
		outcome = s.uploadPlaylists(ctx)
	case models.CollectionHistory:
		outcome = s.uploadHistory(ctx)
	case models.CollectionSettings:
		outcome = s.uploadSettings(ctx)
	case models.CollectionLibrary:
		outcome = s.uploadLibrary(ctx)
	default:
		outcome.Err = fmt.Errorf("unknown collection %q", c)
	}
	outcome.Collection = c

	if outcome.Err != nil {
		outcome.Err = fmt.Errorf("upload %s: %w", c, mapAdapterError(outcome.Err))
	}
	return outcome
}

// uploadFavorites sends the whole liked set. An empty set clears the
// server's favorites.
func (s *clientSyncService) uploadFavorites(ctx context.Context) models.CollectionOutcome {
	liked, err := s.songs.LikedSongs(ctx)
	if err != nil {
		return models.CollectionOutcome{Err: err}
	}

	items := make([]models.FavoriteItem, 0, len(liked))
	for _, song := range liked {
		items = append(items, songToFavorite(song))
	}

	count, err := s.adapter.UploadFavorites(ctx, items)
	return models.CollectionOutcome{Succeeded: count, Err: err}
}

// uploadPlaylists sends every local playlist with its tracks resolved to
// songs. Tracks whose song is gone are skipped and reported.
func (s *clientSyncService) uploadPlaylists(ctx context.Context) models.CollectionOutcome {
	var outcome models.CollectionOutcome

	playlists, err := s.playlists.ListPlaylists(ctx)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	items := make([]models.PlaylistItem, 0, len(playlists))
	for _, playlist := range playlists {
		songs := make([]models.FavoriteItem, 0, len(playlist.Tracks))
		for _, videoID := range playlist.Tracks {
			song, err := s.songs.GetSong(ctx, videoID)
			if err != nil {
				if !errors.Is(err, store.ErrSongNotFound) {
					outcome.Err = err
					return outcome
				}
				outcome.FailedKeys = append(outcome.FailedKeys, playlist.Title+"/"+videoID)
				continue
			}
			songs = append(songs, songToFavorite(song))
		}

		items = append(items, models.PlaylistItem{
			Title:     playlist.Title,
			Thumbnail: playlist.Thumbnail,
			Songs:     songs,
		})
	}

	outcome.Succeeded, outcome.Err = s.adapter.UploadPlaylists(ctx, items)
	return outcome
}

// uploadHistory sends the most recently played songs, capped at
// [models.HistoryLimit].
func (s *clientSyncService) uploadHistory(ctx context.Context) models.CollectionOutcome {
	recent, err := s.songs.RecentlyPlayed(ctx, models.HistoryLimit)
	if err != nil {
		return models.CollectionOutcome{Err: err}
	}

	items := make([]models.HistoryItem, 0, len(recent))
	for _, song := range recent {
		items = append(items, songToHistory(song))
	}

	count, err := s.adapter.UploadHistory(ctx, items)
	return models.CollectionOutcome{Succeeded: count, Err: err}
}

// uploadSettings sends every tracked field.
func (s *clientSyncService) uploadSettings(ctx context.Context) models.CollectionOutcome {
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return models.CollectionOutcome{Err: err}
	}

	if err = s.adapter.UploadSettings(ctx, settings.Bundle()); err != nil {
		return models.CollectionOutcome{Err: err}
	}
	return models.CollectionOutcome{Succeeded: models.SettingsFieldCount}
}

// uploadLibrary sends the three subscription collections together.
func (s *clientSyncService) uploadLibrary(ctx context.Context) models.CollectionOutcome {
	library, err := readLibrary(ctx, s.library, models.LibraryUploadLimit)
	if err != nil {
		return models.CollectionOutcome{Err: err}
	}

	count, err := s.adapter.UploadLibrary(ctx, library)
	return models.CollectionOutcome{Succeeded: count, Err: err}
}

// readLibrary reads up to limit items of each library collection in wire
// form. A non-positive limit reads everything.
func readLibrary(ctx context.Context, repo store.LibraryRepository, limit int) (models.LibraryBundle, error) {
	albums, err := repo.Albums(ctx, limit)
	if err != nil {
		return models.LibraryBundle{}, err
	}
	artists, err := repo.Artists(ctx, limit)
	if err != nil {
		return models.LibraryBundle{}, err
	}
	playlists, err := repo.YouTubePlaylists(ctx, limit)
	if err != nil {
		return models.LibraryBundle{}, err
	}

	bundle := models.LibraryBundle{
		Albums:    make([]models.AlbumItem, 0, len(albums)),
		Artists:   make([]models.ArtistItem, 0, len(artists)),
		Playlists: make([]models.YouTubePlaylistItem, 0, len(playlists)),
	}
	for _, a := range albums {
		bundle.Albums = append(bundle.Albums, albumToItem(a))
	}
	for _, a := range artists {
		bundle.Artists = append(bundle.Artists, artistToItem(a))
	}
	for _, p := range playlists {
		bundle.Playlists = append(bundle.Playlists, youTubePlaylistToItem(p))
	}

	return bundle, nil
}
