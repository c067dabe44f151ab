// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/hymusic-sync/models"
)

// Local to wire. Songs keep only their first artist on the wire; the
// projection is one-way.

func songToFavorite(s models.Song) models.FavoriteItem {
	duration := s.DurationSeconds
	return models.FavoriteItem{
		VideoID:   s.VideoID,
		Title:     s.Title,
		Artist:    optional(s.FirstArtist()),
		Thumbnail: optional(s.Thumbnail),
		Duration:  &duration,
	}
}

func songToHistory(s models.Song) models.HistoryItem {
	return models.HistoryItem(songToFavorite(s))
}

func albumToItem(a models.Album) models.AlbumItem {
	return models.AlbumItem{
		BrowseID:  a.BrowseID,
		Title:     a.Title,
		Artist:    optional(strings.Join(a.Artists, ", ")),
		Thumbnail: optional(a.Thumbnail),
	}
}

func artistToItem(a models.Artist) models.ArtistItem {
	return models.ArtistItem{
		ChannelID: a.ChannelID,
		Name:      a.Name,
		Thumbnail: optional(a.Thumbnail),
	}
}

func youTubePlaylistToItem(p models.YouTubePlaylist) models.YouTubePlaylistItem {
	return models.YouTubePlaylistItem{
		PlaylistID: p.ID,
		Title:      p.Title,
		Thumbnail:  optional(p.Thumbnail),
	}
}

// Wire to local. Fields the wire does not carry get fixed defaults.

func favoriteToSong(f models.FavoriteItem, now time.Time) models.Song {
	s := wireSong(f)
	s.LikeStatus = models.LikeStatusLike
	s.Liked = true
	s.LikedAt = &now
	s.InLibrary = now
	return s
}

func historyToSong(h models.HistoryItem, now time.Time) models.Song {
	s := wireSong(models.FavoriteItem(h))
	s.TotalPlayTime = 1
	s.InLibrary = now
	return s
}

// playlistSongToSong is used for songs referenced by a restored playlist.
// They are not favorites.
func playlistSongToSong(f models.FavoriteItem, now time.Time) models.Song {
	s := wireSong(f)
	s.InLibrary = now
	return s
}

func wireSong(f models.FavoriteItem) models.Song {
	s := models.Song{
		VideoID:     f.VideoID,
		Title:       f.Title,
		Duration:    formatDuration(f.Duration),
		IsAvailable: true,
		IsExplicit:  false,
		LikeStatus:  models.LikeStatusIndifferent,
		VideoType:   models.DefaultVideoType,
	}
	if f.Artist != nil {
		s.Artists = []string{*f.Artist}
	}
	if f.Thumbnail != nil {
		s.Thumbnail = *f.Thumbnail
	}
	if f.Duration != nil {
		s.DurationSeconds = *f.Duration
	}
	return s
}

func itemToAlbum(a models.AlbumItem, now time.Time) models.Album {
	album := models.Album{
		BrowseID:        a.BrowseID,
		Title:           a.Title,
		AudioPlaylistID: a.BrowseID,
		Type:            "Album",
		Liked:           true,
		InLibrary:       now,
	}
	if a.Artist != nil {
		album.Artists = []string{*a.Artist}
	}
	if a.Thumbnail != nil {
		album.Thumbnail = *a.Thumbnail
	}
	return album
}

func itemToArtist(a models.ArtistItem, now time.Time) models.Artist {
	artist := models.Artist{
		ChannelID: a.ChannelID,
		Name:      a.Name,
		Followed:  true,
		InLibrary: now,
	}
	if a.Thumbnail != nil {
		artist.Thumbnail = *a.Thumbnail
	}
	return artist
}

func itemToYouTubePlaylist(p models.YouTubePlaylistItem, now time.Time) models.YouTubePlaylist {
	playlist := models.YouTubePlaylist{
		ID:        p.PlaylistID,
		Title:     p.Title,
		Liked:     true,
		InLibrary: now,
	}
	if p.Thumbnail != nil {
		playlist.Thumbnail = *p.Thumbnail
	}
	return playlist
}

// formatDuration renders seconds as m:ss. A missing duration is "0:00".
func formatDuration(seconds *int) string {
	if seconds == nil || *seconds < 0 {
		return "0:00"
	}
	return fmt.Sprintf("%d:%02d", *seconds/60, *seconds%60)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
