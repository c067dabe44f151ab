// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FavoriteItem is the wire shape of a liked track. At most one favorite
// exists per (user, VideoID).
type FavoriteItem struct {
	VideoID   string  `json:"videoId"`
	Title     string  `json:"title"`
	Artist    *string `json:"artist,omitempty"`
	Thumbnail *string `json:"thumbnail,omitempty"`

	// Duration is the track length in whole seconds.
	Duration *int `json:"duration,omitempty"`
}

// HistoryItem is the wire shape of a played track.
type HistoryItem struct {
	VideoID   string  `json:"videoId"`
	Title     string  `json:"title"`
	Artist    *string `json:"artist,omitempty"`
	Thumbnail *string `json:"thumbnail,omitempty"`
	Duration  *int    `json:"duration,omitempty"`
}

// PlaylistItem is the wire shape of a user-created playlist. Songs are
// ordered; the position of a song in the slice is its position in the
// playlist.
type PlaylistItem struct {
	ID          *string        `json:"id,omitempty"`
	Title       string         `json:"title"`
	Description *string        `json:"description,omitempty"`
	Thumbnail   *string        `json:"thumbnail,omitempty"`
	Songs       []FavoriteItem `json:"songs,omitempty"`
}

// AlbumItem is a saved album in the user's library.
type AlbumItem struct {
	BrowseID  string  `json:"browseId"`
	Title     string  `json:"title"`
	Artist    *string `json:"artist,omitempty"`
	Thumbnail *string `json:"thumbnail,omitempty"`
}

// ArtistItem is a followed artist in the user's library.
type ArtistItem struct {
	ChannelID string  `json:"channelId"`
	Name      string  `json:"name"`
	Thumbnail *string `json:"thumbnail,omitempty"`
}

// YouTubePlaylistItem is a saved (not user-created) playlist.
type YouTubePlaylistItem struct {
	PlaylistID string  `json:"playlistId"`
	Title      string  `json:"title"`
	Thumbnail  *string `json:"thumbnail,omitempty"`
}

// LibraryBundle groups the three library subscription collections. They are
// always replaced together.
type LibraryBundle struct {
	Albums    []AlbumItem           `json:"albums"`
	Artists   []ArtistItem          `json:"artists"`
	Playlists []YouTubePlaylistItem `json:"playlists"`
}

// Len returns the total number of subscriptions in the bundle.
func (l LibraryBundle) Len() int {
	return len(l.Albums) + len(l.Artists) + len(l.Playlists)
}

// SyncAllResponse is the full per-user snapshot returned by GET /api/sync/all.
type SyncAllResponse struct {
	Favorites []FavoriteItem  `json:"favorites"`
	Playlists []PlaylistItem  `json:"playlists"`
	History   []HistoryItem   `json:"history"`
	Settings  *SettingsBundle `json:"settings,omitempty"`
	Library   *LibraryBundle  `json:"library,omitempty"`
}

// FavoritesRequest is the body of POST /api/sync/favorites.
type FavoritesRequest struct {
	Favorites []FavoriteItem `json:"favorites"`
}

// PlaylistsRequest is the body of POST /api/sync/playlists.
type PlaylistsRequest struct {
	Playlists []PlaylistItem `json:"playlists"`
}

// HistoryRequest is the body of POST /api/sync/history.
type HistoryRequest struct {
	History []HistoryItem `json:"history"`
}

// SettingsRequest is the body of POST /api/sync/settings.
type SettingsRequest struct {
	Settings SettingsBundle `json:"settings"`
}

// HistoryLimit caps both the uploaded and the served play history.
const HistoryLimit = 100

// LibraryUploadLimit caps each library sub-collection on upload.
const LibraryUploadLimit = 1000
