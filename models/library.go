// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LikeStatus is the rating a user gave a song.
type LikeStatus string

const (
	LikeStatusLike        LikeStatus = "LIKE"
	LikeStatusIndifferent LikeStatus = "INDIFFERENT"
)

// DefaultVideoType is the video type assigned to songs reconstructed from
// the wire, which does not carry one.
const DefaultVideoType = "MUSIC_VIDEO_TYPE_ATV"

// Song is a track stored on the device.
type Song struct {
	VideoID         string
	Title           string
	Artists         []string
	Thumbnail       string
	Duration        string
	DurationSeconds int
	IsAvailable     bool
	IsExplicit      bool
	LikeStatus      LikeStatus
	VideoType       string
	Category        *string
	ResultType      *string
	Liked           bool
	LikedAt         *time.Time
	TotalPlayTime   int64
	LastPlayedAt    *time.Time
	InLibrary       time.Time
}

// FirstArtist returns the first artist name or an empty string.
func (s Song) FirstArtist() string {
	if len(s.Artists) == 0 {
		return ""
	}
	return s.Artists[0]
}

// LocalPlaylist is a user-created playlist stored on the device. Tracks holds
// video ids in playlist order.
type LocalPlaylist struct {
	ID            int64
	Title         string
	Thumbnail     *string
	Tracks        []string
	InLibrary     time.Time
	DownloadState int
}

// Playlist download states.
const (
	DownloadStateNotDownloaded = 0
	DownloadStatePreparing     = 1
	DownloadStateDownloading   = 2
	DownloadStateDownloaded    = 3
)

// Album is a saved album stored on the device.
type Album struct {
	BrowseID        string
	Title           string
	Artists         []string
	Thumbnail       string
	AudioPlaylistID string
	Type            string
	Liked           bool
	InLibrary       time.Time
}

// Artist is a followed artist stored on the device.
type Artist struct {
	ChannelID string
	Name      string
	Thumbnail string
	Followed  bool
	InLibrary time.Time
}

// YouTubePlaylist is a saved playlist stored on the device.
type YouTubePlaylist struct {
	ID        string
	Title     string
	Thumbnail string
	Liked     bool
	InLibrary time.Time
}

// Session is the persisted login of the terminal client.
type Session struct {
	Token   string
	User    UserInfo
	SavedAt time.Time
}
