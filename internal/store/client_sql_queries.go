// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// songs
const (
	songColumns = `video_id, title, artists, thumbnail, duration, duration_seconds, is_available, is_explicit,
		like_status, video_type, category, result_type, liked, liked_at, total_play_time, last_played_at, in_library`

	getSong = `SELECT ` + songColumns + ` FROM songs WHERE video_id = ?;`

	insertSong = `INSERT INTO songs (` + songColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (video_id) DO NOTHING;`

	likeSong = `UPDATE songs SET liked = 1, like_status = 'LIKE', liked_at = ? WHERE video_id = ?;`

	unlikeSong = `UPDATE songs SET liked = 0, like_status = 'INDIFFERENT', liked_at = NULL WHERE video_id = ?;`

	recordPlay = `UPDATE songs SET total_play_time = total_play_time + ?, last_played_at = ? WHERE video_id = ?;`

	getLikedSongs = `SELECT ` + songColumns + ` FROM songs WHERE liked = 1
		ORDER BY liked_at DESC, in_library DESC;`

	getRecentlyPlayed = `SELECT ` + songColumns + ` FROM songs WHERE total_play_time > 0
		ORDER BY last_played_at IS NULL, last_played_at DESC, total_play_time DESC
		LIMIT ?;`
)

// local playlists
const (
	getLocalPlaylists = `SELECT id, title, thumbnail, tracks, in_library, download_state
		FROM local_playlists ORDER BY in_library DESC, id DESC;`

	countLocalPlaylistsByTitle = `SELECT COUNT(*) FROM local_playlists WHERE title = ?;`

	insertLocalPlaylist = `INSERT INTO local_playlists (title, thumbnail, tracks, in_library, download_state)
		VALUES (?, ?, ?, ?, ?);`

	updateLocalPlaylistTracks = `UPDATE local_playlists SET tracks = ? WHERE id = ?;`

	deleteLocalPlaylist = `DELETE FROM local_playlists WHERE id = ?;`
)

// library
const (
	insertAlbum = `INSERT INTO albums (browse_id, title, artists, thumbnail, audio_playlist_id, type, liked, in_library)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?) ON CONFLICT (browse_id) DO NOTHING;`

	insertArtist = `INSERT INTO artists (channel_id, name, thumbnail, followed, in_library)
		VALUES (?, ?, ?, ?, ?) ON CONFLICT (channel_id) DO NOTHING;`

	insertYouTubePlaylist = `INSERT INTO youtube_playlists (id, title, thumbnail, liked, in_library)
		VALUES (?, ?, ?, ?, ?) ON CONFLICT (id) DO NOTHING;`
)

// settings and session
const (
	getSettingsValues = `SELECT key, value FROM settings;`

	upsertSettingValue = `INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`

	saveSession = `INSERT INTO session (id, token, user, saved_at) VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET token = excluded.token, user = excluded.user, saved_at = excluded.saved_at;`

	loadSession = `SELECT token, user, saved_at FROM session WHERE id = 1;`

	clearSession = `DELETE FROM session;`
)
