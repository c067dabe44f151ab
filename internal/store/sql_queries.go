// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// users
const (
	userColumns = `id, email, password_hash, nickname, avatar, is_admin, is_banned, created_at, updated_at`

	createUser = `INSERT INTO users (id, email, password_hash, nickname, avatar, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns + `;`

	createDefaultSettings = `INSERT INTO user_settings (user_id) VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING;`

	findUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1;`

	setUserBanned = `UPDATE users SET is_banned = $2, updated_at = NOW() WHERE id = $1;`

	setUserAdmin = `UPDATE users SET is_admin = $2, updated_at = NOW() WHERE id = $1;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	countStats = `SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM users WHERE created_at >= $1),
			(SELECT COUNT(*) FROM favorites),
			(SELECT COUNT(*) FROM playlists),
			(SELECT COUNT(*) FROM play_history);`
)

// adminUserColumns selects a user together with its collection counts.
var adminUserColumns = []string{
	"u.id", "u.email", "u.nickname", "u.avatar", "u.is_admin", "u.is_banned", "u.created_at", "u.updated_at",
	"(SELECT COUNT(*) FROM favorites f WHERE f.user_id = u.id)",
	"(SELECT COUNT(*) FROM playlists p WHERE p.user_id = u.id)",
	"(SELECT COUNT(*) FROM play_history h WHERE h.user_id = u.id)",
}

// favorites
const (
	getFavorites = `SELECT video_id, title, artist, thumbnail, duration
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC;`

	deleteFavorites = `DELETE FROM favorites WHERE user_id = $1;`

	insertFavorite = `INSERT INTO favorites (user_id, video_id, title, artist, thumbnail, duration)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, video_id) DO UPDATE
		SET title = EXCLUDED.title, artist = EXCLUDED.artist,
			thumbnail = EXCLUDED.thumbnail, duration = EXCLUDED.duration;`

	deleteFavorite = `DELETE FROM favorites WHERE user_id = $1 AND video_id = $2;`
)

// playlists
const (
	getPlaylists = `SELECT id, title, description, thumbnail
		FROM playlists
		WHERE user_id = $1
		ORDER BY updated_at DESC, id;`

	getPlaylistSongs = `SELECT s.playlist_id, s.video_id, s.title, s.artist, s.thumbnail, s.duration
		FROM playlist_songs s
		JOIN playlists p ON p.id = s.playlist_id
		WHERE p.user_id = $1
		ORDER BY s.playlist_id, s.position;`

	deletePlaylists = `DELETE FROM playlists WHERE user_id = $1;`

	insertPlaylist = `INSERT INTO playlists (id, user_id, title, description, thumbnail)
		VALUES ($1, $2, $3, $4, $5);`

	insertPlaylistSong = `INSERT INTO playlist_songs (playlist_id, video_id, title, artist, thumbnail, duration, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`
)

// history
const (
	getHistory = `SELECT video_id, title, artist, thumbnail, duration
		FROM play_history
		WHERE user_id = $1
		ORDER BY played_at DESC, id DESC
		LIMIT $2;`

	insertHistory = `INSERT INTO play_history (user_id, video_id, title, artist, thumbnail, duration)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, video_id) DO NOTHING;`
)

// library
const (
	getLibraryAlbums = `SELECT browse_id, title, artist, thumbnail
		FROM library_albums WHERE user_id = $1 ORDER BY created_at, browse_id;`

	getLibraryArtists = `SELECT channel_id, name, thumbnail
		FROM library_artists WHERE user_id = $1 ORDER BY created_at, channel_id;`

	getLibraryPlaylists = `SELECT playlist_id, title, thumbnail
		FROM library_playlists WHERE user_id = $1 ORDER BY created_at, playlist_id;`

	deleteLibraryAlbums    = `DELETE FROM library_albums WHERE user_id = $1;`
	deleteLibraryArtists   = `DELETE FROM library_artists WHERE user_id = $1;`
	deleteLibraryPlaylists = `DELETE FROM library_playlists WHERE user_id = $1;`

	insertLibraryAlbum = `INSERT INTO library_albums (user_id, browse_id, title, artist, thumbnail)
		VALUES ($1, $2, $3, $4, $5) ON CONFLICT DO NOTHING;`

	insertLibraryArtist = `INSERT INTO library_artists (user_id, channel_id, name, thumbnail)
		VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING;`

	insertLibraryPlaylist = `INSERT INTO library_playlists (user_id, playlist_id, title, thumbnail)
		VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING;`
)

// announcements
const (
	announcementColumns = `id, title, content, is_active, priority, created_at, updated_at`

	insertAnnouncement = `INSERT INTO announcements (id, title, content, is_active, priority)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + announcementColumns + `;`

	deleteAnnouncement = `DELETE FROM announcements WHERE id = $1;`
)

// system settings
const (
	getSystemSettings = `SELECT id, registration_enabled, updated_at
		FROM system_settings WHERE id = $1;`

	ensureSystemSettings = `INSERT INTO system_settings (id) VALUES ($1)
		ON CONFLICT (id) DO NOTHING;`
)
