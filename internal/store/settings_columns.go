// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/hymusic-sync/models"

// settingsColumn pairs the JSON name of a tracked setting with its column in
// user_settings.
type settingsColumn struct {
	key    string
	column string
}

// settingsColumns is ordered like settingsScanDest.
var settingsColumns = []settingsColumn{
	{"quality", "quality"},
	{"language", "language"},
	{"saveHistory", "save_history"},
	{"downloadQuality", "download_quality"},
	{"videoDownloadQuality", "video_download_quality"},
	{"videoQuality", "video_quality"},
	{"normalizeVolume", "normalize_volume"},
	{"skipSilent", "skip_silent"},
	{"saveStateOfPlayback", "save_state_of_playback"},
	{"crossfadeEnabled", "crossfade_enabled"},
	{"crossfadeDuration", "crossfade_duration"},
	{"sponsorBlockEnabled", "sponsor_block_enabled"},
	{"enableTranslateLyric", "enable_translate_lyric"},
	{"lyricsProvider", "lyrics_provider"},
	{"translationLanguage", "translation_language"},
	{"aiProvider", "ai_provider"},
	{"useAITranslation", "use_ai_translation"},
	{"translucentBottomBar", "translucent_bottom_bar"},
	{"blurPlayerBackground", "blur_player_background"},
	{"blurFullscreenLyrics", "blur_fullscreen_lyrics"},
	{"enableLiquidGlass", "enable_liquid_glass"},
	{"explicitContentEnabled", "explicit_content_enabled"},
	{"homeLimit", "home_limit"},
	{"watchVideoInsteadOfPlayingAudio", "watch_video_instead_of_playing_audio"},
	{"keepYouTubePlaylistOffline", "keep_youtube_playlist_offline"},
}

func settingsColumnNames() []string {
	names := make([]string, len(settingsColumns))
	for i, c := range settingsColumns {
		names[i] = c.column
	}
	return names
}

func settingsScanDest(s *models.Settings) []any {
	return []any{
		&s.Quality,
		&s.Language,
		&s.SaveHistory,
		&s.DownloadQuality,
		&s.VideoDownloadQuality,
		&s.VideoQuality,
		&s.NormalizeVolume,
		&s.SkipSilent,
		&s.SaveStateOfPlayback,
		&s.CrossfadeEnabled,
		&s.CrossfadeDuration,
		&s.SponsorBlockEnabled,
		&s.EnableTranslateLyric,
		&s.LyricsProvider,
		&s.TranslationLanguage,
		&s.AIProvider,
		&s.UseAITranslation,
		&s.TranslucentBottomBar,
		&s.BlurPlayerBackground,
		&s.BlurFullscreenLyrics,
		&s.EnableLiquidGlass,
		&s.ExplicitContentEnabled,
		&s.HomeLimit,
		&s.WatchVideoInsteadOfPlayingAudio,
		&s.KeepYouTubePlaylistOffline,
	}
}
