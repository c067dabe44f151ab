// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SettingsBundle is the wire shape of the user's settings. Every field is
// optional: a nil field means "no change" when the bundle is merged.
type SettingsBundle struct {
	Quality     *string `json:"quality,omitempty"`
	Language    *string `json:"language,omitempty"`
	SaveHistory *bool   `json:"saveHistory,omitempty"`

	DownloadQuality      *string `json:"downloadQuality,omitempty"`
	VideoDownloadQuality *string `json:"videoDownloadQuality,omitempty"`
	VideoQuality         *string `json:"videoQuality,omitempty"`

	NormalizeVolume     *bool `json:"normalizeVolume,omitempty"`
	SkipSilent          *bool `json:"skipSilent,omitempty"`
	SaveStateOfPlayback *bool `json:"saveStateOfPlayback,omitempty"`
	CrossfadeEnabled    *bool `json:"crossfadeEnabled,omitempty"`
	CrossfadeDuration   *int  `json:"crossfadeDuration,omitempty"`

	SponsorBlockEnabled  *bool   `json:"sponsorBlockEnabled,omitempty"`
	EnableTranslateLyric *bool   `json:"enableTranslateLyric,omitempty"`
	LyricsProvider       *string `json:"lyricsProvider,omitempty"`
	TranslationLanguage  *string `json:"translationLanguage,omitempty"`
	AIProvider           *string `json:"aiProvider,omitempty"`
	UseAITranslation     *bool   `json:"useAITranslation,omitempty"`

	TranslucentBottomBar   *bool `json:"translucentBottomBar,omitempty"`
	BlurPlayerBackground   *bool `json:"blurPlayerBackground,omitempty"`
	BlurFullscreenLyrics   *bool `json:"blurFullscreenLyrics,omitempty"`
	EnableLiquidGlass      *bool `json:"enableLiquidGlass,omitempty"`
	ExplicitContentEnabled *bool `json:"explicitContentEnabled,omitempty"`
	HomeLimit              *int  `json:"homeLimit,omitempty"`

	WatchVideoInsteadOfPlayingAudio *bool `json:"watchVideoInsteadOfPlayingAudio,omitempty"`
	KeepYouTubePlaylistOffline      *bool `json:"keepYouTubePlaylistOffline,omitempty"`
}

// Values returns the present fields of the bundle keyed by their JSON name.
// Absent fields are not included.
func (b SettingsBundle) Values() map[string]any {
	values := make(map[string]any, SettingsFieldCount)

	putString := func(key string, v *string) {
		if v != nil {
			values[key] = *v
		}
	}
	putBool := func(key string, v *bool) {
		if v != nil {
			values[key] = *v
		}
	}
	putInt := func(key string, v *int) {
		if v != nil {
			values[key] = *v
		}
	}

	putString("quality", b.Quality)
	putString("language", b.Language)
	putBool("saveHistory", b.SaveHistory)
	putString("downloadQuality", b.DownloadQuality)
	putString("videoDownloadQuality", b.VideoDownloadQuality)
	putString("videoQuality", b.VideoQuality)
	putBool("normalizeVolume", b.NormalizeVolume)
	putBool("skipSilent", b.SkipSilent)
	putBool("saveStateOfPlayback", b.SaveStateOfPlayback)
	putBool("crossfadeEnabled", b.CrossfadeEnabled)
	putInt("crossfadeDuration", b.CrossfadeDuration)
	putBool("sponsorBlockEnabled", b.SponsorBlockEnabled)
	putBool("enableTranslateLyric", b.EnableTranslateLyric)
	putString("lyricsProvider", b.LyricsProvider)
	putString("translationLanguage", b.TranslationLanguage)
	putString("aiProvider", b.AIProvider)
	putBool("useAITranslation", b.UseAITranslation)
	putBool("translucentBottomBar", b.TranslucentBottomBar)
	putBool("blurPlayerBackground", b.BlurPlayerBackground)
	putBool("blurFullscreenLyrics", b.BlurFullscreenLyrics)
	putBool("enableLiquidGlass", b.EnableLiquidGlass)
	putBool("explicitContentEnabled", b.ExplicitContentEnabled)
	putInt("homeLimit", b.HomeLimit)
	putBool("watchVideoInsteadOfPlayingAudio", b.WatchVideoInsteadOfPlayingAudio)
	putBool("keepYouTubePlaylistOffline", b.KeepYouTubePlaylistOffline)

	return values
}

// IsEmpty reports whether no field of the bundle is present.
func (b SettingsBundle) IsEmpty() bool {
	return len(b.Values()) == 0
}

// SettingsFieldCount is the number of tracked settings fields.
const SettingsFieldCount = 25

// Settings is the concrete local value of every tracked setting.
type Settings struct {
	Quality     string
	Language    string
	SaveHistory bool

	DownloadQuality      string
	VideoDownloadQuality string
	VideoQuality         string

	NormalizeVolume     bool
	SkipSilent          bool
	SaveStateOfPlayback bool
	CrossfadeEnabled    bool
	CrossfadeDuration   int

	SponsorBlockEnabled  bool
	EnableTranslateLyric bool
	LyricsProvider       string
	TranslationLanguage  string
	AIProvider           string
	UseAITranslation     bool

	TranslucentBottomBar   bool
	BlurPlayerBackground   bool
	BlurFullscreenLyrics   bool
	EnableLiquidGlass      bool
	ExplicitContentEnabled bool
	HomeLimit              int

	WatchVideoInsteadOfPlayingAudio bool
	KeepYouTubePlaylistOffline      bool
}

// DefaultSettings returns the values a fresh install starts with.
func DefaultSettings() Settings {
	return Settings{
		Quality:                "HIGH",
		Language:               "en-US",
		SaveHistory:            true,
		DownloadQuality:        "HIGH",
		VideoDownloadQuality:   "720p",
		VideoQuality:           "720p",
		CrossfadeDuration:      5000,
		LyricsProvider:         "LRCLIB",
		TranslationLanguage:    "en",
		AIProvider:             "OPENAI",
		TranslucentBottomBar:   true,
		BlurPlayerBackground:   true,
		ExplicitContentEnabled: true,
		HomeLimit:              5,
	}
}

// Apply overwrites the fields present in b and leaves the others untouched.
// It returns the JSON names of the fields that were applied.
func (s *Settings) Apply(b SettingsBundle) []string {
	applied := make([]string, 0, SettingsFieldCount)

	setString := func(key string, dst *string, v *string) {
		if v != nil {
			*dst = *v
			applied = append(applied, key)
		}
	}
	setBool := func(key string, dst *bool, v *bool) {
		if v != nil {
			*dst = *v
			applied = append(applied, key)
		}
	}
	setInt := func(key string, dst *int, v *int) {
		if v != nil {
			*dst = *v
			applied = append(applied, key)
		}
	}

	setString("quality", &s.Quality, b.Quality)
	setString("language", &s.Language, b.Language)
	setBool("saveHistory", &s.SaveHistory, b.SaveHistory)
	setString("downloadQuality", &s.DownloadQuality, b.DownloadQuality)
	setString("videoDownloadQuality", &s.VideoDownloadQuality, b.VideoDownloadQuality)
	setString("videoQuality", &s.VideoQuality, b.VideoQuality)
	setBool("normalizeVolume", &s.NormalizeVolume, b.NormalizeVolume)
	setBool("skipSilent", &s.SkipSilent, b.SkipSilent)
	setBool("saveStateOfPlayback", &s.SaveStateOfPlayback, b.SaveStateOfPlayback)
	setBool("crossfadeEnabled", &s.CrossfadeEnabled, b.CrossfadeEnabled)
	setInt("crossfadeDuration", &s.CrossfadeDuration, b.CrossfadeDuration)
	setBool("sponsorBlockEnabled", &s.SponsorBlockEnabled, b.SponsorBlockEnabled)
	setBool("enableTranslateLyric", &s.EnableTranslateLyric, b.EnableTranslateLyric)
	setString("lyricsProvider", &s.LyricsProvider, b.LyricsProvider)
	setString("translationLanguage", &s.TranslationLanguage, b.TranslationLanguage)
	setString("aiProvider", &s.AIProvider, b.AIProvider)
	setBool("useAITranslation", &s.UseAITranslation, b.UseAITranslation)
	setBool("translucentBottomBar", &s.TranslucentBottomBar, b.TranslucentBottomBar)
	setBool("blurPlayerBackground", &s.BlurPlayerBackground, b.BlurPlayerBackground)
	setBool("blurFullscreenLyrics", &s.BlurFullscreenLyrics, b.BlurFullscreenLyrics)
	setBool("enableLiquidGlass", &s.EnableLiquidGlass, b.EnableLiquidGlass)
	setBool("explicitContentEnabled", &s.ExplicitContentEnabled, b.ExplicitContentEnabled)
	setInt("homeLimit", &s.HomeLimit, b.HomeLimit)
	setBool("watchVideoInsteadOfPlayingAudio", &s.WatchVideoInsteadOfPlayingAudio, b.WatchVideoInsteadOfPlayingAudio)
	setBool("keepYouTubePlaylistOffline", &s.KeepYouTubePlaylistOffline, b.KeepYouTubePlaylistOffline)

	return applied
}

// Bundle returns a bundle with every field present.
func (s Settings) Bundle() SettingsBundle {
	return SettingsBundle{
		Quality:                         &s.Quality,
		Language:                        &s.Language,
		SaveHistory:                     &s.SaveHistory,
		DownloadQuality:                 &s.DownloadQuality,
		VideoDownloadQuality:            &s.VideoDownloadQuality,
		VideoQuality:                    &s.VideoQuality,
		NormalizeVolume:                 &s.NormalizeVolume,
		SkipSilent:                      &s.SkipSilent,
		SaveStateOfPlayback:             &s.SaveStateOfPlayback,
		CrossfadeEnabled:                &s.CrossfadeEnabled,
		CrossfadeDuration:               &s.CrossfadeDuration,
		SponsorBlockEnabled:             &s.SponsorBlockEnabled,
		EnableTranslateLyric:            &s.EnableTranslateLyric,
		LyricsProvider:                  &s.LyricsProvider,
		TranslationLanguage:             &s.TranslationLanguage,
		AIProvider:                      &s.AIProvider,
		UseAITranslation:                &s.UseAITranslation,
		TranslucentBottomBar:            &s.TranslucentBottomBar,
		BlurPlayerBackground:            &s.BlurPlayerBackground,
		BlurFullscreenLyrics:            &s.BlurFullscreenLyrics,
		EnableLiquidGlass:               &s.EnableLiquidGlass,
		ExplicitContentEnabled:          &s.ExplicitContentEnabled,
		HomeLimit:                       &s.HomeLimit,
		WatchVideoInsteadOfPlayingAudio: &s.WatchVideoInsteadOfPlayingAudio,
		KeepYouTubePlaylistOffline:      &s.KeepYouTubePlaylistOffline,
	}
}
