// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/hymusic-sync/models"
)

const (
	// FieldItems checks the identity and title of every item in a batch.
	FieldItems = "items"

	// FieldSize checks the batch against its size cap.
	FieldSize = "size"

	// FieldContent checks the announcement title and content.
	FieldContent = "content"
)

// SyncValidator validates sync upload bodies and announcement payloads
// before they reach storage.
type SyncValidator struct{}

func NewSyncValidator() Validator {
	return &SyncValidator{}
}

func (v *SyncValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItems, FieldSize}
	}

	switch value := obj.(type) {
	case models.FavoritesRequest:
		return v.validateFields(fields, func(f string) error {
			switch f {
			case FieldItems:
				return validateFavorites(value.Favorites)
			case FieldSize:
				return nil
			}
			return ErrUnknownField
		})
	case models.PlaylistsRequest:
		return v.validateFields(fields, func(f string) error {
			switch f {
			case FieldItems:
				return validatePlaylists(value.Playlists)
			case FieldSize:
				return nil
			}
			return ErrUnknownField
		})
	case models.HistoryRequest:
		return v.validateFields(fields, func(f string) error {
			switch f {
			case FieldItems:
				return validateHistory(value.History)
			case FieldSize:
				return nil
			}
			return ErrUnknownField
		})
	case models.SettingsRequest:
		if value.Settings.IsEmpty() {
			return ErrEmptySettings
		}
		return validateSettings(value.Settings)
	case models.LibraryBundle:
		return v.validateFields(fields, func(f string) error {
			switch f {
			case FieldItems:
				return validateLibrary(value)
			case FieldSize:
				return validateLibrarySize(value)
			}
			return ErrUnknownField
		})
	case models.AnnouncementCreate:
		if strings.TrimSpace(value.Title) == "" || strings.TrimSpace(value.Content) == "" {
			return ErrEmptyContent
		}
		return nil
	case models.AnnouncementUpdate:
		if value.IsEmpty() {
			return ErrNoFieldsToUpdate
		}
		if value.Title != nil && strings.TrimSpace(*value.Title) == "" {
			return ErrEmptyTitle
		}
		if value.Content != nil && strings.TrimSpace(*value.Content) == "" {
			return ErrEmptyContent
		}
		return nil
	default:
		return ErrUnsupportedType
	}
}

func (v *SyncValidator) validateFields(fields []string, check func(string) error) error {
	for _, f := range fields {
		if err := check(f); err != nil {
			return err
		}
	}
	return nil
}

func validateFavorites(items []models.FavoriteItem) error {
	for i, item := range items {
		if err := validateTrack(item.VideoID, item.Title, item.Duration); err != nil {
			return fmt.Errorf("favorites[%d]: %w", i, err)
		}
	}
	return nil
}

func validateHistory(items []models.HistoryItem) error {
	for i, item := range items {
		if err := validateTrack(item.VideoID, item.Title, item.Duration); err != nil {
			return fmt.Errorf("history[%d]: %w", i, err)
		}
	}
	return nil
}

func validatePlaylists(items []models.PlaylistItem) error {
	for i, p := range items {
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("playlists[%d]: %w", i, ErrEmptyTitle)
		}
		for j, s := range p.Songs {
			if err := validateTrack(s.VideoID, s.Title, s.Duration); err != nil {
				return fmt.Errorf("playlists[%d].songs[%d]: %w", i, j, err)
			}
		}
	}
	return nil
}

func validateTrack(videoID, title string, duration *int) error {
	if strings.TrimSpace(videoID) == "" {
		return ErrEmptyVideoID
	}
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if duration != nil && *duration < 0 {
		return ErrNegativeDuration
	}
	return nil
}

func validateLibrary(l models.LibraryBundle) error {
	for i, a := range l.Albums {
		if strings.TrimSpace(a.BrowseID) == "" {
			return fmt.Errorf("albums[%d]: %w", i, ErrEmptyLibraryKey)
		}
	}
	for i, a := range l.Artists {
		if strings.TrimSpace(a.ChannelID) == "" {
			return fmt.Errorf("artists[%d]: %w", i, ErrEmptyLibraryKey)
		}
	}
	for i, p := range l.Playlists {
		if strings.TrimSpace(p.PlaylistID) == "" {
			return fmt.Errorf("playlists[%d]: %w", i, ErrEmptyLibraryKey)
		}
	}
	return nil
}

func validateLibrarySize(l models.LibraryBundle) error {
	switch {
	case len(l.Albums) > models.LibraryUploadLimit:
		return fmt.Errorf("albums: %w (%d > %d)", ErrTooManyItems, len(l.Albums), models.LibraryUploadLimit)
	case len(l.Artists) > models.LibraryUploadLimit:
		return fmt.Errorf("artists: %w (%d > %d)", ErrTooManyItems, len(l.Artists), models.LibraryUploadLimit)
	case len(l.Playlists) > models.LibraryUploadLimit:
		return fmt.Errorf("playlists: %w (%d > %d)", ErrTooManyItems, len(l.Playlists), models.LibraryUploadLimit)
	}
	return nil
}

func validateSettings(b models.SettingsBundle) error {
	if b.CrossfadeDuration != nil && *b.CrossfadeDuration < 0 {
		return fmt.Errorf("crossfadeDuration: %w", ErrNegativeDuration)
	}
	return nil
}
