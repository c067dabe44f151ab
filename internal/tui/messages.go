// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/hymusic-sync/models"
)

// NavigateTo switches the active page of [RootModel]. Payload, if set, is
// delivered to the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login form.
type LoginResult struct {
	User models.UserInfo
	Err  error
}

// RegisterResult is produced by the registration form.
type RegisterResult struct {
	User models.UserInfo
	Err  error
}

type libraryLoadedMsg struct {
	liked         []models.Song
	recent        []models.Song
	playlists     []models.LocalPlaylist
	library       models.LibraryBundle
	announcements []models.Announcement
	err           error
}

type syncStateMsg struct {
	state models.SyncState
	ok    bool
}

type syncDoneMsg struct {
	err error
}

type syncInfo struct {
	lastSync time.Time
	hasSync  bool
	reports  []models.PassReport
}

type actionDoneMsg struct {
	status string
	err    error
}
