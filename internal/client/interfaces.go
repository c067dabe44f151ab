// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/hymusic-sync/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end the application drives.
type UI interface {
	// LoginFlow blocks until the user has logged in or quit.
	LoginFlow(ctx context.Context) (models.UserInfo, error)
	// MainLoop blocks until the user quits. logout reports whether the user
	// asked to end the session.
	MainLoop(ctx context.Context, user models.UserInfo) (logout bool, err error)
}
