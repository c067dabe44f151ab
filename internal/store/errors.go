// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user with the same email is
	// already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("user was not found")

	// ErrFavoriteNotFound is returned when a favorite to delete does not
	// exist for the user.
	ErrFavoriteNotFound = errors.New("favorite was not found")

	// ErrAnnouncementNotFound is returned when an announcement id is unknown.
	ErrAnnouncementNotFound = errors.New("announcement was not found")

	// ErrSettingsNotFound is returned when the user has no settings row.
	ErrSettingsNotFound = errors.New("settings were not found")

	// ErrSongNotFound is returned by the Local Store when a video id is unknown.
	ErrSongNotFound = errors.New("song was not found")

	// ErrNoSession is returned when no session is persisted locally.
	ErrNoSession = errors.New("no local session")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrPreparingStatement   = errors.New("failed to prepare statement")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
	ErrEncodingColumn       = errors.New("failed to encode column value")
	ErrDecodingColumn       = errors.New("failed to decode column value")
)
