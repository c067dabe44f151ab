// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided      = errors.New("invalid data provided")
	ErrEmailAndPasswordRequired = errors.New("email and password are required")
	ErrInvalidEmail             = errors.New("invalid email format")
	ErrWeakPassword             = errors.New("password does not satisfy the policy")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrUserBanned               = errors.New("user is banned")
	ErrRegistrationDisabled     = errors.New("registration is disabled")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrHashingPassword         = errors.New("failed to hash password")

	ErrCannotDeleteSelf        = errors.New("cannot delete yourself")
	ErrTitleAndContentRequired = errors.New("title and content are required")
	ErrEmptyUpdate             = errors.New("nothing to update")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// client side
var (
	ErrNotLoggedIn       = errors.New("not logged in")
	ErrSessionExpired    = errors.New("session expired")
	ErrServerUnavailable = errors.New("server unavailable")
	ErrSongNotInStore    = errors.New("song is not in the local store")
	ErrPlaylistExists    = errors.New("playlist with this title already exists")
)
