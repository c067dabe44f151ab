// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/hymusic-sync/internal/adapter"
	"github.com/MKhiriev/hymusic-sync/internal/app"
	"github.com/MKhiriev/hymusic-sync/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	var mapped error
	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgEmailAndPasswordRequired:
			mapped = ErrEmailAndPasswordRequired
		case app.MsgInvalidEmail:
			mapped = ErrInvalidEmail
		case app.MsgWeakPassword:
			mapped = ErrWeakPassword
		default:
			mapped = ErrInvalidDataProvided
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidCredentials:
			mapped = ErrInvalidCredentials
		default:
			mapped = ErrSessionExpired
		}

	case errors.Is(err, adapter.ErrForbidden):
		switch msg {
		case app.MsgRegistrationDisabled:
			mapped = ErrRegistrationDisabled
		default:
			mapped = ErrUserBanned
		}

	case errors.Is(err, adapter.ErrConflict):
		mapped = store.ErrEmailAlreadyExists

	case errors.Is(err, adapter.ErrNotAuthenticated):
		mapped = ErrNotLoggedIn

	case errors.Is(err, adapter.ErrTransport),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrInternalServerError):
		mapped = ErrServerUnavailable
	}

	if mapped == nil {
		return err
	}
	return fmt.Errorf("%w: %w", mapped, err)
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

// failureReason is the SyncState message for a failed pass.
func failureReason(err error, fallback string) string {
	switch {
	case errors.Is(err, ErrUserBanned):
		return app.MsgUserIsBanned
	case errors.Is(err, ErrSessionExpired):
		return app.MsgSessionExpired
	case errors.Is(err, ErrServerUnavailable):
		return app.MsgServerUnavailable
	case errors.Is(err, ErrNotLoggedIn):
		return app.MsgNotLoggedIn
	}
	return fallback
}
