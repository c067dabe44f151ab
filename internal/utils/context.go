// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the sync server
// and the terminal client: typed context keys, JSON response writing, the
// HTTP client, JWT generation and validation, and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/hymusic-sync/models"
)

// contextKey is a private type for context keys.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey is the key used to store the authenticated user id.
	UserIDCtxKey = contextKey("userID")

	// UserCtxKey is the key used to store the authenticated user record.
	UserCtxKey = contextKey("user")
)

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false when the value is missing, empty, or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// WithUser stores the authenticated user and its id in ctx.
func WithUser(ctx context.Context, user models.User) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, user.ID)
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext retrieves the user stored by [WithUser].
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}
