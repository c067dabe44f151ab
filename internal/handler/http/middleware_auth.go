// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/service"
	"github.com/MKhiriev/hymusic-sync/internal/store"
	"github.com/MKhiriev/hymusic-sync/internal/utils"
)

// auth is an HTTP middleware that enforces bearer JWT authentication.
//
// The token is resolved to its user via [service.AuthService.Authenticate]
// and the user is stored in the request context with [utils.WithUser].
// Requests are rejected with 401 when the header or token is missing or
// invalid, or when the user no longer exists. Banned users get 403.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, "No token provided", http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUserBanned):
				log.Warn().Str("user_id", user.ID).Msg("banned user rejected")
				utils.WriteError(w, "User is banned", http.StatusForbidden)
			case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
				log.Err(err).Msg("token expired or invalid")
				utils.WriteError(w, "Invalid token", http.StatusUnauthorized)
			case errors.Is(err, store.ErrUserNotFound):
				log.Err(err).Msg("token subject does not exist")
				utils.WriteError(w, "User not found", http.StatusUnauthorized)
			default:
				log.Err(err).Msg("error occurred during authentication")
				utils.WriteError(w, "Authentication failed", http.StatusInternalServerError)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

// adminOnly lets through users with the admin flag. It must run after auth.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.GetUserFromContext(r.Context())
		if !ok || !user.IsAdmin {
			logger.FromRequest(r).Warn().Str("user_id", user.ID).Msg("admin access denied")
			utils.WriteError(w, "Admin access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// getTokenFromAuthHeader extracts the token from "Bearer <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
