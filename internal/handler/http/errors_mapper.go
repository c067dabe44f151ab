// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/service"
	"github.com/MKhiriev/hymusic-sync/internal/store"
	"github.com/MKhiriev/hymusic-sync/internal/utils"
)

// passwordPolicyMessage describes the password policy to the caller.
const passwordPolicyMessage = "Password must be at least 8 characters and contain uppercase, lowercase, number, and special character (@$!%*?&)"

type errorReply struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorReply{
	service.ErrInvalidDataProvided:      {http.StatusBadRequest, "Invalid data provided"},
	service.ErrEmailAndPasswordRequired: {http.StatusBadRequest, "Email and password are required"},
	service.ErrInvalidEmail:             {http.StatusBadRequest, "Invalid email format"},
	service.ErrWeakPassword:             {http.StatusBadRequest, passwordPolicyMessage},
	service.ErrInvalidCredentials:       {http.StatusUnauthorized, "Invalid credentials"},
	service.ErrTokenIsExpiredOrInvalid:  {http.StatusUnauthorized, "Invalid token"},
	service.ErrUserBanned:               {http.StatusForbidden, "User is banned"},
	service.ErrRegistrationDisabled:     {http.StatusForbidden, "Registration is disabled"},
	service.ErrCannotDeleteSelf:         {http.StatusBadRequest, "Cannot delete yourself"},
	service.ErrTitleAndContentRequired:  {http.StatusBadRequest, "Title and content are required"},
	service.ErrEmptyUpdate:              {http.StatusBadRequest, "Nothing to update"},

	store.ErrEmailAlreadyExists:   {http.StatusConflict, "Email already registered"},
	store.ErrUserNotFound:         {http.StatusNotFound, "User not found"},
	store.ErrFavoriteNotFound:     {http.StatusNotFound, "Favorite not found"},
	store.ErrAnnouncementNotFound: {http.StatusNotFound, "Announcement not found"},
}

// statusFromError returns the status and message for a known error. Unknown
// errors map to 500 with the fallback message.
func statusFromError(err error, fallback string) (int, string) {
	for target, reply := range errorStatusMap {
		if errors.Is(err, target) {
			return reply.status, reply.message
		}
	}
	return http.StatusInternalServerError, fallback
}

// writeServiceError logs err and writes the {"error": ...} body chosen by
// statusFromError.
func writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error, fallback string) {
	status, message := statusFromError(err, fallback)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg(message)

	utils.WriteError(w, message, status)
}
