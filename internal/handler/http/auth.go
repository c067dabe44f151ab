// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/utils"
	"github.com/MKhiriev/hymusic-sync/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeServiceError(w, r, "*Handler.register", err, "Registration failed")
		return
	}

	h.writeAuthResponse(w, r, user, "Registration successful", http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeServiceError(w, r, "*Handler.login", err, "Login failed")
		return
	}

	log.Debug().Str("user_id", user.ID).Msg("user successfully logged in")
	h.writeAuthResponse(w, r, user, "Login successful", http.StatusOK)
}

// writeAuthResponse issues a token for user and writes the AuthResponse.
// The token also travels in the Authorization header.
func (h *Handler) writeAuthResponse(w http.ResponseWriter, r *http.Request, user models.User, message string, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, "*Handler.writeAuthResponse", err, "Token creation failed")
		return
	}

	info := user.Info()
	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, models.AuthResponse{
		Message: message,
		Token:   token.SignedString,
		User:    &info,
	}, status)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Str("func", "*Handler.me").Msg("no user in context")
		utils.WriteError(w, "Failed to get user info", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MeResponse{User: user.Info()}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.updateProfile").Msg("no user ID in context")
		utils.WriteError(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateProfile").Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.UpdateProfile(ctx, userID, req)
	if err != nil {
		writeServiceError(w, r, "*Handler.updateProfile", err, "Failed to update profile")
		return
	}

	utils.WriteJSON(w, models.MeResponse{Message: "Profile updated", User: user.Info()}, http.StatusOK)
}
