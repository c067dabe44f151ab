// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/utils"
	"github.com/MKhiriev/hymusic-sync/models"
)

func (h *Handler) syncAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.userID(w, r, "*Handler.syncAll")
	if !ok {
		return
	}

	snapshot, err := h.services.SyncService.Snapshot(ctx, userID)
	if err != nil {
		writeServiceError(w, r, "*Handler.syncAll", err, "Failed to fetch sync data")
		return
	}

	utils.WriteJSON(w, snapshot, http.StatusOK)
}

func (h *Handler) syncFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "*Handler.syncFavorites")
	if !ok {
		return
	}

	var req models.FavoritesRequest
	if !decodeBody(w, r, "*Handler.syncFavorites", &req) {
		return
	}

	count, err := h.services.SyncService.ReplaceFavorites(r.Context(), userID, req.Favorites)
	if err != nil {
		writeServiceError(w, r, "*Handler.syncFavorites", err, "Failed to sync favorites")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Favorites synced", Count: &count}, http.StatusOK)
}

func (h *Handler) deleteFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "*Handler.deleteFavorite")
	if !ok {
		return
	}

	videoID := chi.URLParam(r, "videoId")
	if err := h.services.SyncService.DeleteFavorite(r.Context(), userID, videoID); err != nil {
		writeServiceError(w, r, "*Handler.deleteFavorite", err, "Failed to remove favorite")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Favorite removed"}, http.StatusOK)
}

func (h *Handler) syncPlaylists(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "*Handler.syncPlaylists")
	if !ok {
		return
	}

	var req models.PlaylistsRequest
	if !decodeBody(w, r, "*Handler.syncPlaylists", &req) {
		return
	}

	count, err := h.services.SyncService.ReplacePlaylists(r.Context(), userID, req.Playlists)
	if err != nil {
		writeServiceError(w, r, "*Handler.syncPlaylists", err, "Failed to sync playlists")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Playlists synced", Count: &count}, http.StatusOK)
}

func (h *Handler) syncHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "*Handler.syncHistory")
	if !ok {
		return
	}

	var req models.HistoryRequest
	if !decodeBody(w, r, "*Handler.syncHistory", &req) {
		return
	}

	count, err := h.services.SyncService.AppendHistory(r.Context(), userID, req.History)
	if err != nil {
		writeServiceError(w, r, "*Handler.syncHistory", err, "Failed to sync history")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "History synced", Count: &count}, http.StatusOK)
}

func (h *Handler) syncSettings(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "*Handler.syncSettings")
	if !ok {
		return
	}

	var req models.SettingsRequest
	if !decodeBody(w, r, "*Handler.syncSettings", &req) {
		return
	}

	if err := h.services.SyncService.UpsertSettings(r.Context(), userID, req.Settings); err != nil {
		writeServiceError(w, r, "*Handler.syncSettings", err, "Failed to sync settings")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Settings synced"}, http.StatusOK)
}

func (h *Handler) syncLibrary(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r, "*Handler.syncLibrary")
	if !ok {
		return
	}

	var req models.LibraryBundle
	if !decodeBody(w, r, "*Handler.syncLibrary", &req) {
		return
	}

	count, err := h.services.SyncService.ReplaceLibrary(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, r, "*Handler.syncLibrary", err, "Failed to sync library")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Library synced", Count: &count}, http.StatusOK)
}

// userID reads the authenticated user id placed in the context by auth.
func (h *Handler) userID(w http.ResponseWriter, r *http.Request, funcName string) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Str("func", funcName).Msg("no user ID was given")
		utils.WriteError(w, "No user ID was given", http.StatusUnauthorized)
	}
	return userID, ok
}

// decodeBody decodes the JSON request body into dst and answers 400 when it
// cannot.
func decodeBody(w http.ResponseWriter, r *http.Request, funcName string, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return false
	}
	return true
}
