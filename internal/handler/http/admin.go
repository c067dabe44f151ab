// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/utils"
	"github.com/MKhiriev/hymusic-sync/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	query, err := parseUserListQuery(r)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listUsers").Send()
		utils.WriteError(w, "Invalid page or limit", http.StatusBadRequest)
		return
	}

	resp, err := h.services.AdminService.ListUsers(r.Context(), query)
	if err != nil {
		writeServiceError(w, r, "*Handler.listUsers", err, "Failed to get users")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// parseUserListQuery reads page, limit and search from the query string.
// Missing values are left zero for the service to default.
func parseUserListQuery(r *http.Request) (models.UserListQuery, error) {
	values := r.URL.Query()
	query := models.UserListQuery{Search: values.Get("search")}

	for _, p := range []struct {
		key string
		dst *int
	}{{"page", &query.Page}, {"limit", &query.Limit}} {
		raw := values.Get(p.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return models.UserListQuery{}, errInvalidPageQuery
		}
		*p.dst = n
	}

	return query, nil
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	detail, err := h.services.AdminService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "*Handler.getUser", err, "Failed to get user")
		return
	}

	utils.WriteJSON(w, detail, http.StatusOK)
}

func (h *Handler) banUser(w http.ResponseWriter, r *http.Request) {
	var req models.BanRequest
	if !decodeBody(w, r, "*Handler.banUser", &req) {
		return
	}

	user, err := h.services.AdminService.SetBanned(r.Context(), chi.URLParam(r, "id"), req.Ban)
	if err != nil {
		writeServiceError(w, r, "*Handler.banUser", err, "Failed to update user")
		return
	}

	message := "User unbanned"
	if req.Ban {
		message = "User banned"
	}
	utils.WriteJSON(w, models.AdminUserResponse{Message: message, User: user}, http.StatusOK)
}

func (h *Handler) setAdmin(w http.ResponseWriter, r *http.Request) {
	var req models.AdminFlagRequest
	if !decodeBody(w, r, "*Handler.setAdmin", &req) {
		return
	}

	user, err := h.services.AdminService.SetAdmin(r.Context(), chi.URLParam(r, "id"), req.IsAdmin)
	if err != nil {
		writeServiceError(w, r, "*Handler.setAdmin", err, "Failed to update user")
		return
	}

	message := "Admin removed"
	if req.IsAdmin {
		message = "User is now admin"
	}
	utils.WriteJSON(w, models.AdminUserResponse{Message: message, User: user}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.userID(w, r, "*Handler.deleteUser")
	if !ok {
		return
	}

	if err := h.services.AdminService.DeleteUser(r.Context(), actorID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, "*Handler.deleteUser", err, "Failed to delete user")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "User deleted"}, http.StatusOK)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.AdminService.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.stats", err, "Failed to get stats")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) systemSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.services.AdminService.SystemSettings(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.systemSettings", err, "Failed to get system settings")
		return
	}

	utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) updateSystemSettings(w http.ResponseWriter, r *http.Request) {
	var req models.SystemSettingsUpdate
	if !decodeBody(w, r, "*Handler.updateSystemSettings", &req) {
		return
	}

	settings, err := h.services.AdminService.UpdateSystemSettings(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.updateSystemSettings", err, "Failed to update system settings")
		return
	}

	utils.WriteJSON(w, settings, http.StatusOK)
}
