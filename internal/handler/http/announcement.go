// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/hymusic-sync/internal/utils"
	"github.com/MKhiriev/hymusic-sync/models"
)

func (h *Handler) activeAnnouncements(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.AnnouncementService.Active(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.activeAnnouncements", err, "Failed to get announcements")
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) allAnnouncements(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.AnnouncementService.All(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.allAnnouncements", err, "Failed to get announcements")
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) createAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req models.AnnouncementCreate
	if !decodeBody(w, r, "*Handler.createAnnouncement", &req) {
		return
	}

	item, err := h.services.AnnouncementService.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.createAnnouncement", err, "Failed to create announcement")
		return
	}

	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) updateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req models.AnnouncementUpdate
	if !decodeBody(w, r, "*Handler.updateAnnouncement", &req) {
		return
	}

	item, err := h.services.AnnouncementService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.updateAnnouncement", err, "Failed to update announcement")
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) deleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AnnouncementService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, "*Handler.deleteAnnouncement", err, "Failed to delete announcement")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Announcement deleted"}, http.StatusOK)
}
