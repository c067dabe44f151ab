// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/hymusic-sync/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.Status(r.Context()), http.StatusOK)
}

// health answers 503 when the database does not respond.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.AppInfoService.Health(r.Context())
	if err != nil {
		utils.WriteJSON(w, resp, http.StatusServiceUnavailable)
		return
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}
