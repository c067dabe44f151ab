// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.status)
		r.Get("/health", h.health)
		r.Get("/api/version", h.getServerVersion)

		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/announcements", h.activeAnnouncements)
	})

	// routes for any authenticated user
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)
		r.Put("/api/auth/me", h.updateProfile)

		r.Route("/api/sync", func(r chi.Router) {
			r.Get("/all", h.syncAll)
			r.Post("/favorites", h.syncFavorites)
			r.Delete("/favorites/{videoId}", h.deleteFavorite)
			r.Post("/playlists", h.syncPlaylists)
			r.Post("/history", h.syncHistory)
			r.Post("/settings", h.syncSettings)
			r.Post("/library", h.syncLibrary)
		})
	})

	// admin routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.adminOnly)

		r.Route("/api/admin", func(r chi.Router) {
			r.Get("/users", h.listUsers)
			r.Get("/users/{id}", h.getUser)
			r.Delete("/users/{id}", h.deleteUser)
			r.Post("/users/{id}/ban", h.banUser)
			r.Post("/users/{id}/admin", h.setAdmin)
			r.Get("/stats", h.stats)
			r.Get("/system", h.systemSettings)
			r.Put("/system", h.updateSystemSettings)
		})

		r.Get("/api/announcements/all", h.allAnnouncements)
		r.Post("/api/announcements", h.createAnnouncement)
		r.Put("/api/announcements/{id}", h.updateAnnouncement)
		r.Delete("/api/announcements/{id}", h.deleteAnnouncement)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
