// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/hymusic-sync/internal/config"
	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/utils"
	"github.com/MKhiriev/hymusic-sync/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	tokens TokenSource

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates cfg.HTTPAddress and installs a response hook
// that reports HTTP 403 on authenticated requests to tokens.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, tokens TokenSource, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	h := &httpServerAdapter{
		client: utils.NewJSONHTTPClient(baseURL, cfg.RequestTimeout),
		tokens: tokens,
		logger: log,
	}
	h.client.OnAfterResponse(h.onForbidden)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// onForbidden drops the session when the server refuses an authenticated
// request with 403. Unauthenticated requests (login of a banned account) are
// left to the caller.
func (h *httpServerAdapter) onForbidden(_ *resty.Client, resp *resty.Response) error {
	if resp.StatusCode() != http.StatusForbidden || resp.Request.Header.Get("Authorization") == "" {
		return nil
	}

	reason := fmt.Errorf("%w: %s", ErrForbidden, errorMessage(resp))
	h.logger.Warn().
		Str("func", "httpServerAdapter.onForbidden").
		Str("url", resp.Request.URL).
		Msg("server rejected session, forcing logout")
	h.tokens.ForceLogout(resp.Request.Context(), reason)

	return nil
}

// Register implements [ServerAdapter]. It POSTs req to /api/auth/register and
// returns the token and user issued for the new account.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&auth).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: register request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	return validAuth(auth)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// /api/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&auth).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: login request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	return validAuth(auth)
}

func validAuth(auth models.AuthResponse) (models.AuthResponse, error) {
	if strings.TrimSpace(auth.Token) == "" || auth.User == nil {
		return models.AuthResponse{}, fmt.Errorf("%w: auth response without token or user", ErrDecodingResponse)
	}
	return auth, nil
}

// Me implements [ServerAdapter].
func (h *httpServerAdapter) Me(ctx context.Context) (models.UserInfo, error) {
	var me models.MeResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.UserInfo{}, err
	}

	resp, err := req.SetResult(&me).Get("/api/auth/me")
	if err != nil {
		return models.UserInfo{}, fmt.Errorf("%w: me request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserInfo{}, err
	}

	return me.User, nil
}

// FetchAll implements [ServerAdapter]. It GETs /api/sync/all.
func (h *httpServerAdapter) FetchAll(ctx context.Context) (models.SyncAllResponse, error) {
	var snapshot models.SyncAllResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.SyncAllResponse{}, err
	}

	resp, err := req.SetResult(&snapshot).Get("/api/sync/all")
	if err != nil {
		return models.SyncAllResponse{}, fmt.Errorf("%w: fetch all request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncAllResponse{}, err
	}

	return snapshot, nil
}

// UploadFavorites implements [ServerAdapter]. An empty slice is sent as an
// empty array so the server clears the user's favorites.
func (h *httpServerAdapter) UploadFavorites(ctx context.Context, favorites []models.FavoriteItem) (int, error) {
	if favorites == nil {
		favorites = []models.FavoriteItem{}
	}
	return h.postCount(ctx, "/api/sync/favorites", models.FavoritesRequest{Favorites: favorites})
}

// DeleteFavorite implements [ServerAdapter].
func (h *httpServerAdapter) DeleteFavorite(ctx context.Context, videoID string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("videoId", videoID).
		Delete("/api/sync/favorites/{videoId}")
	if err != nil {
		return fmt.Errorf("%w: delete favorite request: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// UploadPlaylists implements [ServerAdapter].
func (h *httpServerAdapter) UploadPlaylists(ctx context.Context, playlists []models.PlaylistItem) (int, error) {
	if playlists == nil {
		playlists = []models.PlaylistItem{}
	}
	return h.postCount(ctx, "/api/sync/playlists", models.PlaylistsRequest{Playlists: playlists})
}

// UploadHistory implements [ServerAdapter].
func (h *httpServerAdapter) UploadHistory(ctx context.Context, history []models.HistoryItem) (int, error) {
	if history == nil {
		history = []models.HistoryItem{}
	}
	return h.postCount(ctx, "/api/sync/history", models.HistoryRequest{History: history})
}

// UploadSettings implements [ServerAdapter].
func (h *httpServerAdapter) UploadSettings(ctx context.Context, settings models.SettingsBundle) error {
	_, err := h.postCount(ctx, "/api/sync/settings", models.SettingsRequest{Settings: settings})
	return err
}

// UploadLibrary implements [ServerAdapter]. The bundle is the request body.
func (h *httpServerAdapter) UploadLibrary(ctx context.Context, library models.LibraryBundle) (int, error) {
	return h.postCount(ctx, "/api/sync/library", library)
}

// Announcements implements [ServerAdapter]. The route is public, the token is
// not sent.
func (h *httpServerAdapter) Announcements(ctx context.Context) ([]models.Announcement, error) {
	var announcements []models.Announcement

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&announcements).
		Get("/api/announcements")
	if err != nil {
		return nil, fmt.Errorf("%w: announcements request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return announcements, nil
}

// postCount POSTs body to path and returns the count echoed by the server.
// A response without a count reports 0.
func (h *httpServerAdapter) postCount(ctx context.Context, path string, body any) (int, error) {
	var result models.MessageResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return 0, err
	}

	resp, err := req.
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return 0, fmt.Errorf("%w: POST %s: %w", ErrTransport, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	if result.Count == nil {
		return 0, nil
	}
	return *result.Count, nil
}

// authedRequest returns a request carrying the session's bearer token, or
// [ErrNotAuthenticated] when there is none.
func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := strings.TrimSpace(h.tokens.Token())
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

// IsAuthFailure reports whether err means the session is no longer usable.
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden) || errors.Is(err, ErrNotAuthenticated)
}
