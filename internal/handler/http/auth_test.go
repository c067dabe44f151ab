// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/hymusic-sync/internal/service"
	"github.com/MKhiriev/hymusic-sync/internal/store"
	"github.com/MKhiriev/hymusic-sync/models"
)

func newAuthHandler(auth *stubAuthService) *Handler {
	return newTestHandler(&service.Services{AuthService: auth})
}

// ── register ─────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	var got models.RegisterRequest
	h := newAuthHandler(&stubAuthService{
		registerFn: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
			got = req
			return models.User{ID: "u1", Email: req.Email}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		jsonBody(t, models.RegisterRequest{Email: "a@b.co", Password: "Passw0rd!"}))
	rec := httptest.NewRecorder()
	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "a@b.co", got.Email)

	resp := decodeJSON[models.AuthResponse](t, rec)
	assert.Equal(t, "Registration successful", resp.Message)
	assert.Equal(t, "signed.u1", resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "u1", resp.User.ID)
	assert.Equal(t, "Bearer signed.u1", rec.Header().Get("Authorization"))
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"missing fields", fmt.Errorf("%w: x", service.ErrEmailAndPasswordRequired), http.StatusBadRequest, "Email and password are required"},
		{"bad email", service.ErrInvalidEmail, http.StatusBadRequest, "Invalid email format"},
		{"weak password", service.ErrWeakPassword, http.StatusBadRequest, passwordPolicyMessage},
		{"duplicate email", fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists), http.StatusConflict, "Email already registered"},
		{"registration disabled", service.ErrRegistrationDisabled, http.StatusForbidden, "Registration is disabled"},
		{"unexpected", errors.New("db down"), http.StatusInternalServerError, "Registration failed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newAuthHandler(&stubAuthService{
				registerFn: func(context.Context, models.RegisterRequest) (models.User, error) {
					return models.User{}, tc.err
				},
			})

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
				jsonBody(t, models.RegisterRequest{Email: "a@b.co", Password: "x"}))
			rec := httptest.NewRecorder()
			h.register(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantError, errorMessage(t, rec))
		})
	}
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid JSON was passed", errorMessage(t, rec))
}

func TestRegister_TokenFailure(t *testing.T) {
	h := newAuthHandler(&stubAuthService{
		registerFn: func(context.Context, models.RegisterRequest) (models.User, error) {
			return models.User{ID: "u1"}, nil
		},
		createTokenFn: func(context.Context, models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		jsonBody(t, models.RegisterRequest{Email: "a@b.co", Password: "Passw0rd!"}))
	rec := httptest.NewRecorder()
	h.register(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("Authorization"))
}

// ── login ────────────────────────────────────────────────────────────────────

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"success", nil, http.StatusOK, ""},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"banned", service.ErrUserBanned, http.StatusForbidden, "User is banned"},
		{"missing fields", service.ErrEmailAndPasswordRequired, http.StatusBadRequest, "Email and password are required"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Login failed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newAuthHandler(&stubAuthService{
				loginFn: func(_ context.Context, req models.LoginRequest) (models.User, error) {
					if tc.err != nil {
						return models.User{}, tc.err
					}
					return models.User{ID: "u1", Email: req.Email}, nil
				},
			})

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
				jsonBody(t, models.LoginRequest{Email: "a@b.co", Password: "Passw0rd!"}))
			rec := httptest.NewRecorder()
			h.login(rec, req)

			require.Equal(t, tc.wantStatus, rec.Code)
			if tc.err != nil {
				assert.Equal(t, tc.wantError, errorMessage(t, rec))
				return
			}
			resp := decodeJSON[models.AuthResponse](t, rec)
			assert.Equal(t, "Login successful", resp.Message)
			assert.Equal(t, "signed.u1", resp.Token)
		})
	}
}

// ── me ───────────────────────────────────────────────────────────────────────

func TestMe(t *testing.T) {
	h := newAuthHandler(&stubAuthService{})

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil), testUser)
	rec := httptest.NewRecorder()
	h.me(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[models.MeResponse](t, rec)
	assert.Equal(t, testUser.Email, resp.User.Email)
}

func TestMe_NoUserInContext(t *testing.T) {
	h := newAuthHandler(&stubAuthService{})

	rec := httptest.NewRecorder()
	h.me(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUpdateProfile(t *testing.T) {
	nickname := "ally"
	h := newAuthHandler(&stubAuthService{
		updateProfileFn: func(_ context.Context, userID string, update models.UpdateProfileRequest) (models.User, error) {
			assert.Equal(t, testUser.ID, userID)
			require.NotNil(t, update.Nickname)
			user := testUser
			user.Nickname = update.Nickname
			return user, nil
		},
	})

	req := asUser(httptest.NewRequest(http.MethodPut, "/api/auth/me",
		jsonBody(t, models.UpdateProfileRequest{Nickname: &nickname})), testUser)
	rec := httptest.NewRecorder()
	h.updateProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[models.MeResponse](t, rec)
	assert.Equal(t, "Profile updated", resp.Message)
	require.NotNil(t, resp.User.Nickname)
	assert.Equal(t, "ally", *resp.User.Nickname)
}

func TestUpdateProfile_UserGone(t *testing.T) {
	h := newAuthHandler(&stubAuthService{
		updateProfileFn: func(context.Context, string, models.UpdateProfileRequest) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	})

	req := asUser(httptest.NewRequest(http.MethodPut, "/api/auth/me", strings.NewReader("{}")), testUser)
	rec := httptest.NewRecorder()
	h.updateProfile(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", errorMessage(t, rec))
}
