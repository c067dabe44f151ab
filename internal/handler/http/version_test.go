// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/hymusic-sync/internal/service"
	"github.com/MKhiriev/hymusic-sync/models"
)

func TestGetServerVersion(t *testing.T) {
	h := newTestHandler(&service.Services{AppInfoService: &stubAppInfoService{version: "v2.0.0-beta+build.42"}})

	rec := httptest.NewRecorder()
	h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v2.0.0-beta+build.42", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestStatus(t *testing.T) {
	h := newTestHandler(&service.Services{AppInfoService: &stubAppInfoService{version: "1.0.0"}})

	rec := httptest.NewRecorder()
	h.status(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","message":"HYMusic API is running","version":"1.0.0"}`, rec.Body.String())
}

func TestHealth_DatabaseDown(t *testing.T) {
	h := newTestHandler(&service.Services{AppInfoService: &stubAppInfoService{healthErr: errors.New("ping")}})

	rec := httptest.NewRecorder()
	h.health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unhealthy", decodeJSON[models.StatusResponse](t, rec).Status)
}
