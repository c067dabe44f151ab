// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/hymusic-sync/internal/config"
	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/store"
	"github.com/MKhiriev/hymusic-sync/models"
)

const (
	StatusOK        = "ok"
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"

	// RunningMessage is the message of the root endpoint.
	RunningMessage = "HYMusic API is running"
)

type appInfoService struct {
	appVersion string
	db         store.Pinger

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, db store.Pinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		db:         db,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Status(ctx context.Context) models.StatusResponse {
	return models.StatusResponse{Status: StatusOK, Message: RunningMessage, Version: s.appVersion}
}

// Health reports healthy when the database answers a ping.
func (s *appInfoService) Health(ctx context.Context) (models.StatusResponse, error) {
	if err := s.db.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "appInfoService.Health").Msg("database ping failed")
		return models.StatusResponse{Status: StatusUnhealthy}, fmt.Errorf("ping database: %w", err)
	}
	return models.StatusResponse{Status: StatusHealthy}, nil
}
