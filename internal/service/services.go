// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/hymusic-sync/internal/config"
	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/store"
)

// Services groups the services of the sync server.
type Services struct {
	AuthService         AuthService
	SyncService         SyncService
	AdminService        AdminService
	AnnouncementService AnnouncementService
	AppInfoService      AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, storages.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	syncSvc := NewSyncValidationService().Wrap(NewSyncService(storages.SyncRepository, logger))

	return &Services{
		AuthService:         NewAuthService(storages.UserRepository, storages.SystemSettingsRepository, cfg.App, logger),
		SyncService:         syncSvc,
		AdminService:        NewAdminService(storages.UserRepository, storages.SyncRepository, storages.SystemSettingsRepository, logger),
		AnnouncementService: NewAnnouncementService(storages.AnnouncementRepository, logger),
		AppInfoService:      appInfo,
	}, nil
}
