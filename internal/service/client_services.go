// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/hymusic-sync/internal/adapter"
	"github.com/MKhiriev/hymusic-sync/internal/config"
	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/store"
)

// ClientServices groups the services of the terminal client.
type ClientServices struct {
	AuthService    ClientAuthService
	LibraryService ClientLibraryService
	SyncService    ClientSyncService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, sess SessionManager, cfg config.ClientWorkers, log *logger.Logger) *ClientServices {
	syncSvc := NewClientSyncService(storages, serverAdapter, sess, cfg, log)

	return &ClientServices{
		AuthService:    NewClientAuthService(serverAdapter, sess, syncSvc, log),
		LibraryService: NewClientLibraryService(storages, serverAdapter, sess, syncSvc, log),
		SyncService:    syncSvc,
	}
}
