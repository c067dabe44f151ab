// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/hymusic-sync/internal/adapter"
	"github.com/MKhiriev/hymusic-sync/internal/app"
	"github.com/MKhiriev/hymusic-sync/internal/config"
	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/session"
	"github.com/MKhiriev/hymusic-sync/internal/store"
	"github.com/MKhiriev/hymusic-sync/internal/utils"
	"github.com/MKhiriev/hymusic-sync/internal/workers"
	"github.com/MKhiriev/hymusic-sync/models"
)

type clientSyncService struct {
	songs     store.SongRepository
	playlists store.LocalPlaylistRepository
	library   store.LibraryRepository
	settings  store.SettingsRepository

	adapter adapter.ServerAdapter
	session SessionState

	cfg    config.ClientWorkers
	logger *logger.Logger
	now    func() time.Time

	// passMu lets one pass run at a time.
	passMu sync.Mutex

	stateMu     sync.RWMutex
	state       models.SyncState
	lastSync    time.Time
	lastReports []models.PassReport
	states      *utils.Broadcaster[models.SyncState]

	periodic  workers.Runner
	mutations workers.Runner

	pendingMu sync.Mutex
	pending   map[models.Collection]struct{}
	flush     chan struct{}
	limiter   *rate.Limiter
}

func NewClientSyncService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, sess SessionState, cfg config.ClientWorkers, log *logger.Logger) ClientSyncService {
	return &clientSyncService{
		songs:     storages.SongRepository,
		playlists: storages.PlaylistRepository,
		library:   storages.LibraryRepository,
		settings:  storages.SettingsRepository,
		adapter:   serverAdapter,
		session:   sess,
		cfg:       cfg,
		logger:    log,
		now:       time.Now,
		state:     models.SyncState{Status: models.SyncIdle},
		states:    utils.NewBroadcaster[models.SyncState](8),
		pending:   make(map[models.Collection]struct{}),
		flush:     make(chan struct{}, 1),
		limiter:   rate.NewLimiter(rate.Every(cfg.MutationUploadInterval), 1),
	}
}

func (s *clientSyncService) TriggerFullSync(ctx context.Context) error {
	return s.explicitPass(ctx, "TriggerFullSync", app.MsgFullSyncCompleted, app.MsgSyncFailed, func(ctx context.Context) ([]models.PassReport, error) {
		down, err := s.downloadMerge(ctx)
		if err != nil {
			return []models.PassReport{down}, err
		}
		up := s.uploadOverwrite(ctx, models.Collections...)
		return []models.PassReport{down, up}, up.Err()
	})
}

func (s *clientSyncService) TriggerUploadOnly(ctx context.Context) error {
	return s.explicitPass(ctx, "TriggerUploadOnly", app.MsgUploadCompleted, app.MsgUploadFailed, func(ctx context.Context) ([]models.PassReport, error) {
		up := s.uploadOverwrite(ctx, models.Collections...)
		return []models.PassReport{up}, up.Err()
	})
}

func (s *clientSyncService) TriggerDownloadOnly(ctx context.Context) error {
	return s.explicitPass(ctx, "TriggerDownloadOnly", app.MsgDownloadCompleted, app.MsgDownloadFailed, func(ctx context.Context) ([]models.PassReport, error) {
		down, err := s.downloadMerge(ctx)
		return []models.PassReport{down}, err
	})
}

func (s *clientSyncService) SyncNow(ctx context.Context) error {
	return s.TriggerFullSync(ctx)
}

func (s *clientSyncService) OnLoginSuccess(ctx context.Context) error {
	if !s.session.IsLoggedIn() {
		return nil
	}
	s.StartPeriodicSync(s.cfg.SyncInterval)
	return s.TriggerFullSync(ctx)
}

// explicitPass runs pass under the pass lock and publishes its progress.
func (s *clientSyncService) explicitPass(
	ctx context.Context,
	funcName, successMsg, failureMsg string,
	pass func(ctx context.Context) ([]models.PassReport, error),
) error {
	if !s.session.IsLoggedIn() {
		return nil
	}

	s.passMu.Lock()
	defer s.passMu.Unlock()

	log := logger.FromContext(ctx)
	s.setState(models.SyncState{Status: models.SyncSyncing})

	reports, err := pass(ctx)

	s.stateMu.Lock()
	s.lastReports = reports
	s.stateMu.Unlock()

	if err != nil {
		reason := failureReason(err, failureMsg)
		log.Err(err).Str("func", funcName).Str("reason", reason).Msg("sync pass failed")
		s.setState(models.SyncState{Status: models.SyncFailed, Message: reason})
		return err
	}

	s.stateMu.Lock()
	s.lastSync = s.now()
	s.stateMu.Unlock()

	log.Info().Str("func", funcName).Msg(successMsg)
	s.setState(models.SyncState{Status: models.SyncSuccess, Message: successMsg})
	return nil
}

func (s *clientSyncService) setState(state models.SyncState) {
	s.stateMu.Lock()
	s.state = state
	s.stateMu.Unlock()

	s.states.Publish(state)
}

func (s *clientSyncService) State() models.SyncState {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state
}

func (s *clientSyncService) SubscribeState() (<-chan models.SyncState, func()) {
	return s.states.Subscribe()
}

func (s *clientSyncService) LastSyncTime() (time.Time, bool) {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.lastSync, !s.lastSync.IsZero()
}

func (s *clientSyncService) LastReports() []models.PassReport {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return append([]models.PassReport(nil), s.lastReports...)
}

// Run implements [workers.Worker].
func (s *clientSyncService) Run(ctx context.Context) {
	changes, unsubscribe := s.session.Subscribe()
	defer unsubscribe()
	s.watchSession(ctx, changes)
}

func (s *clientSyncService) watchSession(ctx context.Context, changes <-chan session.Change) {
	defer s.StopBackground()

	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-changes:
			if !ok {
				return
			}
			if change.LoggedIn {
				continue
			}
			s.logger.Info().
				Str("func", "clientSyncService.Run").
				Bool("forced", change.Forced).
				Msg("logged out, stopping background sync")
			s.StopBackground()
		}
	}
}
