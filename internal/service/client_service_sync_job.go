// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/hymusic-sync/internal/workers"
	"github.com/MKhiriev/hymusic-sync/models"
)

// StartPeriodicSync implements ClientSyncService. It replaces a running timer.
// If interval is zero or negative it defaults to 5 minutes. Ticks while
// logged out do nothing.
func (s *clientSyncService) StartPeriodicSync(interval time.Duration) {
	if !s.session.IsLoggedIn() {
		return
	}

	s.periodic.Start(context.Background(), workers.NewTicker(interval, func(ctx context.Context) {
		s.backgroundUpload(ctx, "clientSyncService.periodic", models.Collections...)
	}))
}

// OnLocalMutation implements ClientSyncService. The collection is marked
// dirty and the flusher, started on first use, uploads dirty collections no
// more often than the limiter allows.
func (s *clientSyncService) OnLocalMutation(kind models.Collection) {
	if !s.session.IsLoggedIn() {
		return
	}

	s.pendingMu.Lock()
	s.pending[kind] = struct{}{}
	s.pendingMu.Unlock()

	s.mutations.StartIfIdle(context.Background(), workers.WorkerFunc(s.flushMutations))

	select {
	case s.flush <- struct{}{}:
	default:
	}
}

// StopBackground implements ClientSyncService. It cancels the timer, the
// flusher and any upload they have in flight, and drops pending edits.
func (s *clientSyncService) StopBackground() {
	s.periodic.Stop()
	s.mutations.Stop()

	s.pendingMu.Lock()
	clear(s.pending)
	s.pendingMu.Unlock()
}

func (s *clientSyncService) flushMutations(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.flush:
		}

		if err := s.limiter.Wait(ctx); err != nil {
			return
		}

		if dirty := s.takePending(); len(dirty) > 0 {
			s.backgroundUpload(ctx, "clientSyncService.flushMutations", dirty...)
		}
	}
}

func (s *clientSyncService) takePending() []models.Collection {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()

	dirty := make([]models.Collection, 0, len(s.pending))
	for _, c := range models.Collections {
		if _, ok := s.pending[c]; ok {
			dirty = append(dirty, c)
		}
	}
	clear(s.pending)

	return dirty
}

// backgroundUpload uploads collections without touching SyncState. Failures
// are logged at debug level and dropped.
func (s *clientSyncService) backgroundUpload(ctx context.Context, funcName string, collections ...models.Collection) {
	if !s.session.IsLoggedIn() {
		return
	}

	s.passMu.Lock()
	defer s.passMu.Unlock()

	if ctx.Err() != nil {
		return
	}

	report := s.uploadOverwrite(ctx, collections...)
	if err := report.Err(); err != nil {
		s.logger.Debug().Err(err).Str("func", funcName).Msg("background upload failed")
		return
	}
	s.logger.Debug().Str("func", funcName).Int("collections", len(collections)).Msg("background upload done")
}
