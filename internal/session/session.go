// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the client's login: the bearer token and the user it
// belongs to. The token is persisted through a [store.SessionRepository] so
// the client resumes after a restart.
//
// Every login state change is published to subscribers; the sync engine
// listens to stop its background work on logout, the terminal UI listens to
// return to the login screen.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/hymusic-sync/internal/app"
	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/store"
	"github.com/MKhiriev/hymusic-sync/internal/utils"
	"github.com/MKhiriev/hymusic-sync/models"
)

var ErrEmptyToken = errors.New("empty token")

// Change describes a login state transition. Reason is set when the session
// was ended by the server.
type Change struct {
	LoggedIn bool
	User     models.UserInfo
	Forced   bool
	Reason   string
}

// Session is safe for concurrent use.
type Session struct {
	repo   store.SessionRepository
	logger *logger.Logger
	now    func() time.Time

	mu    sync.RWMutex
	token string
	user  models.UserInfo

	changes *utils.Broadcaster[Change]
}

func New(repo store.SessionRepository, log *logger.Logger) *Session {
	return &Session{
		repo:    repo,
		logger:  log,
		now:     time.Now,
		changes: utils.NewBroadcaster[Change](4),
	}
}

// Restore loads the persisted session. It reports false when there is none
// or when the stored token has expired; an expired session is cleared.
func (s *Session) Restore(ctx context.Context) (bool, error) {
	saved, err := s.repo.LoadSession(ctx)
	if errors.Is(err, store.ErrNoSession) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load session: %w", err)
	}

	if _, exp, err := utils.ParseUnverifiedClaims(saved.Token); err != nil || (!exp.IsZero() && !exp.After(s.now())) {
		s.logger.Info().
			Str("func", "Session.Restore").
			Str("user_id", saved.User.ID).
			Msg("stored session expired or unreadable, clearing")
		if err := s.repo.ClearSession(ctx); err != nil {
			return false, fmt.Errorf("clear expired session: %w", err)
		}
		return false, nil
	}

	s.set(saved.Token, saved.User)
	s.publish(Change{LoggedIn: true, User: saved.User})

	return true, nil
}

// Start persists token and user and marks the session as logged in.
func (s *Session) Start(ctx context.Context, token string, user models.UserInfo) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	if err := s.repo.SaveSession(ctx, models.Session{Token: token, User: user, SavedAt: s.now()}); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.set(token, user)
	s.publish(Change{LoggedIn: true, User: user})

	s.logger.Info().Str("func", "Session.Start").Str("user_id", user.ID).Msg("logged in")
	return nil
}

// End logs out. The in-memory token is dropped even when clearing the
// persisted copy fails.
func (s *Session) End(ctx context.Context) error {
	user, ok := s.clear()
	if !ok {
		return nil
	}
	s.publish(Change{LoggedIn: false, User: user})

	if err := s.repo.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.logger.Info().Str("func", "Session.End").Str("user_id", user.ID).Msg("logged out")
	return nil
}

// ForceLogout ends the session after the server refused it. Only the first
// call of a burst has an effect.
func (s *Session) ForceLogout(ctx context.Context, reason error) {
	user, ok := s.clear()
	if !ok {
		return
	}

	s.logger.Warn().
		Err(reason).
		Str("func", "Session.ForceLogout").
		Str("user_id", user.ID).
		Msg("session ended by server")

	// the request context may already be cancelled
	if err := s.repo.ClearSession(context.WithoutCancel(ctx)); err != nil {
		s.logger.Err(err).Str("func", "Session.ForceLogout").Msg("failed to clear persisted session")
	}

	s.publish(Change{LoggedIn: false, User: user, Forced: true, Reason: app.MsgUserIsBanned})
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) IsLoggedIn() bool {
	return s.Token() != ""
}

// User returns the logged in user.
func (s *Session) User() (models.UserInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.token != ""
}

// Subscribe returns a channel of login state changes and a function that
// unsubscribes and closes it. A slow subscriber loses the oldest changes, never
// the latest.
func (s *Session) Subscribe() (<-chan Change, func()) {
	return s.changes.Subscribe()
}

func (s *Session) set(token string, user models.UserInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
}

// clear drops the token and reports whether there was one.
func (s *Session) clear() (models.UserInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return models.UserInfo{}, false
	}
	user := s.user
	s.token = ""
	s.user = models.UserInfo{}
	return user, true
}

func (s *Session) publish(c Change) {
	s.changes.Publish(c)
}
