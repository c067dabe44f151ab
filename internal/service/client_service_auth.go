// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/hymusic-sync/internal/adapter"
	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/validators"
	"github.com/MKhiriev/hymusic-sync/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	session   SessionManager
	sync      ClientSyncService
	validator validators.Validator
	logger    *logger.Logger

	// background runs the post-login sync. Tests replace it to run inline.
	background func(func())
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, sess SessionManager, syncSvc ClientSyncService, log *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:    serverAdapter,
		session:    sess,
		sync:       syncSvc,
		validator:  validators.NewAuthValidator(),
		logger:     log,
		background: func(f func()) { go f() },
	}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.UserInfo, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.UserInfo{}, mapValidationError(err)
	}

	resp, err := a.adapter.Register(ctx, req)
	if err != nil {
		return models.UserInfo{}, mapAdapterError(err)
	}

	return a.startSession(ctx, "clientAuthService.Register", resp)
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.UserInfo, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.UserInfo{}, mapValidationError(err)
	}

	resp, err := a.adapter.Login(ctx, req)
	if err != nil {
		return models.UserInfo{}, mapAdapterError(err)
	}

	return a.startSession(ctx, "clientAuthService.Login", resp)
}

// Resume restores the persisted session and, when there is one, starts
// background sync as a fresh login would.
func (a *clientAuthService) Resume(ctx context.Context) (models.UserInfo, bool, error) {
	ok, err := a.session.Restore(ctx)
	if err != nil {
		return models.UserInfo{}, false, fmt.Errorf("restore session: %w", err)
	}
	if !ok {
		return models.UserInfo{}, false, nil
	}

	user, _ := a.session.User()
	a.logger.Info().
		Str("func", "clientAuthService.Resume").
		Str("user_id", user.ID).
		Msg("session restored")

	a.afterLogin(ctx)
	return user, true, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.sync.StopBackground()
	if err := a.session.End(ctx); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

func (a *clientAuthService) startSession(ctx context.Context, funcName string, resp models.AuthResponse) (models.UserInfo, error) {
	if resp.User == nil {
		return models.UserInfo{}, fmt.Errorf("%w: response without user", adapter.ErrDecodingResponse)
	}

	if err := a.session.Start(ctx, resp.Token, *resp.User); err != nil {
		return models.UserInfo{}, fmt.Errorf("start session: %w", err)
	}

	a.logger.Info().
		Str("func", funcName).
		Str("user_id", resp.User.ID).
		Msg("logged in")

	a.afterLogin(ctx)
	return *resp.User, nil
}

func (a *clientAuthService) afterLogin(ctx context.Context) {
	syncCtx := context.WithoutCancel(ctx)
	a.background(func() {
		if err := a.sync.OnLoginSuccess(syncCtx); err != nil {
			a.logger.Warn().
				Err(err).
				Str("func", "clientAuthService.afterLogin").
				Msg("first sync after login failed")
		}
	})
}

func mapValidationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrEmptyCredentials):
		return fmt.Errorf("%w: %w", ErrEmailAndPasswordRequired, err)
	case errors.Is(err, validators.ErrInvalidEmail):
		return fmt.Errorf("%w: %w", ErrInvalidEmail, err)
	case errors.Is(err, validators.ErrWeakPassword):
		return fmt.Errorf("%w: %w", ErrWeakPassword, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
