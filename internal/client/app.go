// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/service"
	"github.com/MKhiriev/hymusic-sync/internal/tui"
	"github.com/MKhiriev/hymusic-sync/internal/workers"
	"github.com/MKhiriev/hymusic-sync/models"
)

// App runs one client session after another until the user quits.
type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, log *logger.Logger) *App {
	return &App{services: services, ui: ui, logger: log}
}

// Run blocks until the user quits or the process receives SIGTERM.
func (a *App) Run() error {
	// SIGINT is left to the UI, which reads ctrl+c as a key.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	background := workers.NewWorkers(a.services.SyncService)
	done := make(chan struct{})
	go func() {
		defer close(done)
		background.Run(ctx)
	}()
	defer func() {
		cancel()
		<-done
	}()

	for {
		user, err := a.login(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		logout, err := a.ui.MainLoop(ctx, user)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		if err = a.services.AuthService.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		a.logger.Info().Str("user_id", user.ID).Msg("logged out")
	}
}

// login resumes the persisted session or asks the user to log in.
func (a *App) login(ctx context.Context) (models.UserInfo, error) {
	user, ok, err := a.services.AuthService.Resume(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("could not restore session")
	}
	if ok {
		return user, nil
	}

	return a.ui.LoginFlow(ctx)
}
