// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/service"
	"github.com/MKhiriev/hymusic-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned when the user leaves the program from a screen.
var ErrUserQuit = errors.New("user quit")

// TUI is the terminal front end of the client.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: log}
}

// LoginFlow shows the login and registration screens until a session is
// started. It returns the logged-in user.
func (t *TUI) LoginFlow(ctx context.Context) (models.UserInfo, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.UserInfo{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.UserInfo{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.UserInfo{}, ErrUserQuit
	}

	t.logger.Info().Str("user_id", result.user.ID).Msg("logged in")
	return result.user, nil
}

// MainLoop shows the library of user. It reports whether the user asked to
// log out.
func (t *TUI) MainLoop(ctx context.Context, user models.UserInfo) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, user)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.unsubscribe != nil {
		result.unsubscribe()
	}
	return result.logout, nil
}
