// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/hymusic-sync/internal/service"
	"github.com/MKhiriev/hymusic-sync/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootModel_LoginResultEndsFlow(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{pageMenu: NewMenuModel()}, pageMenu, models.AppBuildInfo{})

	next, cmd := root.Update(LoginResult{User: models.UserInfo{ID: "u1"}})
	result := next.(RootModel)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "u1", result.user.ID)
	assert.False(t, result.quitByUser)
}

func TestRootModel_FailedLoginStaysOnPage(t *testing.T) {
	login := NewLoginModel(context.Background(), &stubAuthService{})
	root := NewRootModel(map[string]tea.Model{pageLogin: login}, pageLogin, models.AppBuildInfo{})

	next, _ := root.Update(LoginResult{Err: service.ErrInvalidCredentials})
	result := next.(RootModel)

	assert.Empty(t, result.user.ID)
	assert.Equal(t, service.ErrInvalidCredentials.Error(), login.errMsg)
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{pageMenu: NewMenuModel()}, pageMenu, models.AppBuildInfo{})

	next, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.True(t, next.(RootModel).quitByUser)
}

func TestRootModel_Navigation(t *testing.T) {
	menu := NewMenuModel()
	login := NewLoginModel(context.Background(), &stubAuthService{})
	root := NewRootModel(map[string]tea.Model{pageMenu: menu, pageLogin: login}, pageMenu, models.NewAppBuildInfo("1.0.0", "", ""))

	next, _ := root.Update(keyRunes("v"))
	assert.Contains(t, next.View(), "1.0.0")

	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	next, _ = next.Update(NavigateTo{Page: pageLogin})
	assert.Same(t, login, next.(RootModel).current)

	next, _ = next.Update(NavigateTo{Page: "missing"})
	assert.Same(t, login, next.(RootModel).current)
}

func TestMenuModel_Enter(t *testing.T) {
	m := NewMenuModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageLogin}, cmd())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, NavigateTo{Page: pageRegister}, cmd())
}

func TestLoginModel_Submit(t *testing.T) {
	var got models.LoginRequest
	auth := &stubAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.UserInfo, error) {
			got = req
			return models.UserInfo{ID: "u1"}, nil
		},
	}
	m := NewLoginModel(context.Background(), auth)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "Email and password are required", m.errMsg)

	m.inputs[0].SetValue("  user@example.com ")
	m.inputs[1].SetValue("Secret1!")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	msg := cmd()
	assert.Equal(t, LoginResult{User: models.UserInfo{ID: "u1"}}, msg)
	assert.Equal(t, models.LoginRequest{Email: "user@example.com", Password: "Secret1!"}, got)

	// A second enter while submitting is ignored.
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestLoginModel_ServerUnavailable(t *testing.T) {
	m := NewLoginModel(context.Background(), &stubAuthService{})
	m.submitting = true

	m.Update(LoginResult{Err: fmt.Errorf("login: %w", service.ErrServerUnavailable)})

	assert.False(t, m.submitting)
	assert.Equal(t, msgServerUnavailable, m.errMsg)
}

func TestRegisterModel_Submit(t *testing.T) {
	tests := []struct {
		name         string
		nickname     string
		password     string
		repeat       string
		wantErr      string
		wantNickname *string
	}{
		{name: "passwords differ", password: "Secret1!", repeat: "Secret2!", wantErr: "Passwords do not match"},
		{name: "missing password", wantErr: "Email and password are required"},
		{name: "no nickname", password: "Secret1!", repeat: "Secret1!"},
		{name: "with nickname", nickname: " dj ", password: "Secret1!", repeat: "Secret1!", wantNickname: ptr("dj")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.RegisterRequest
			auth := &stubAuthService{
				registerFn: func(_ context.Context, req models.RegisterRequest) (models.UserInfo, error) {
					got = req
					return models.UserInfo{ID: "u1"}, nil
				},
			}
			m := NewRegisterModel(context.Background(), auth)
			m.inputs[registerEmail].SetValue("user@example.com")
			m.inputs[registerNickname].SetValue(tt.nickname)
			m.inputs[registerPassword].SetValue(tt.password)
			m.inputs[registerRepeat].SetValue(tt.repeat)

			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

			if tt.wantErr != "" {
				assert.Nil(t, cmd)
				assert.Equal(t, tt.wantErr, m.errMsg)
				return
			}
			require.NotNil(t, cmd)
			assert.Equal(t, RegisterResult{User: models.UserInfo{ID: "u1"}}, cmd())
			assert.Equal(t, tt.wantNickname, got.Nickname)
		})
	}
}

func TestHumanizeServerUnavailableError(t *testing.T) {
	assert.Empty(t, humanizeServerUnavailableError(nil))
	assert.Equal(t, msgServerUnavailable, humanizeServerUnavailableError(errors.New("dial tcp 127.0.0.1:8080: connection refused")))
	assert.Equal(t, "invalid credentials", humanizeServerUnavailableError(service.ErrInvalidCredentials))
	assert.Equal(t, "Sync failed: "+msgServerUnavailable, syncErrorMessage(service.ErrServerUnavailable))
}

func ptr[T any](v T) *T {
	return &v
}
