// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/service"
	"github.com/MKhiriev/hymusic-sync/internal/tui"
	"github.com/MKhiriev/hymusic-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUI struct {
	loginFn    func(ctx context.Context) (models.UserInfo, error)
	mainLoopFn func(ctx context.Context, user models.UserInfo) (bool, error)

	logins int
	loops  []string
}

func (u *stubUI) LoginFlow(ctx context.Context) (models.UserInfo, error) {
	u.logins++
	return u.loginFn(ctx)
}

func (u *stubUI) MainLoop(ctx context.Context, user models.UserInfo) (bool, error) {
	u.loops = append(u.loops, user.ID)
	return u.mainLoopFn(ctx, user)
}

type stubAuthService struct {
	service.ClientAuthService

	resumeUser models.UserInfo
	resumeOK   bool
	resumeErr  error
	logoutErr  error
	logouts    int
}

func (s *stubAuthService) Resume(context.Context) (models.UserInfo, bool, error) {
	user, ok, err := s.resumeUser, s.resumeOK, s.resumeErr
	// Only the first resume finds a session; after logout it is gone.
	s.resumeOK = false
	return user, ok, err
}

func (s *stubAuthService) Logout(context.Context) error {
	s.logouts++
	return s.logoutErr
}

type stubSyncService struct {
	service.ClientSyncService

	running atomic.Bool
	stopped atomic.Bool
}

func (s *stubSyncService) Run(ctx context.Context) {
	s.running.Store(true)
	<-ctx.Done()
	s.stopped.Store(true)
}

func newTestApp(auth *stubAuthService, ui *stubUI) (*App, *stubSyncService) {
	sync := &stubSyncService{}
	services := &service.ClientServices{AuthService: auth, SyncService: sync}
	return NewApp(services, ui, logger.Nop()), sync
}

func TestRun_ResumedSessionSkipsLogin(t *testing.T) {
	auth := &stubAuthService{resumeUser: models.UserInfo{ID: "u1"}, resumeOK: true}
	ui := &stubUI{
		mainLoopFn: func(context.Context, models.UserInfo) (bool, error) { return false, nil },
	}
	app, sync := newTestApp(auth, ui)

	require.NoError(t, app.run(context.Background()))

	assert.Zero(t, ui.logins)
	assert.Equal(t, []string{"u1"}, ui.loops)
	assert.True(t, sync.stopped.Load(), "the sync engine stops with the app")
}

func TestRun_LogoutShowsLoginAgain(t *testing.T) {
	auth := &stubAuthService{resumeUser: models.UserInfo{ID: "u1"}, resumeOK: true}
	loops := 0
	ui := &stubUI{
		loginFn: func(context.Context) (models.UserInfo, error) { return models.UserInfo{ID: "u2"}, nil },
		mainLoopFn: func(context.Context, models.UserInfo) (bool, error) {
			loops++
			return loops == 1, nil
		},
	}
	app, _ := newTestApp(auth, ui)

	require.NoError(t, app.run(context.Background()))

	assert.Equal(t, 1, auth.logouts)
	assert.Equal(t, 1, ui.logins)
	assert.Equal(t, []string{"u1", "u2"}, ui.loops)
}

func TestRun_QuitFromLogin(t *testing.T) {
	auth := &stubAuthService{resumeErr: errors.New("corrupt session")}
	ui := &stubUI{
		loginFn: func(context.Context) (models.UserInfo, error) { return models.UserInfo{}, tui.ErrUserQuit },
	}
	app, _ := newTestApp(auth, ui)

	require.NoError(t, app.run(context.Background()))
	assert.Empty(t, ui.loops)
}

func TestRun_Errors(t *testing.T) {
	t.Run("main loop", func(t *testing.T) {
		auth := &stubAuthService{resumeOK: true}
		ui := &stubUI{
			mainLoopFn: func(context.Context, models.UserInfo) (bool, error) { return false, errors.New("no tty") },
		}
		app, _ := newTestApp(auth, ui)

		assert.ErrorContains(t, app.run(context.Background()), "main loop: no tty")
	})

	t.Run("logout", func(t *testing.T) {
		auth := &stubAuthService{resumeOK: true, logoutErr: errors.New("disk full")}
		ui := &stubUI{
			mainLoopFn: func(context.Context, models.UserInfo) (bool, error) { return true, nil },
		}
		app, _ := newTestApp(auth, ui)

		assert.ErrorContains(t, app.run(context.Background()), "logout: disk full")
	})
}

func TestRun_StartsSyncEngine(t *testing.T) {
	auth := &stubAuthService{resumeOK: true}
	var sync *stubSyncService
	ui := &stubUI{
		mainLoopFn: func(context.Context, models.UserInfo) (bool, error) {
			assert.Eventually(t, func() bool { return sync.running.Load() }, time.Second, 10*time.Millisecond)
			return false, nil
		},
	}
	app, s := newTestApp(auth, ui)
	sync = s

	require.NoError(t, app.run(context.Background()))
}

func TestLockStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hymusic.db")

	first, err := LockStore(path)
	require.NoError(t, err)

	_, err = LockStore(path)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, first.Unlock())

	second, err := LockStore(path)
	require.NoError(t, err)
	assert.NoError(t, second.Unlock())
}
