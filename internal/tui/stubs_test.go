// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/hymusic-sync/internal/service"
	"github.com/MKhiriev/hymusic-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, req models.RegisterRequest) (models.UserInfo, error)
	loginFn    func(ctx context.Context, req models.LoginRequest) (models.UserInfo, error)
}

func (s *stubAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.UserInfo, error) {
	return s.registerFn(ctx, req)
}

func (s *stubAuthService) Login(ctx context.Context, req models.LoginRequest) (models.UserInfo, error) {
	return s.loginFn(ctx, req)
}

func (s *stubAuthService) Resume(context.Context) (models.UserInfo, bool, error) {
	return models.UserInfo{}, false, nil
}

func (s *stubAuthService) Logout(context.Context) error { return nil }

type stubLibraryService struct {
	liked     []models.Song
	recent    []models.Song
	playlists []models.LocalPlaylist

	likedIDs   []string
	unlikedIDs []string
	played     map[string]int64
	created    []string
	deleted    []int64
	actErr     error
}

func (s *stubLibraryService) LikedSongs(context.Context) ([]models.Song, error) { return s.liked, nil }

func (s *stubLibraryService) RecentlyPlayed(context.Context, int) ([]models.Song, error) {
	return s.recent, nil
}

func (s *stubLibraryService) Playlists(context.Context) ([]models.LocalPlaylist, error) {
	return s.playlists, nil
}

func (s *stubLibraryService) Library(context.Context) (models.LibraryBundle, error) {
	return models.LibraryBundle{}, nil
}

func (s *stubLibraryService) Settings(context.Context) (models.Settings, error) {
	return models.DefaultSettings(), nil
}

func (s *stubLibraryService) Announcements(context.Context) ([]models.Announcement, error) {
	return nil, service.ErrServerUnavailable
}

func (s *stubLibraryService) Like(_ context.Context, videoID string) error {
	s.likedIDs = append(s.likedIDs, videoID)
	return s.actErr
}

func (s *stubLibraryService) Unlike(_ context.Context, videoID string) error {
	s.unlikedIDs = append(s.unlikedIDs, videoID)
	return s.actErr
}

func (s *stubLibraryService) RecordPlay(_ context.Context, videoID string, playTime int64) error {
	if s.played == nil {
		s.played = make(map[string]int64)
	}
	s.played[videoID] += playTime
	return s.actErr
}

func (s *stubLibraryService) CreatePlaylist(_ context.Context, title string, _ []string) (int64, error) {
	s.created = append(s.created, title)
	return int64(len(s.created)), s.actErr
}

func (s *stubLibraryService) DeletePlaylist(_ context.Context, id int64) error {
	s.deleted = append(s.deleted, id)
	return s.actErr
}

func (s *stubLibraryService) UpdateSettings(context.Context, models.SettingsBundle) error {
	return s.actErr
}

func (s *stubLibraryService) ShareLink(videoID string) string {
	return "https://music.youtube.com/watch?v=" + videoID
}

type stubSyncService struct {
	states    chan models.SyncState
	syncErr   error
	syncCalls int
	lastSync  time.Time
	reports   []models.PassReport
}

func newStubSyncService() *stubSyncService {
	return &stubSyncService{states: make(chan models.SyncState, 4)}
}

func (s *stubSyncService) TriggerFullSync(context.Context) error     { return s.syncErr }
func (s *stubSyncService) TriggerUploadOnly(context.Context) error   { return nil }
func (s *stubSyncService) TriggerDownloadOnly(context.Context) error { return nil }

func (s *stubSyncService) SyncNow(context.Context) error {
	s.syncCalls++
	return s.syncErr
}

func (s *stubSyncService) OnLoginSuccess(context.Context) error { return nil }
func (s *stubSyncService) OnLocalMutation(models.Collection)    {}
func (s *stubSyncService) StartPeriodicSync(time.Duration)      {}
func (s *stubSyncService) StopBackground()                      {}
func (s *stubSyncService) State() models.SyncState              { return models.SyncState{} }

func (s *stubSyncService) SubscribeState() (<-chan models.SyncState, func()) {
	return s.states, func() {}
}

func (s *stubSyncService) LastSyncTime() (time.Time, bool) {
	return s.lastSync, !s.lastSync.IsZero()
}

func (s *stubSyncService) LastReports() []models.PassReport { return s.reports }
func (s *stubSyncService) Run(context.Context)              {}

func newTestMainLoop(lib *stubLibraryService, sync *stubSyncService) mainLoopModel {
	services := &service.ClientServices{
		AuthService:    &stubAuthService{},
		LibraryService: lib,
		SyncService:    sync,
	}
	return newMainLoopModel(context.Background(), services, models.UserInfo{ID: "u1", Email: "a@b.com"})
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// update runs one Update and returns the concrete model.
func update(m mainLoopModel, msg tea.Msg) (mainLoopModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(mainLoopModel), cmd
}
