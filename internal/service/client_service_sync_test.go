// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/hymusic-sync/internal/adapter"
	"github.com/MKhiriev/hymusic-sync/internal/app"
	"github.com/MKhiriev/hymusic-sync/internal/config"
	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/mock"
	"github.com/MKhiriev/hymusic-sync/internal/session"
	"github.com/MKhiriev/hymusic-sync/internal/store"
	"github.com/MKhiriev/hymusic-sync/models"
)

func ptr[T any](v T) *T { return &v }

type engineFixture struct {
	svc      *clientSyncService
	storages *store.ClientStorages
	session  *session.Session
	server   *mock.MockServerAdapter
}

func newTestStorages(t *testing.T) *store.ClientStorages {
	t.Helper()
	storages, err := store.NewClientStorages(context.Background(),
		config.ClientStorage{Path: filepath.Join(t.TempDir(), "local.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })
	return storages
}

// newEngine builds a sync engine over a fresh Local Store. When loggedIn is
// set a session for user u1 is started.
func newEngine(t *testing.T, loggedIn bool) *engineFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	storages := newTestStorages(t)
	sess := session.New(storages.SessionRepository, logger.Nop())
	if loggedIn {
		require.NoError(t, sess.Start(context.Background(), "token", models.UserInfo{ID: "u1", Email: "u1@example.com"}))
	}

	server := mock.NewMockServerAdapter(ctrl)
	svc := NewClientSyncService(storages, server, sess, config.ClientWorkers{SyncInterval: time.Hour}, logger.Nop()).(*clientSyncService)
	t.Cleanup(svc.StopBackground)

	return &engineFixture{svc: svc, storages: storages, session: sess, server: server}
}

// expectUploads accepts one upload of every collection.
func (f *engineFixture) expectUploads() {
	f.server.EXPECT().UploadFavorites(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, items []models.FavoriteItem) (int, error) { return len(items), nil })
	f.server.EXPECT().UploadPlaylists(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, items []models.PlaylistItem) (int, error) { return len(items), nil })
	f.server.EXPECT().UploadHistory(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, items []models.HistoryItem) (int, error) { return len(items), nil })
	f.server.EXPECT().UploadSettings(gomock.Any(), gomock.Any()).Return(nil)
	f.server.EXPECT().UploadLibrary(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l models.LibraryBundle) (int, error) { return l.Len(), nil })
}

// ── Mapping ──────────────────────────────────────────────────────────────────

func TestFavoriteToSong_Defaults(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	song := favoriteToSong(models.FavoriteItem{VideoID: "v1", Title: "Song", Artist: ptr("A"), Duration: ptr(185)}, now)

	assert.Equal(t, "v1", song.VideoID)
	assert.Equal(t, []string{"A"}, song.Artists)
	assert.Equal(t, "3:05", song.Duration)
	assert.Equal(t, 185, song.DurationSeconds)
	assert.True(t, song.Liked)
	assert.Equal(t, models.LikeStatusLike, song.LikeStatus)
	assert.True(t, song.IsAvailable)
	assert.False(t, song.IsExplicit)
	assert.Equal(t, models.DefaultVideoType, song.VideoType)
	require.NotNil(t, song.LikedAt)
	assert.Equal(t, now, *song.LikedAt)
}

func TestHistoryToSong(t *testing.T) {
	song := historyToSong(models.HistoryItem{VideoID: "v1", Title: "Song"}, time.Now())

	assert.False(t, song.Liked)
	assert.Equal(t, models.LikeStatusIndifferent, song.LikeStatus)
	assert.Equal(t, int64(1), song.TotalPlayTime)
	assert.Equal(t, "0:00", song.Duration)
	assert.Empty(t, song.Artists)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:00", formatDuration(nil))
	assert.Equal(t, "0:00", formatDuration(ptr(-3)))
	assert.Equal(t, "0:07", formatDuration(ptr(7)))
	assert.Equal(t, "61:01", formatDuration(ptr(3661)))
}

func TestLibraryMapping(t *testing.T) {
	item := albumToItem(models.Album{BrowseID: "b1", Title: "Album", Artists: []string{"A", "B"}})
	require.NotNil(t, item.Artist)
	assert.Equal(t, "A, B", *item.Artist)
	assert.Nil(t, item.Thumbnail)

	album := itemToAlbum(models.AlbumItem{BrowseID: "b1", Title: "Album"}, time.Now())
	assert.Equal(t, "b1", album.AudioPlaylistID)
	assert.Equal(t, "Album", album.Type)
	assert.True(t, album.Liked)

	assert.True(t, itemToArtist(models.ArtistItem{ChannelID: "c1"}, time.Now()).Followed)
	assert.True(t, itemToYouTubePlaylist(models.YouTubePlaylistItem{PlaylistID: "p1"}, time.Now()).Liked)
}

func TestSongToFavorite_FirstArtistOnly(t *testing.T) {
	fav := songToFavorite(models.Song{VideoID: "v1", Title: "Song", Artists: []string{"A", "B"}, DurationSeconds: 90})

	require.NotNil(t, fav.Artist)
	assert.Equal(t, "A", *fav.Artist)
	require.NotNil(t, fav.Duration)
	assert.Equal(t, 90, *fav.Duration)
}

// ── Full sync ────────────────────────────────────────────────────────────────

func TestTriggerFullSync_FreshLogin(t *testing.T) {
	f := newEngine(t, true)
	ctx := context.Background()

	snapshot := models.SyncAllResponse{
		Favorites: []models.FavoriteItem{
			{VideoID: "v1", Title: "One", Duration: ptr(60)},
			{VideoID: "v2", Title: "Two"},
		},
		Playlists: []models.PlaylistItem{{
			ID:    ptr("p-1"),
			Title: "Road",
			Songs: []models.FavoriteItem{{VideoID: "v2", Title: "Two"}, {VideoID: "v3", Title: "Three"}},
		}},
		History:  []models.HistoryItem{{VideoID: "v4", Title: "Four"}},
		Settings: &models.SettingsBundle{Quality: ptr("LOW")},
		Library: &models.LibraryBundle{
			Albums:  []models.AlbumItem{{BrowseID: "b1", Title: "Album"}},
			Artists: []models.ArtistItem{{ChannelID: "c1", Name: "Artist"}},
		},
	}

	var uploaded []models.FavoriteItem
	gomock.InOrder(
		f.server.EXPECT().FetchAll(gomock.Any()).Return(snapshot, nil),
		f.server.EXPECT().UploadFavorites(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, items []models.FavoriteItem) (int, error) {
				uploaded = items
				return len(items), nil
			}),
	)
	f.server.EXPECT().UploadPlaylists(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, items []models.PlaylistItem) (int, error) {
			if assert.Len(t, items, 1) {
				assert.Nil(t, items[0].ID)
				assert.Len(t, items[0].Songs, 2)
			}
			return len(items), nil
		})
	f.server.EXPECT().UploadHistory(gomock.Any(), gomock.Any()).Return(1, nil)
	f.server.EXPECT().UploadSettings(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b models.SettingsBundle) error {
			if assert.NotNil(t, b.Quality) {
				assert.Equal(t, "LOW", *b.Quality)
			}
			return nil
		})
	f.server.EXPECT().UploadLibrary(gomock.Any(), gomock.Any()).Return(2, nil)

	require.NoError(t, f.svc.TriggerFullSync(ctx))

	assert.Equal(t, models.SyncState{Status: models.SyncSuccess, Message: app.MsgFullSyncCompleted}, f.svc.State())
	_, ok := f.svc.LastSyncTime()
	assert.True(t, ok)
	assert.Len(t, uploaded, 2)

	liked, err := f.storages.SongRepository.LikedSongs(ctx)
	require.NoError(t, err)
	assert.Len(t, liked, 2)

	// playlist-only songs are stored but not liked
	v3, err := f.storages.SongRepository.GetSong(ctx, "v3")
	require.NoError(t, err)
	assert.False(t, v3.Liked)

	playlists, err := f.storages.PlaylistRepository.ListPlaylists(ctx)
	require.NoError(t, err)
	require.Len(t, playlists, 1)
	assert.Equal(t, []string{"v2", "v3"}, playlists[0].Tracks)

	settings, err := f.storages.SettingsRepository.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "LOW", settings.Quality)
	assert.Equal(t, models.DefaultSettings().Language, settings.Language)

	reports := f.svc.LastReports()
	require.Len(t, reports, 2)
	assert.Equal(t, models.DirectionDownload, reports[0].Direction)
	fav, ok := reports[0].Outcome(models.CollectionFavorites)
	require.True(t, ok)
	assert.Equal(t, 2, fav.Succeeded)
	lib, _ := reports[0].Outcome(models.CollectionLibrary)
	assert.Equal(t, 2, lib.Succeeded)
	assert.False(t, reports[1].Failed())
}

func TestTriggerFullSync_DownloadFailureSkipsUpload(t *testing.T) {
	f := newEngine(t, true)

	f.server.EXPECT().FetchAll(gomock.Any()).
		Return(models.SyncAllResponse{}, fmt.Errorf("%w: dial tcp: refused", adapter.ErrTransport))

	err := f.svc.TriggerFullSync(context.Background())
	require.ErrorIs(t, err, ErrServerUnavailable)

	assert.Equal(t, models.SyncState{Status: models.SyncFailed, Message: app.MsgServerUnavailable}, f.svc.State())
	_, ok := f.svc.LastSyncTime()
	assert.False(t, ok)
	assert.Len(t, f.svc.LastReports(), 1)
}

func TestTriggerFullSync_LoggedOutIsNoop(t *testing.T) {
	f := newEngine(t, false)

	require.NoError(t, f.svc.TriggerFullSync(context.Background()))
	require.NoError(t, f.svc.TriggerUploadOnly(context.Background()))
	require.NoError(t, f.svc.TriggerDownloadOnly(context.Background()))
	require.NoError(t, f.svc.OnLoginSuccess(context.Background()))

	assert.Equal(t, models.SyncIdle, f.svc.State().Status)
	assert.False(t, f.svc.periodic.Running())
}

// ── Download ─────────────────────────────────────────────────────────────────

func TestTriggerDownloadOnly_NeverUnlikes(t *testing.T) {
	f := newEngine(t, true)
	ctx := context.Background()
	songs := f.storages.SongRepository

	require.NoError(t, songs.InsertSong(ctx, favoriteToSong(models.FavoriteItem{VideoID: "local", Title: "Local"}, time.Now())))
	require.NoError(t, songs.InsertSong(ctx, historyToSong(models.HistoryItem{VideoID: "known", Title: "Known"}, time.Now())))

	f.server.EXPECT().FetchAll(gomock.Any()).Return(models.SyncAllResponse{
		Favorites: []models.FavoriteItem{{VideoID: "known", Title: "Known"}},
	}, nil)

	require.NoError(t, f.svc.TriggerDownloadOnly(ctx))
	assert.Equal(t, models.SyncState{Status: models.SyncSuccess, Message: app.MsgDownloadCompleted}, f.svc.State())

	local, err := songs.GetSong(ctx, "local")
	require.NoError(t, err)
	assert.True(t, local.Liked)

	known, err := songs.GetSong(ctx, "known")
	require.NoError(t, err)
	assert.True(t, known.Liked)
	assert.Equal(t, int64(1), known.TotalPlayTime)
}

func TestTriggerDownloadOnly_AbsentSettingsKeepLocal(t *testing.T) {
	f := newEngine(t, true)
	ctx := context.Background()

	_, err := f.storages.SettingsRepository.PatchSettings(ctx, models.SettingsBundle{Language: ptr("de-DE")})
	require.NoError(t, err)

	f.server.EXPECT().FetchAll(gomock.Any()).Return(models.SyncAllResponse{}, nil)
	require.NoError(t, f.svc.TriggerDownloadOnly(ctx))

	settings, err := f.storages.SettingsRepository.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "de-DE", settings.Language)

	out, ok := f.svc.LastReports()[0].Outcome(models.CollectionSettings)
	require.True(t, ok)
	assert.Zero(t, out.Succeeded)
}

func TestTriggerDownloadOnly_ExistingPlaylistTitleSkipped(t *testing.T) {
	f := newEngine(t, true)
	ctx := context.Background()

	_, err := f.storages.PlaylistRepository.CreatePlaylist(ctx, models.LocalPlaylist{Title: "Road", InLibrary: time.Now()})
	require.NoError(t, err)

	f.server.EXPECT().FetchAll(gomock.Any()).Return(models.SyncAllResponse{
		Playlists: []models.PlaylistItem{{Title: "Road", Songs: []models.FavoriteItem{{VideoID: "v1", Title: "One"}}}},
	}, nil)
	require.NoError(t, f.svc.TriggerDownloadOnly(ctx))

	playlists, err := f.storages.PlaylistRepository.ListPlaylists(ctx)
	require.NoError(t, err)
	require.Len(t, playlists, 1)
	assert.Empty(t, playlists[0].Tracks)

	_, err = f.storages.SongRepository.GetSong(ctx, "v1")
	require.ErrorIs(t, err, store.ErrSongNotFound)
}

// ── Upload ───────────────────────────────────────────────────────────────────

func TestTriggerUploadOnly_HistoryCapped(t *testing.T) {
	f := newEngine(t, true)
	ctx := context.Background()
	songs := f.storages.SongRepository

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range models.HistoryLimit + 20 {
		id := fmt.Sprintf("v%03d", i)
		require.NoError(t, songs.InsertSong(ctx, models.Song{VideoID: id, Title: id, LikeStatus: models.LikeStatusIndifferent}))
		require.NoError(t, songs.RecordPlay(ctx, id, 1000, base.Add(time.Duration(i)*time.Minute)))
	}

	f.server.EXPECT().UploadFavorites(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, items []models.FavoriteItem) (int, error) {
			assert.NotNil(t, items)
			assert.Empty(t, items)
			return 0, nil
		})
	f.server.EXPECT().UploadPlaylists(gomock.Any(), gomock.Any()).Return(0, nil)
	f.server.EXPECT().UploadHistory(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, items []models.HistoryItem) (int, error) {
			if assert.Len(t, items, models.HistoryLimit) {
				assert.Equal(t, fmt.Sprintf("v%03d", models.HistoryLimit+19), items[0].VideoID)
			}
			return len(items), nil
		})
	f.server.EXPECT().UploadSettings(gomock.Any(), gomock.Any()).Return(nil)
	f.server.EXPECT().UploadLibrary(gomock.Any(), gomock.Any()).Return(0, nil)

	require.NoError(t, f.svc.TriggerUploadOnly(ctx))
	assert.Equal(t, models.SyncState{Status: models.SyncSuccess, Message: app.MsgUploadCompleted}, f.svc.State())

	report := f.svc.LastReports()[0]
	out, _ := report.Outcome(models.CollectionHistory)
	assert.Equal(t, models.HistoryLimit, out.Succeeded)
	out, _ = report.Outcome(models.CollectionSettings)
	assert.Equal(t, models.SettingsFieldCount, out.Succeeded)
}

func TestTriggerUploadOnly_OneCollectionFails(t *testing.T) {
	f := newEngine(t, true)

	f.server.EXPECT().UploadFavorites(gomock.Any(), gomock.Any()).Return(0, nil)
	f.server.EXPECT().UploadPlaylists(gomock.Any(), gomock.Any()).
		Return(0, fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidDataProvided))
	f.server.EXPECT().UploadHistory(gomock.Any(), gomock.Any()).Return(0, nil)
	f.server.EXPECT().UploadSettings(gomock.Any(), gomock.Any()).Return(nil)
	f.server.EXPECT().UploadLibrary(gomock.Any(), gomock.Any()).Return(0, nil)

	err := f.svc.TriggerUploadOnly(context.Background())
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	assert.Equal(t, models.SyncState{Status: models.SyncFailed, Message: app.MsgUploadFailed}, f.svc.State())

	report := f.svc.LastReports()[0]
	assert.Len(t, report.Outcomes, len(models.Collections))
	out, _ := report.Outcome(models.CollectionPlaylists)
	assert.True(t, out.Failed())
	out, _ = report.Outcome(models.CollectionFavorites)
	assert.False(t, out.Failed())
}

func TestTriggerUploadOnly_MissingPlaylistSongReported(t *testing.T) {
	f := newEngine(t, true)
	ctx := context.Background()

	require.NoError(t, f.storages.SongRepository.InsertSong(ctx, models.Song{VideoID: "v1", Title: "One"}))
	_, err := f.storages.PlaylistRepository.CreatePlaylist(ctx, models.LocalPlaylist{
		Title: "Mix", Tracks: []string{"v1", "gone"}, InLibrary: time.Now(),
	})
	require.NoError(t, err)

	f.expectUploads()
	require.NoError(t, f.svc.TriggerUploadOnly(ctx))

	out, _ := f.svc.LastReports()[0].Outcome(models.CollectionPlaylists)
	assert.Equal(t, []string{"Mix/gone"}, out.FailedKeys)
	assert.Equal(t, 1, out.Succeeded)
}

// seedLocal stores a liked song, a played song and a playlist of both.
func seedLocal(t *testing.T, f *engineFixture) {
	t.Helper()
	ctx := context.Background()
	songs := f.storages.SongRepository
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, songs.InsertSong(ctx, favoriteToSong(models.FavoriteItem{VideoID: "v1", Title: "One", Artist: ptr("A")}, at)))
	require.NoError(t, songs.InsertSong(ctx, historyToSong(models.HistoryItem{VideoID: "v2", Title: "Two"}, at)))
	require.NoError(t, songs.RecordPlay(ctx, "v2", 3000, at))
	_, err := f.storages.PlaylistRepository.CreatePlaylist(ctx, models.LocalPlaylist{
		Title: "Mix", Tracks: []string{"v2", "v1"}, InLibrary: at,
	})
	require.NoError(t, err)
}

type localSnapshot struct {
	liked     []models.Song
	recent    []models.Song
	playlists []models.LocalPlaylist
	settings  models.Settings
}

func readLocal(t *testing.T, f *engineFixture) localSnapshot {
	t.Helper()
	ctx := context.Background()

	var (
		snap localSnapshot
		err  error
	)
	snap.liked, err = f.storages.SongRepository.LikedSongs(ctx)
	require.NoError(t, err)
	snap.recent, err = f.storages.SongRepository.RecentlyPlayed(ctx, models.HistoryLimit)
	require.NoError(t, err)
	snap.playlists, err = f.storages.PlaylistRepository.ListPlaylists(ctx)
	require.NoError(t, err)
	snap.settings, err = f.storages.SettingsRepository.GetSettings(ctx)
	require.NoError(t, err)
	return snap
}

func TestTriggerUploadOnly_RepeatedPassSendsSamePayloads(t *testing.T) {
	f := newEngine(t, true)
	seedLocal(t, f)

	var (
		favorites [][]models.FavoriteItem
		playlists [][]models.PlaylistItem
		history   [][]models.HistoryItem
		settings  []models.SettingsBundle
		libraries []models.LibraryBundle
	)
	f.server.EXPECT().UploadFavorites(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, items []models.FavoriteItem) (int, error) {
			favorites = append(favorites, items)
			return len(items), nil
		})
	f.server.EXPECT().UploadPlaylists(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, items []models.PlaylistItem) (int, error) {
			playlists = append(playlists, items)
			return len(items), nil
		})
	f.server.EXPECT().UploadHistory(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, items []models.HistoryItem) (int, error) {
			history = append(history, items)
			return len(items), nil
		})
	f.server.EXPECT().UploadSettings(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, b models.SettingsBundle) error {
			settings = append(settings, b)
			return nil
		})
	f.server.EXPECT().UploadLibrary(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, l models.LibraryBundle) (int, error) {
			libraries = append(libraries, l)
			return l.Len(), nil
		})

	before := readLocal(t, f)
	require.NoError(t, f.svc.TriggerUploadOnly(context.Background()))
	require.NoError(t, f.svc.TriggerUploadOnly(context.Background()))

	require.Len(t, favorites, 2)
	assert.Len(t, favorites[0], 1)
	assert.Equal(t, favorites[0], favorites[1])
	require.Len(t, playlists, 2)
	if assert.Len(t, playlists[0], 1) {
		assert.Len(t, playlists[0][0].Songs, 2)
	}
	assert.Equal(t, playlists[0], playlists[1])
	require.Len(t, history, 2)
	assert.Equal(t, history[0], history[1])
	require.Len(t, settings, 2)
	assert.Equal(t, settings[0], settings[1])
	require.Len(t, libraries, 2)
	assert.Equal(t, libraries[0], libraries[1])

	assert.Equal(t, before, readLocal(t, f), "uploads never write to the local store")
}

func TestTriggerUploadOnly_OfflineFailsAndKeepsLocalStore(t *testing.T) {
	f := newEngine(t, true)
	seedLocal(t, f)
	before := readLocal(t, f)

	require.Equal(t, models.SyncIdle, f.svc.State().Status)
	states, unsubscribe := f.svc.SubscribeState()
	defer unsubscribe()

	offline := fmt.Errorf("%w: dial tcp: connection refused", adapter.ErrTransport)
	f.server.EXPECT().UploadFavorites(gomock.Any(), gomock.Any()).Return(0, offline)
	f.server.EXPECT().UploadPlaylists(gomock.Any(), gomock.Any()).Return(0, offline)
	f.server.EXPECT().UploadHistory(gomock.Any(), gomock.Any()).Return(0, offline)
	f.server.EXPECT().UploadSettings(gomock.Any(), gomock.Any()).Return(offline)
	f.server.EXPECT().UploadLibrary(gomock.Any(), gomock.Any()).Return(0, offline)

	err := f.svc.TriggerUploadOnly(context.Background())
	require.ErrorIs(t, err, ErrServerUnavailable)

	assert.Equal(t, models.SyncSyncing, (<-states).Status)
	assert.Equal(t, models.SyncState{Status: models.SyncFailed, Message: app.MsgServerUnavailable}, <-states)
	assert.Equal(t, models.SyncState{Status: models.SyncFailed, Message: app.MsgServerUnavailable}, f.svc.State())

	report := f.svc.LastReports()[0]
	require.Len(t, report.Outcomes, len(models.Collections))
	for _, out := range report.Outcomes {
		assert.ErrorIs(t, out.Err, ErrServerUnavailable, string(out.Collection))
	}
	_, ok := f.svc.LastSyncTime()
	assert.False(t, ok)

	assert.Equal(t, before, readLocal(t, f))
}

// flakySongs refuses to store the listed video ids.
type flakySongs struct {
	store.SongRepository
	refuse map[string]bool
}

func (s flakySongs) InsertSong(ctx context.Context, song models.Song) error {
	if s.refuse[song.VideoID] {
		return errors.New("disk I/O error")
	}
	return s.SongRepository.InsertSong(ctx, song)
}

// checkedPlaylists records tracks that reference songs missing from the store
// at the moment the playlist is created.
type checkedPlaylists struct {
	store.LocalPlaylistRepository
	songs    store.SongRepository
	dangling []string
}

func (p *checkedPlaylists) CreatePlaylist(ctx context.Context, playlist models.LocalPlaylist) (int64, error) {
	for _, id := range playlist.Tracks {
		if _, err := p.songs.GetSong(ctx, id); err != nil {
			p.dangling = append(p.dangling, id)
		}
	}
	return p.LocalPlaylistRepository.CreatePlaylist(ctx, playlist)
}

func TestTriggerDownloadOnly_PlaylistSongsStoredFirst(t *testing.T) {
	f := newEngine(t, true)
	ctx := context.Background()

	playlists := &checkedPlaylists{
		LocalPlaylistRepository: f.storages.PlaylistRepository,
		songs:                   f.storages.SongRepository,
	}
	f.svc.songs = flakySongs{SongRepository: f.storages.SongRepository, refuse: map[string]bool{"bad": true}}
	f.svc.playlists = playlists

	f.server.EXPECT().FetchAll(gomock.Any()).Return(models.SyncAllResponse{
		Playlists: []models.PlaylistItem{{
			Title: "Mix",
			Songs: []models.FavoriteItem{
				{VideoID: "v1", Title: "One"},
				{VideoID: "bad", Title: "Broken"},
				{VideoID: "v2", Title: "Two"},
			},
		}},
	}, nil)

	require.NoError(t, f.svc.TriggerDownloadOnly(ctx))

	assert.Empty(t, playlists.dangling, "every track must be stored before its playlist")

	stored, err := f.storages.PlaylistRepository.ListPlaylists(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, []string{"v1", "v2"}, stored[0].Tracks)

	out, ok := f.svc.LastReports()[0].Outcome(models.CollectionPlaylists)
	require.True(t, ok)
	assert.Equal(t, []string{"Mix/bad"}, out.FailedKeys)
	assert.Equal(t, 1, out.Succeeded)
}

// ── State ────────────────────────────────────────────────────────────────────

func TestSubscribeState_SeesSyncingThenResult(t *testing.T) {
	f := newEngine(t, true)
	states, unsubscribe := f.svc.SubscribeState()
	defer unsubscribe()

	f.server.EXPECT().FetchAll(gomock.Any()).Return(models.SyncAllResponse{}, nil)
	require.NoError(t, f.svc.TriggerDownloadOnly(context.Background()))

	assert.Equal(t, models.SyncSyncing, (<-states).Status)
	assert.Equal(t, models.SyncSuccess, (<-states).Status)
}

// ── Ban ──────────────────────────────────────────────────────────────────────

func TestTriggerFullSync_BannedUserLoggedOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"User is banned"}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	storages := newTestStorages(t)
	sess := session.New(storages.SessionRepository, logger.Nop())
	require.NoError(t, sess.Start(ctx, "token", models.UserInfo{ID: "u1"}))

	changes, unsubscribe := sess.Subscribe()
	defer unsubscribe()

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: srv.URL}, sess, logger.Nop())
	require.NoError(t, err)

	svc := NewClientSyncService(storages, serverAdapter, sess, config.ClientWorkers{}, logger.Nop())

	err = svc.TriggerFullSync(ctx)
	require.ErrorIs(t, err, ErrUserBanned)
	assert.Equal(t, models.SyncState{Status: models.SyncFailed, Message: app.MsgUserIsBanned}, svc.State())

	assert.False(t, sess.IsLoggedIn())
	change := <-changes
	assert.True(t, change.Forced)
	assert.Equal(t, app.MsgUserIsBanned, change.Reason)

	_, err = storages.SessionRepository.LoadSession(ctx)
	require.True(t, errors.Is(err, store.ErrNoSession))

	// further passes are silent no-ops
	require.NoError(t, svc.TriggerUploadOnly(ctx))
}
