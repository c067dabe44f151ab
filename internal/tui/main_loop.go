// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/hymusic-sync/internal/service"
	"github.com/MKhiriev/hymusic-sync/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type tab int

const (
	tabLiked tab = iota
	tabRecent
	tabPlaylists
	tabLibrary
	tabNews
	tabCount
)

var tabTitles = [tabCount]string{"Liked", "Recent", "Playlists", "Library", "News"}

const recentLimit = 50

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	user     models.UserInfo

	tab     tab
	idx     int
	loading bool
	syncing bool
	spinner spinner.Model

	liked         []models.Song
	recent        []models.Song
	playlists     []models.LocalPlaylist
	library       models.LibraryBundle
	announcements []models.Announcement

	syncState   models.SyncState
	states      <-chan models.SyncState
	unsubscribe func()
	showStatus  bool
	info        syncInfo

	confirm       *confirmModel
	pendingDelete int64
	creating      bool
	titleInput    textinput.Model

	status string
	errMsg string

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, user models.UserInfo) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	title := textinput.New()
	title.Placeholder = "playlist title"
	title.CharLimit = 200
	title.Width = 40

	states, unsubscribe := services.SyncService.SubscribeState()

	return mainLoopModel{
		ctx:         ctx,
		services:    services,
		user:        user,
		loading:     true,
		spinner:     s,
		syncState:   services.SyncService.State(),
		states:      states,
		unsubscribe: unsubscribe,
		titleInput:  title,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoad(), waitForSyncState(m.states), m.spinner.Tick)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case libraryLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.liked = msg.liked
		m.recent = msg.recent
		m.playlists = msg.playlists
		m.library = msg.library
		m.announcements = msg.announcements
		m.clampIndex()
		return m, nil

	case syncStateMsg:
		if !msg.ok {
			return m, nil
		}
		prev := m.syncState.Status
		m.syncState = msg.state
		m.syncing = msg.state.Status == models.SyncSyncing
		cmds := []tea.Cmd{waitForSyncState(m.states)}
		// A pass that finished may have merged server data into the store.
		if prev == models.SyncSyncing && msg.state.Status == models.SyncSuccess {
			cmds = append(cmds, m.cmdLoad())
		}
		return m, tea.Batch(cmds...)

	case syncDoneMsg:
		m.syncing = false
		m.info = m.readSyncInfo()
		if msg.err != nil {
			m.errMsg = syncErrorMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Sync completed"
		m.loading = true
		return m, m.cmdLoad()

	case actionDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.status
		return m, m.cmdLoad()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.creating {
			var cmd tea.Cmd
			m.titleInput, cmd = m.titleInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.confirm != nil:
		return m.updateConfirm(keyMsg)
	case m.creating:
		return m.updateCreate(keyMsg)
	case m.showStatus:
		if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.status) {
			m.showStatus = false
			return m, nil
		}
		if key.Matches(keyMsg, keys.sync) {
			return m.startSync()
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.nextTab):
		m.switchTab(1)
	case key.Matches(keyMsg, keys.prevTab):
		m.switchTab(-1)
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < m.rowCount()-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.sync):
		return m.startSync()
	case key.Matches(keyMsg, keys.status):
		m.info = m.readSyncInfo()
		m.showStatus = true
	case key.Matches(keyMsg, keys.reload):
		m.loading = true
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.copy):
		return m.copyShareLink()
	case key.Matches(keyMsg, keys.like):
		if song, ok := m.currentSong(); ok {
			return m, m.cmdLike(song)
		}
	case key.Matches(keyMsg, keys.unlike):
		if song, ok := m.currentSong(); ok {
			return m, m.cmdUnlike(song)
		}
	case key.Matches(keyMsg, keys.play):
		if song, ok := m.currentSong(); ok {
			return m, m.cmdRecordPlay(song)
		}
	case key.Matches(keyMsg, keys.newItem):
		if m.tab == tabPlaylists || m.tab == tabLiked {
			m.creating = true
			m.titleInput.SetValue("")
			m.titleInput.Focus()
			return m, textinput.Blink
		}
	case key.Matches(keyMsg, keys.delete):
		if m.tab == tabPlaylists && m.idx < len(m.playlists) {
			p := m.playlists[m.idx]
			m.pendingDelete = p.ID
			m.confirm = &confirmModel{message: p.Title}
		}
	}

	return m, nil
}

func (m mainLoopModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		m.confirm = nil
		return m, m.cmdDeletePlaylist(m.pendingDelete)
	case key.Matches(keyMsg, keys.no):
		m.confirm = nil
	}
	return m, nil
}

func (m mainLoopModel) updateCreate(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.creating = false
		m.titleInput.Blur()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		title := strings.TrimSpace(m.titleInput.Value())
		if title == "" {
			m.errMsg = "Playlist title is required"
			return m, nil
		}
		var tracks []string
		if song, ok := m.currentSong(); ok && m.tab == tabLiked {
			tracks = []string{song.VideoID}
		}
		m.creating = false
		m.titleInput.Blur()
		return m, m.cmdCreatePlaylist(title, tracks)
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) startSync() (tea.Model, tea.Cmd) {
	if m.syncing {
		return m, nil
	}
	m.syncing = true
	m.status = "Syncing..."
	m.errMsg = ""
	return m, m.cmdSync()
}

func (m mainLoopModel) copyShareLink() (tea.Model, tea.Cmd) {
	song, ok := m.currentSong()
	if !ok {
		m.status = "Nothing to copy"
		return m, nil
	}
	link := m.services.LibraryService.ShareLink(song.VideoID)
	if err := copyToClipboard(link); err != nil {
		m.errMsg = fmt.Sprintf("Copy failed: %v", err)
		return m, nil
	}
	m.errMsg = ""
	m.status = "Copied " + link
	return m, nil
}

func (m *mainLoopModel) switchTab(step int) {
	m.tab = tab((int(m.tab) + step + int(tabCount)) % int(tabCount))
	m.idx = 0
	m.status = ""
}

func (m *mainLoopModel) clampIndex() {
	if m.idx >= m.rowCount() {
		m.idx = m.rowCount() - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) rowCount() int {
	switch m.tab {
	case tabLiked:
		return len(m.liked)
	case tabRecent:
		return len(m.recent)
	case tabPlaylists:
		return len(m.playlists)
	case tabLibrary:
		return m.library.Len()
	case tabNews:
		return len(m.announcements)
	default:
		return 0
	}
}

// currentSong returns the song under the cursor on the song tabs.
func (m mainLoopModel) currentSong() (models.Song, bool) {
	var songs []models.Song
	switch m.tab {
	case tabLiked:
		songs = m.liked
	case tabRecent:
		songs = m.recent
	default:
		return models.Song{}, false
	}
	if m.idx < 0 || m.idx >= len(songs) {
		return models.Song{}, false
	}
	return songs[m.idx], true
}

func (m mainLoopModel) readSyncInfo() syncInfo {
	last, ok := m.services.SyncService.LastSyncTime()
	return syncInfo{
		lastSync: last,
		hasSync:  ok,
		reports:  m.services.SyncService.LastReports(),
	}
}

func waitForSyncState(states <-chan models.SyncState) tea.Cmd {
	if states == nil {
		return nil
	}
	return func() tea.Msg {
		state, ok := <-states
		return syncStateMsg{state: state, ok: ok}
	}
}

func (m mainLoopModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	lib := m.services.LibraryService

	return func() tea.Msg {
		var (
			msg libraryLoadedMsg
			err error
		)
		if msg.liked, err = lib.LikedSongs(ctx); err != nil {
			return libraryLoadedMsg{err: fmt.Errorf("load liked songs: %w", err)}
		}
		if msg.recent, err = lib.RecentlyPlayed(ctx, recentLimit); err != nil {
			return libraryLoadedMsg{err: fmt.Errorf("load history: %w", err)}
		}
		if msg.playlists, err = lib.Playlists(ctx); err != nil {
			return libraryLoadedMsg{err: fmt.Errorf("load playlists: %w", err)}
		}
		if msg.library, err = lib.Library(ctx); err != nil {
			return libraryLoadedMsg{err: fmt.Errorf("load library: %w", err)}
		}
		// Announcements are best effort: the client works offline.
		msg.announcements, _ = lib.Announcements(ctx)
		return msg
	}
}

func (m mainLoopModel) cmdSync() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SyncService

	return func() tea.Msg {
		return syncDoneMsg{err: svc.SyncNow(ctx)}
	}
}

func (m mainLoopModel) cmdLike(song models.Song) tea.Cmd {
	ctx := m.ctx
	lib := m.services.LibraryService

	return func() tea.Msg {
		return actionDoneMsg{status: "Liked " + song.Title, err: lib.Like(ctx, song.VideoID)}
	}
}

func (m mainLoopModel) cmdUnlike(song models.Song) tea.Cmd {
	ctx := m.ctx
	lib := m.services.LibraryService

	return func() tea.Msg {
		return actionDoneMsg{status: "Removed " + song.Title + " from liked", err: lib.Unlike(ctx, song.VideoID)}
	}
}

func (m mainLoopModel) cmdRecordPlay(song models.Song) tea.Cmd {
	ctx := m.ctx
	lib := m.services.LibraryService

	return func() tea.Msg {
		playTime := int64(song.DurationSeconds) * 1000
		return actionDoneMsg{status: "Played " + song.Title, err: lib.RecordPlay(ctx, song.VideoID, playTime)}
	}
}

func (m mainLoopModel) cmdCreatePlaylist(title string, tracks []string) tea.Cmd {
	ctx := m.ctx
	lib := m.services.LibraryService

	return func() tea.Msg {
		_, err := lib.CreatePlaylist(ctx, title, tracks)
		return actionDoneMsg{status: "Playlist " + title + " created", err: err}
	}
}

func (m mainLoopModel) cmdDeletePlaylist(id int64) tea.Cmd {
	ctx := m.ctx
	lib := m.services.LibraryService

	return func() tea.Msg {
		return actionDoneMsg{status: "Playlist deleted", err: lib.DeletePlaylist(ctx, id)}
	}
}
