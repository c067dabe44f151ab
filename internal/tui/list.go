// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/hymusic-sync/models"
)

const titleWidth = 40

func (m mainLoopModel) View() string {
	if m.showStatus {
		return renderSyncStatus(m.syncState, m.info)
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case m.rowCount() == 0:
		b.WriteString("Nothing here yet\n")
	default:
		b.WriteString(m.renderRows())
	}

	if m.creating {
		b.WriteString("\nNew playlist: [")
		b.WriteString(m.titleInput.View())
		b.WriteString("]\n")
	}
	if m.confirm != nil {
		b.WriteString("\n")
		b.WriteString(m.confirm.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderSyncLine())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	title := "HYMUSIC │ " + displayName(m.user)
	return renderPage(title, b.String(), m.hotKeys())
}

func (m mainLoopModel) renderTabs() string {
	parts := make([]string, 0, tabCount)
	for i, t := range tabTitles {
		label := fmt.Sprintf("%s (%d)", t, m.tabSize(tab(i)))
		if tab(i) == m.tab {
			label = activeTabStyle.Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "  ")
}

func (m mainLoopModel) tabSize(t tab) int {
	m.tab = t
	return m.rowCount()
}

func (m mainLoopModel) renderRows() string {
	var b strings.Builder
	for i, row := range m.rows() {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

func (m mainLoopModel) rows() []string {
	switch m.tab {
	case tabLiked:
		return songRows(m.liked)
	case tabRecent:
		return songRows(m.recent)
	case tabPlaylists:
		rows := make([]string, 0, len(m.playlists))
		for _, p := range m.playlists {
			rows = append(rows, fmt.Sprintf("%s  %d tracks", padRight(fitText(p.Title, titleWidth), titleWidth), len(p.Tracks)))
		}
		return rows
	case tabLibrary:
		return libraryRows(m.library)
	case tabNews:
		rows := make([]string, 0, len(m.announcements))
		for _, a := range m.announcements {
			rows = append(rows, fmt.Sprintf("[%d] %s: %s", a.Priority, a.Title, fitText(a.Content, 60)))
		}
		return rows
	default:
		return nil
	}
}

func songRows(songs []models.Song) []string {
	rows := make([]string, 0, len(songs))
	for _, s := range songs {
		marker := " "
		if s.Liked {
			marker = "♥"
		}
		rows = append(rows, fmt.Sprintf("%s %s  %s  %s",
			marker,
			padRight(fitText(s.Title, titleWidth), titleWidth),
			padRight(fitText(valueOrDash(s.FirstArtist()), 24), 24),
			valueOrDash(s.Duration),
		))
	}
	return rows
}

func libraryRows(l models.LibraryBundle) []string {
	rows := make([]string, 0, l.Len())
	for _, a := range l.Albums {
		rows = append(rows, "[album]    "+fitText(a.Title, titleWidth)+"  "+valueOrDash(deref(a.Artist)))
	}
	for _, a := range l.Artists {
		rows = append(rows, "[artist]   "+fitText(a.Name, titleWidth))
	}
	for _, p := range l.Playlists {
		rows = append(rows, "[playlist] "+fitText(p.Title, titleWidth))
	}
	return rows
}

func (m mainLoopModel) renderSyncLine() string {
	line := "Sync: " + m.syncState.String()
	if m.syncing {
		line = m.spinner.View() + " " + line
	}
	return line
}

func (m mainLoopModel) hotKeys() string {
	switch m.tab {
	case tabLiked:
		return "tab: next │ u: unlike │ p: play │ c: copy link │ n: new playlist │ s: sync │ i: status │ L: log out │ q: quit"
	case tabRecent:
		return "tab: next │ f: like │ u: unlike │ p: play │ c: copy link │ s: sync │ i: status │ L: log out │ q: quit"
	case tabPlaylists:
		return "tab: next │ n: new │ d: delete │ s: sync │ i: status │ L: log out │ q: quit"
	default:
		return "tab: next │ r: reload │ s: sync │ i: status │ L: log out │ q: quit"
	}
}

func displayName(u models.UserInfo) string {
	if u.Nickname != nil && *u.Nickname != "" {
		return *u.Nickname
	}
	return u.Email
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
