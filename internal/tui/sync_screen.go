// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/hymusic-sync/models"
)

// renderSyncStatus shows the engine state and the per-collection outcome of
// the last explicit pass.
func renderSyncStatus(state models.SyncState, info syncInfo) string {
	var b strings.Builder

	b.WriteString("State:      ")
	b.WriteString(state.String())
	b.WriteString("\nLast sync:  ")
	if info.hasSync {
		b.WriteString(formatTime(info.lastSync))
	} else {
		b.WriteString("never")
	}
	b.WriteString("\n")

	for _, report := range info.reports {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(fmt.Sprintf("%s  %s", strings.ToUpper(string(report.Direction)), formatTime(report.FinishedAt))))
		b.WriteString("\n")
		for _, o := range report.Outcomes {
			b.WriteString(renderOutcome(o))
			b.WriteString("\n")
		}
	}

	return renderPage("SYNC STATUS", b.String(), "s: sync now │ esc: back")
}

func renderOutcome(o models.CollectionOutcome) string {
	name := padRight(string(o.Collection), 10)
	if o.Failed() {
		return errorStyle.Render(name + " failed: " + humanizeServerUnavailableError(o.Err))
	}
	line := fmt.Sprintf("%s %d applied", name, o.Succeeded)
	if len(o.FailedKeys) > 0 {
		line += fmt.Sprintf(", %d skipped (%s)", len(o.FailedKeys), fitText(strings.Join(o.FailedKeys, ", "), 40))
	}
	return okStyle.Render(line)
}
