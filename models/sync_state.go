// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"time"
)

// SyncStatus is the phase of the most recent explicit sync pass.
type SyncStatus int

const (
	SyncIdle SyncStatus = iota
	SyncSyncing
	SyncSuccess
	SyncFailed
)

func (s SyncStatus) String() string {
	switch s {
	case SyncIdle:
		return "idle"
	case SyncSyncing:
		return "syncing"
	case SyncSuccess:
		return "success"
	case SyncFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SyncState is the observable status of the sync engine. Message is the
// success message or the failure reason.
type SyncState struct {
	Status  SyncStatus
	Message string
}

func (s SyncState) String() string {
	if s.Message == "" {
		return s.Status.String()
	}
	return s.Status.String() + ": " + s.Message
}

// Collection names a synchronized collection.
type Collection string

const (
	CollectionFavorites Collection = "favorites"
	CollectionPlaylists Collection = "playlists"
	CollectionHistory   Collection = "history"
	CollectionSettings  Collection = "settings"
	CollectionLibrary   Collection = "library"
)

// Collections lists every synchronized collection in upload order.
var Collections = []Collection{
	CollectionFavorites,
	CollectionPlaylists,
	CollectionHistory,
	CollectionSettings,
	CollectionLibrary,
}

// CollectionOutcome is the result of syncing one collection.
// Succeeded counts the records that were applied; FailedKeys lists the keys
// of records that could not be applied. Err is set when the collection as a
// whole failed.
type CollectionOutcome struct {
	Collection Collection
	Succeeded  int
	FailedKeys []string
	Err        error
}

// Failed reports whether the collection as a whole failed.
func (o CollectionOutcome) Failed() bool {
	return o.Err != nil
}

// Direction tells which way a pass moved data.
type Direction string

const (
	DirectionDownload Direction = "download"
	DirectionUpload   Direction = "upload"
)

// PassReport aggregates the outcomes of one download or upload pass.
type PassReport struct {
	Direction  Direction
	StartedAt  time.Time
	FinishedAt time.Time
	Outcomes   []CollectionOutcome
}

// Outcome returns the outcome recorded for c.
func (r PassReport) Outcome(c Collection) (CollectionOutcome, bool) {
	for _, o := range r.Outcomes {
		if o.Collection == c {
			return o, true
		}
	}
	return CollectionOutcome{}, false
}

// Err joins the errors of every failed collection.
func (r PassReport) Err() error {
	errs := make([]error, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		if o.Err != nil {
			errs = append(errs, o.Err)
		}
	}
	return errors.Join(errs...)
}

// Failed reports whether any collection failed.
func (r PassReport) Failed() bool {
	return r.Err() != nil
}
