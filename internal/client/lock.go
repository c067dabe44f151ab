// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrAlreadyRunning is returned when another client holds the Local Store.
var ErrAlreadyRunning = errors.New("another client is already using this local store")

// StoreLock keeps a single client process per Local Store file.
type StoreLock struct {
	lock *flock.Flock
}

// LockStore takes an exclusive, non-blocking lock next to the Local Store at
// storePath.
func LockStore(storePath string) (*StoreLock, error) {
	if err := os.MkdirAll(filepath.Dir(storePath), 0o700); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	lock := flock.New(storePath + ".lock")

	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", lock.Path(), err)
	}
	if !locked {
		return nil, ErrAlreadyRunning
	}

	return &StoreLock{lock: lock}, nil
}

func (l *StoreLock) Unlock() error {
	return l.lock.Unlock()
}
