// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/models"
)

type localSessionRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating local session repository")
	return &localSessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *localSessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	user, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}

	if _, err = r.db.ExecContext(ctx, saveSession, session.Token, string(user), orNow(session.SavedAt)); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localSessionRepository.SaveSession").
			Str("user_id", session.User.ID).
			Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localSessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	var (
		s    models.Session
		user string
	)
	if err := r.db.QueryRowContext(ctx, loadSession).Scan(&s.Token, &user, &s.SavedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrNoSession
		}
		logger.FromContext(ctx).Err(err).Str("func", "localSessionRepository.LoadSession").Msg("failed to load session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := json.Unmarshal([]byte(user), &s.User); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrDecodingColumn, err)
	}

	return s, nil
}

func (r *localSessionRepository) ClearSession(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, clearSession); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localSessionRepository.ClearSession").Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
