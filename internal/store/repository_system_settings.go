// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/models"
)

type systemSettingsRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSystemSettingsRepository(db *DB, logger *logger.Logger) SystemSettingsRepository {
	logger.Debug().Msg("creating system settings repository")
	return &systemSettingsRepository{
		db:     db,
		logger: logger,
	}
}

// Get returns the singleton row, creating it with defaults when missing.
func (r *systemSettingsRepository) Get(ctx context.Context) (models.SystemSettings, error) {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, ensureSystemSettings, models.SystemSettingsID); err != nil {
		log.Err(err).Str("func", "systemSettingsRepository.Get").Msg("failed to ensure system settings row")
		return models.SystemSettings{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	var s models.SystemSettings
	if err := r.db.QueryRowContext(ctx, getSystemSettings, models.SystemSettingsID).Scan(&s.ID, &s.RegistrationEnabled, &s.UpdatedAt); err != nil {
		log.Err(err).Str("func", "systemSettingsRepository.Get").Msg("failed to scan system settings")
		return models.SystemSettings{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return s, nil
}

func (r *systemSettingsRepository) Update(ctx context.Context, update models.SystemSettingsUpdate) (models.SystemSettings, error) {
	log := logger.FromContext(ctx)

	if update.RegistrationEnabled == nil {
		return r.Get(ctx)
	}

	query, args, err := r.db.sb().Insert("system_settings").
		Columns("id", "registration_enabled").
		Values(models.SystemSettingsID, *update.RegistrationEnabled).
		Suffix("ON CONFLICT (id) DO UPDATE SET registration_enabled = EXCLUDED.registration_enabled, updated_at = NOW() " +
			"RETURNING id, registration_enabled, updated_at").
		ToSql()
	if err != nil {
		return models.SystemSettings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var s models.SystemSettings
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.RegistrationEnabled, &s.UpdatedAt); err != nil {
		log.Err(err).Str("func", "systemSettingsRepository.Update").Msg("failed to update system settings")
		return models.SystemSettings{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return s, nil
}

