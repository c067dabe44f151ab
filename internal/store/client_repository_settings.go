// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/models"
)

// localSettingsRepository keeps one row per setting. The value column holds
// the JSON encoding of the setting, keyed by its wire name.
type localSettingsRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewLocalSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating local settings repository")
	return &localSettingsRepository{
		db:     db,
		logger: logger,
	}
}

// GetSettings overlays the stored values on [models.DefaultSettings].
// Unknown keys are ignored.
func (r *localSettingsRepository) GetSettings(ctx context.Context) (models.Settings, error) {
	log := logger.FromContext(ctx)

	stored := make(map[string]json.RawMessage)
	err := queryRows(ctx, r.db, getSettingsValues, nil, func(rows *sql.Rows) error {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return err
		}
		stored[key] = json.RawMessage(value)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "localSettingsRepository.GetSettings").Msg("failed to read settings")
		return models.Settings{}, err
	}

	settings := models.DefaultSettings()
	if len(stored) == 0 {
		return settings, nil
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return models.Settings{}, fmt.Errorf("%w: %w", ErrDecodingColumn, err)
	}
	var bundle models.SettingsBundle
	if err = json.Unmarshal(raw, &bundle); err != nil {
		log.Err(err).Str("func", "localSettingsRepository.GetSettings").Msg("failed to decode settings")
		return models.Settings{}, fmt.Errorf("%w: %w", ErrDecodingColumn, err)
	}
	settings.Apply(bundle)

	return settings, nil
}

// PatchSettings writes every present field in one transaction.
func (r *localSettingsRepository) PatchSettings(ctx context.Context, bundle models.SettingsBundle) ([]string, error) {
	values := bundle.Values()
	if len(values) == 0 {
		return []string{}, nil
	}

	keys := make([]string, 0, len(values))
	encoded := make([][2]string, 0, len(values))
	for _, c := range settingsColumns {
		v, ok := values[c.key]
		if !ok {
			continue
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
		}
		keys = append(keys, c.key)
		encoded = append(encoded, [2]string{c.key, string(b)})
	}

	err := r.db.inTx(ctx, "localSettingsRepository.PatchSettings", func(tx *sql.Tx) error {
		return execEach(ctx, tx, "localSettingsRepository.PatchSettings", upsertSettingValue, encoded, func(kv [2]string) []any {
			return []any{kv[0], kv[1]}
		})
	})
	if err != nil {
		return nil, err
	}

	return keys, nil
}
