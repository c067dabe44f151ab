// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/models"
)

type announcementRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewAnnouncementRepository(db *DB, logger *logger.Logger) AnnouncementRepository {
	logger.Debug().Msg("creating announcement repository")
	return &announcementRepository{
		db:     db,
		logger: logger,
	}
}

func scanAnnouncement(row rowScanner) (models.Announcement, error) {
	var a models.Announcement
	err := row.Scan(&a.ID, &a.Title, &a.Content, &a.IsActive, &a.Priority, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// List returns announcements by priority, then newest first.
func (r *announcementRepository) List(ctx context.Context, activeOnly bool) ([]models.Announcement, error) {
	log := logger.FromContext(ctx)

	builder := r.db.sb().Select(strings.Split(announcementColumns, ", ")...).
		From("announcements").
		OrderBy("priority DESC", "created_at DESC")
	if activeOnly {
		builder = builder.Where(sq.Eq{"is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	announcements := make([]models.Announcement, 0)
	err = queryRows(ctx, r.db, query, args, func(rows *sql.Rows) error {
		a, scanErr := scanAnnouncement(rows)
		if scanErr != nil {
			return scanErr
		}
		announcements = append(announcements, a)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "announcementRepository.List").Bool("active_only", activeOnly).Msg("failed to list announcements")
		return nil, err
	}

	return announcements, nil
}

func (r *announcementRepository) Create(ctx context.Context, announcement models.Announcement) (models.Announcement, error) {
	log := logger.FromContext(ctx)

	created, err := scanAnnouncement(r.db.QueryRowContext(ctx, insertAnnouncement,
		announcement.ID, announcement.Title, announcement.Content, announcement.IsActive, announcement.Priority))
	if err != nil {
		log.Err(err).Str("func", "announcementRepository.Create").Msg("failed to insert announcement")
		return models.Announcement{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// Update overwrites the present fields of the announcement.
func (r *announcementRepository) Update(ctx context.Context, id string, update models.AnnouncementUpdate) (models.Announcement, error) {
	log := logger.FromContext(ctx)

	builder := r.db.sb().Update("announcements").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + announcementColumns)
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	if update.IsActive != nil {
		builder = builder.Set("is_active", *update.IsActive)
	}
	if update.Priority != nil {
		builder = builder.Set("priority", *update.Priority)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "announcementRepository.Update").Msg("failed to build update query")
		return models.Announcement{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanAnnouncement(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Announcement{}, ErrAnnouncementNotFound
		}
		log.Err(err).Str("func", "announcementRepository.Update").Str("id", id).Msg("failed to update announcement")
		return models.Announcement{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *announcementRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteAnnouncement, id)
	if err != nil {
		log.Err(err).Str("func", "announcementRepository.Delete").Str("id", id).Msg("failed to delete announcement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAnnouncementNotFound
	}

	return nil
}
