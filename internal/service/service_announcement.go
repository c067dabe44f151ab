// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/store"
	"github.com/MKhiriev/hymusic-sync/internal/utils"
	"github.com/MKhiriev/hymusic-sync/internal/validators"
	"github.com/MKhiriev/hymusic-sync/models"
)

type announcementService struct {
	repo      store.AnnouncementRepository
	validator validators.Validator
	ids       idGenerator

	logger *logger.Logger
}

func NewAnnouncementService(repo store.AnnouncementRepository, logger *logger.Logger) AnnouncementService {
	return &announcementService{
		repo:      repo,
		validator: validators.NewSyncValidator(),
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

func (s *announcementService) Active(ctx context.Context) ([]models.Announcement, error) {
	return s.list(ctx, true)
}

func (s *announcementService) All(ctx context.Context) ([]models.Announcement, error) {
	return s.list(ctx, false)
}

func (s *announcementService) list(ctx context.Context, activeOnly bool) ([]models.Announcement, error) {
	items, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Announcement{}
	}
	return items, nil
}

// Create stores a new announcement. It is active unless the request says
// otherwise.
func (s *announcementService) Create(ctx context.Context, create models.AnnouncementCreate) (models.Announcement, error) {
	if err := s.validator.Validate(ctx, create); err != nil {
		return models.Announcement{}, fmt.Errorf("%w: %w", ErrTitleAndContentRequired, err)
	}

	active := true
	if create.IsActive != nil {
		active = *create.IsActive
	}

	return s.repo.Create(ctx, models.Announcement{
		ID:       s.ids.Generate(),
		Title:    strings.TrimSpace(create.Title),
		Content:  create.Content,
		IsActive: active,
		Priority: create.Priority,
	})
}

func (s *announcementService) Update(ctx context.Context, id string, update models.AnnouncementUpdate) (models.Announcement, error) {
	if err := s.validator.Validate(ctx, update); err != nil {
		if errors.Is(err, validators.ErrNoFieldsToUpdate) {
			return models.Announcement{}, fmt.Errorf("%w: %w", ErrEmptyUpdate, err)
		}
		return models.Announcement{}, fmt.Errorf("%w: %w", ErrTitleAndContentRequired, err)
	}
	return s.repo.Update(ctx, id, update)
}

func (s *announcementService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
