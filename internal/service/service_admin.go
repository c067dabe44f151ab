// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/store"
	"github.com/MKhiriev/hymusic-sync/models"
)

// MaxUserListLimit caps the page size of the user listing.
const MaxUserListLimit = 100

type adminService struct {
	users  store.UserRepository
	sync   store.SyncRepository
	system store.SystemSettingsRepository

	logger *logger.Logger
	now    func() time.Time
}

func NewAdminService(users store.UserRepository, syncRepo store.SyncRepository, system store.SystemSettingsRepository, logger *logger.Logger) AdminService {
	return &adminService{
		users:  users,
		sync:   syncRepo,
		system: system,
		logger: logger,
		now:    time.Now,
	}
}

func (a *adminService) ListUsers(ctx context.Context, query models.UserListQuery) (models.UserListResponse, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = models.DefaultUserListLimit
	}
	query.Limit = min(query.Limit, MaxUserListLimit)
	query.Search = strings.TrimSpace(query.Search)

	users, total, err := a.users.ListUsers(ctx, query)
	if err != nil {
		return models.UserListResponse{}, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []models.AdminUser{}
	}

	return models.UserListResponse{
		Users:      users,
		Pagination: models.NewPagination(query.Page, query.Limit, total),
	}, nil
}

func (a *adminService) GetUser(ctx context.Context, id string) (models.UserDetail, error) {
	user, err := a.users.GetAdminUser(ctx, id)
	if err != nil {
		return models.UserDetail{}, err
	}

	settings, err := a.sync.GetSettings(ctx, id)
	if err != nil && !errors.Is(err, store.ErrSettingsNotFound) {
		return models.UserDetail{}, fmt.Errorf("read settings: %w", err)
	}

	return models.UserDetail{User: user, Settings: settings}, nil
}

func (a *adminService) SetBanned(ctx context.Context, id string, banned bool) (models.AdminUser, error) {
	user, err := a.users.SetBanned(ctx, id, banned)
	if err != nil {
		return models.AdminUser{}, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "adminService.SetBanned").
		Str("user_id", id).
		Bool("banned", banned).
		Msg("ban flag changed")
	return user, nil
}

func (a *adminService) SetAdmin(ctx context.Context, id string, isAdmin bool) (models.AdminUser, error) {
	user, err := a.users.SetAdmin(ctx, id, isAdmin)
	if err != nil {
		return models.AdminUser{}, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "adminService.SetAdmin").
		Str("user_id", id).
		Bool("is_admin", isAdmin).
		Msg("admin flag changed")
	return user, nil
}

func (a *adminService) DeleteUser(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return ErrCannotDeleteSelf
	}

	if err := a.users.DeleteUser(ctx, id); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Str("func", "adminService.DeleteUser").
		Str("user_id", id).
		Str("actor_id", actorID).
		Msg("user deleted")
	return nil
}

// Stats counts "today" from local midnight of the server.
func (a *adminService) Stats(ctx context.Context) (models.StatsResponse, error) {
	now := a.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats, err := a.users.Stats(ctx, todayStart)
	if err != nil {
		return models.StatsResponse{}, fmt.Errorf("stats: %w", err)
	}

	recent, err := a.users.RecentUsers(ctx, models.RecentUsersLimit)
	if err != nil {
		return models.StatsResponse{}, fmt.Errorf("recent users: %w", err)
	}
	if recent == nil {
		recent = []models.AdminUser{}
	}

	return models.StatsResponse{Stats: stats, RecentUsers: recent}, nil
}

func (a *adminService) SystemSettings(ctx context.Context) (models.SystemSettings, error) {
	return a.system.Get(ctx)
}

func (a *adminService) UpdateSystemSettings(ctx context.Context, update models.SystemSettingsUpdate) (models.SystemSettings, error) {
	if update.RegistrationEnabled == nil {
		return models.SystemSettings{}, ErrEmptyUpdate
	}
	return a.system.Update(ctx, update)
}
