// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/mock"
	"github.com/MKhiriev/hymusic-sync/internal/store"
	"github.com/MKhiriev/hymusic-sync/models"
)

func newTestAnnouncementService(t *testing.T) (*announcementService, *mock.MockAnnouncementRepository) {
	t.Helper()
	repo := mock.NewMockAnnouncementRepository(gomock.NewController(t))
	svc := NewAnnouncementService(repo, logger.Nop()).(*announcementService)
	svc.ids = fixedIDs("a1")
	return svc, repo
}

func TestAnnouncementService_Lists(t *testing.T) {
	svc, repo := newTestAnnouncementService(t)
	ctx := context.Background()

	repo.EXPECT().List(ctx, true).Return(nil, nil)
	items, err := svc.Active(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)

	repo.EXPECT().List(ctx, false).Return([]models.Announcement{{ID: "a1"}, {ID: "a2"}}, nil)
	items, err = svc.All(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestAnnouncementService_Create(t *testing.T) {
	svc, repo := newTestAnnouncementService(t)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, models.Announcement{ID: "a1", Title: "Hi", Content: "Body", IsActive: true, Priority: 2}).
		Return(models.Announcement{ID: "a1"}, nil)
	_, err := svc.Create(ctx, models.AnnouncementCreate{Title: " Hi ", Content: "Body", Priority: 2})
	require.NoError(t, err)

	repo.EXPECT().Create(ctx, models.Announcement{ID: "a1", Title: "Draft", Content: "Body"}).
		Return(models.Announcement{ID: "a1"}, nil)
	_, err = svc.Create(ctx, models.AnnouncementCreate{Title: "Draft", Content: "Body", IsActive: ptr(false)})
	require.NoError(t, err)

	_, err = svc.Create(ctx, models.AnnouncementCreate{Title: "Hi"})
	require.ErrorIs(t, err, ErrTitleAndContentRequired)
}

func TestAnnouncementService_Update(t *testing.T) {
	svc, repo := newTestAnnouncementService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, "a1", models.AnnouncementUpdate{})
	require.ErrorIs(t, err, ErrEmptyUpdate)

	_, err = svc.Update(ctx, "a1", models.AnnouncementUpdate{Content: ptr("")})
	require.ErrorIs(t, err, ErrTitleAndContentRequired)

	update := models.AnnouncementUpdate{IsActive: ptr(false)}
	repo.EXPECT().Update(ctx, "a1", update).Return(models.Announcement{}, store.ErrAnnouncementNotFound)
	_, err = svc.Update(ctx, "a1", update)
	require.ErrorIs(t, err, store.ErrAnnouncementNotFound)

	repo.EXPECT().Delete(ctx, "a1").Return(nil)
	require.NoError(t, svc.Delete(ctx, "a1"))
}
