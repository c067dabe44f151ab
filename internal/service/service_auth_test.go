// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/hymusic-sync/internal/config"
	"github.com/MKhiriev/hymusic-sync/internal/logger"
	"github.com/MKhiriev/hymusic-sync/internal/mock"
	"github.com/MKhiriev/hymusic-sync/internal/store"
	"github.com/MKhiriev/hymusic-sync/internal/utils"
	"github.com/MKhiriev/hymusic-sync/models"
)

type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

func newTestAuthService(t *testing.T) (*authService, *mock.MockUserRepository, *mock.MockSystemSettingsRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	system := mock.NewMockSystemSettingsRepository(ctrl)

	svc := NewAuthService(users, system, config.App{
		TokenSignKey:  "sign-key",
		TokenIssuer:   "hymusic",
		TokenDuration: 720 * time.Hour,
		BcryptCost:    bcrypt.MinCost,
	}, logger.Nop()).(*authService)
	svc.ids = fixedIDs("user-1")

	return svc, users, system
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register(t *testing.T) {
	svc, users, system := newTestAuthService(t)
	ctx := context.Background()

	system.EXPECT().Get(ctx).Return(models.SystemSettings{RegistrationEnabled: true}, nil)
	users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
		assert.Equal(t, "user-1", u.ID)
		assert.Equal(t, "jane@example.com", u.Email)
		require.NotNil(t, u.Nickname)
		assert.Equal(t, "jane", *u.Nickname)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Passw0rd!")))
		return u, nil
	})

	user, err := svc.Register(ctx, models.RegisterRequest{Email: " jane@example.com ", Password: "Passw0rd!"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
}

func TestAuthService_Register_KeepsGivenNickname(t *testing.T) {
	svc, users, system := newTestAuthService(t)

	system.EXPECT().Get(gomock.Any()).Return(models.SystemSettings{RegistrationEnabled: true}, nil)
	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
		assert.Equal(t, "JJ", *u.Nickname)
		return u, nil
	})

	nick := " JJ "
	_, err := svc.Register(context.Background(), models.RegisterRequest{Email: "jane@example.com", Password: "Passw0rd!", Nickname: &nick})
	require.NoError(t, err)
}

func TestAuthService_Register_Errors(t *testing.T) {
	valid := models.RegisterRequest{Email: "jane@example.com", Password: "Passw0rd!"}

	t.Run("validation", func(t *testing.T) {
		svc, _, _ := newTestAuthService(t)
		_, err := svc.Register(context.Background(), models.RegisterRequest{Email: "jane@example.com", Password: "short"})
		require.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("disabled", func(t *testing.T) {
		svc, _, system := newTestAuthService(t)
		system.EXPECT().Get(gomock.Any()).Return(models.SystemSettings{RegistrationEnabled: false}, nil)

		_, err := svc.Register(context.Background(), valid)
		require.ErrorIs(t, err, ErrRegistrationDisabled)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, users, system := newTestAuthService(t)
		system.EXPECT().Get(gomock.Any()).Return(models.SystemSettings{RegistrationEnabled: true}, nil)
		users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

		_, err := svc.Register(context.Background(), valid)
		require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
	})

	t.Run("system settings unreadable", func(t *testing.T) {
		svc, _, system := newTestAuthService(t)
		system.EXPECT().Get(gomock.Any()).Return(models.SystemSettings{}, errors.New("db down"))

		_, err := svc.Register(context.Background(), valid)
		require.Error(t, err)
	})
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name     string
		found    models.User
		findErr  error
		password string
		wantErr  error
	}{
		{"ok", models.User{ID: "u1", PasswordHash: "Passw0rd!"}, nil, "Passw0rd!", nil},
		{"unknown email", models.User{}, store.ErrUserNotFound, "Passw0rd!", ErrInvalidCredentials},
		{"wrong password", models.User{ID: "u1", PasswordHash: "Passw0rd!"}, nil, "nope", ErrInvalidCredentials},
		{"banned", models.User{ID: "u1", PasswordHash: "Passw0rd!", IsBanned: true}, nil, "Passw0rd!", ErrUserBanned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, _ := newTestAuthService(t)
			if tt.found.PasswordHash != "" {
				tt.found.PasswordHash = hashed(t, tt.found.PasswordHash)
			}
			users.EXPECT().FindUserByEmail(gomock.Any(), "jane@example.com").Return(tt.found, tt.findErr)

			user, err := svc.Login(context.Background(), models.LoginRequest{Email: "jane@example.com", Password: tt.password})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u1", user.ID)
		})
	}
}

func TestAuthService_Login_MissingCredentials(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "jane@example.com"})
	require.ErrorIs(t, err, ErrEmailAndPasswordRequired)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{ID: "u1"})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "u1", parsed.UserID)

	users.EXPECT().FindUserByID(ctx, "u1").Return(models.User{ID: "u1"}, nil)
	user, err := svc.Authenticate(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestAuthService_Authenticate_Failures(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, "garbage")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	foreign, err := utils.GenerateJWTToken("hymusic", "u1", time.Hour, "other-key")
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, foreign.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	token, err := svc.CreateToken(ctx, models.User{ID: "u1"})
	require.NoError(t, err)

	users.EXPECT().FindUserByID(ctx, "u1").Return(models.User{}, store.ErrUserNotFound)
	_, err = svc.Authenticate(ctx, token.SignedString)
	require.ErrorIs(t, err, store.ErrUserNotFound)

	users.EXPECT().FindUserByID(ctx, "u1").Return(models.User{ID: "u1", IsBanned: true}, nil)
	user, err := svc.Authenticate(ctx, token.SignedString)
	require.ErrorIs(t, err, ErrUserBanned)
	assert.Equal(t, "u1", user.ID)
}

// ── Profile ──────────────────────────────────────────────────────────────────

func TestAuthService_UpdateProfile(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	ctx := context.Background()

	users.EXPECT().FindUserByID(ctx, "u1").Return(models.User{ID: "u1"}, nil)
	_, err := svc.UpdateProfile(ctx, "u1", models.UpdateProfileRequest{})
	require.NoError(t, err)

	nick := "new"
	update := models.UpdateProfileRequest{Nickname: &nick}
	users.EXPECT().UpdateProfile(ctx, "u1", update).Return(models.User{ID: "u1", Nickname: &nick}, nil)
	user, err := svc.UpdateProfile(ctx, "u1", update)
	require.NoError(t, err)
	assert.Equal(t, "new", *user.Nickname)
}

func TestDefaultNickname(t *testing.T) {
	assert.Equal(t, "jane.doe", defaultNickname("jane.doe@example.com"))
	assert.Equal(t, "plain", defaultNickname("plain"))
}
