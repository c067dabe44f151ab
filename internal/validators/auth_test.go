// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/hymusic-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthValidator_Register(t *testing.T) {
	v := NewAuthValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr error
	}{
		{"valid", models.RegisterRequest{Email: "user@example.com", Password: "Passw0rd!"}, nil},
		{"missing email", models.RegisterRequest{Password: "Passw0rd!"}, ErrEmptyCredentials},
		{"blank email", models.RegisterRequest{Email: "   ", Password: "Passw0rd!"}, ErrEmptyCredentials},
		{"missing password", models.RegisterRequest{Email: "user@example.com"}, ErrEmptyCredentials},
		{"no at sign", models.RegisterRequest{Email: "user.example.com", Password: "Passw0rd!"}, ErrInvalidEmail},
		{"no dot in domain", models.RegisterRequest{Email: "user@localhost", Password: "Passw0rd!"}, ErrInvalidEmail},
		{"display name", models.RegisterRequest{Email: "Bob <bob@example.com>", Password: "Passw0rd!"}, ErrInvalidEmail},
		{"weak password", models.RegisterRequest{Email: "user@example.com", Password: "password"}, ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("pointer", func(t *testing.T) {
		req := &models.RegisterRequest{Email: "user@example.com", Password: "Passw0rd!"}
		require.NoError(t, v.Validate(ctx, req))
	})
}

func TestAuthValidator_Login(t *testing.T) {
	v := NewAuthValidator()
	ctx := context.Background()

	// login never applies the password policy
	require.NoError(t, v.Validate(ctx, models.LoginRequest{Email: "user@example.com", Password: "x"}))
	require.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Email: "user@example.com"}), ErrEmptyCredentials)
	require.ErrorIs(t, v.Validate(ctx, &models.LoginRequest{Password: "x"}), ErrEmptyCredentials)
}

func TestAuthValidator_Fields(t *testing.T) {
	v := NewAuthValidator()
	ctx := context.Background()
	req := models.RegisterRequest{Email: "not-an-email", Password: "weak"}

	require.NoError(t, v.Validate(ctx, req, FieldPassword))
	require.ErrorIs(t, v.Validate(ctx, req, FieldPasswordPolicy), ErrWeakPassword)
	require.ErrorIs(t, v.Validate(ctx, req, FieldEmail), ErrInvalidEmail)
	require.ErrorIs(t, v.Validate(ctx, req, "nickname"), ErrUnknownField)
}

func TestAuthValidator_UnsupportedType(t *testing.T) {
	require.ErrorIs(t, NewAuthValidator().Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Passw0rd!", true},
		{"Aa1@Aa1@", true},
		{"Aa1@Aa1", false},    // too short
		{"passw0rd!", false},  // no upper
		{"PASSW0RD!", false},  // no lower
		{"Password!", false},  // no digit
		{"Passw0rdd", false},  // no special
		{"Passw0rd#", false},  // '#' is outside the allowed set
		{"Pass w0rd!", false}, // space
		{"Pässw0rd!", false},  // non-ascii
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStrongPassword(tt.password))
		})
	}
}
