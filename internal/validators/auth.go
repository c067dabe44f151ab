// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode"

	"github.com/MKhiriev/hymusic-sync/models"
)

const (
	// FieldEmail checks that the email is present and is a bare address.
	FieldEmail = "email"

	// FieldPassword checks that the password is present.
	FieldPassword = "password"

	// FieldPasswordPolicy checks the password against [PasswordSpecials]
	// policy: at least [MinPasswordLength] characters with a lower-case
	// letter, an upper-case letter, a digit and a special character, and
	// nothing outside those classes.
	FieldPasswordPolicy = "password_policy"
)

const (
	MinPasswordLength = 8
	PasswordSpecials  = "@$!%*?&"
)

type AuthValidator struct{}

func NewAuthValidator() Validator {
	return &AuthValidator{}
}

// Validate checks register and login requests. Registration defaults to
// every rule; login only requires both credentials.
func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		if len(fields) == 0 {
			fields = []string{FieldEmail, FieldPassword, FieldPasswordPolicy}
		}
		return v.validateCredentials(value.Email, value.Password, fields...)
	case *models.RegisterRequest:
		return v.Validate(ctx, *value, fields...)

	case models.LoginRequest:
		if len(fields) == 0 {
			fields = []string{FieldEmail, FieldPassword}
		}
		return v.validateCredentials(value.Email, value.Password, fields...)
	case *models.LoginRequest:
		return v.Validate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthValidator) validateCredentials(email, password string, fields ...string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return ErrEmptyCredentials
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !IsEmail(email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
		case FieldPasswordPolicy:
			if !IsStrongPassword(password) {
				return ErrWeakPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// IsEmail reports whether s is a bare address like "user@example.com".
// Display names ("Bob <bob@example.com>") are rejected.
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	return strings.Contains(s[at+1:], ".")
}

// IsStrongPassword reports whether password satisfies the password policy.
func IsStrongPassword(password string) bool {
	if len(password) < MinPasswordLength {
		return false
	}

	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case r > unicode.MaxASCII:
			return false
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(PasswordSpecials, r):
			special = true
		default:
			return false
		}
	}

	return lower && upper && digit && special
}
