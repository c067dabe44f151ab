// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyCredentials = errors.New("email and password are required")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrWeakPassword     = errors.New("password does not satisfy the policy")

	ErrEmptyVideoID     = errors.New("videoId is required")
	ErrEmptyTitle       = errors.New("title is required")
	ErrNegativeDuration = errors.New("duration cannot be negative")
	ErrEmptyLibraryKey  = errors.New("library item id is required")
	ErrTooManyItems     = errors.New("too many items")
	ErrEmptySettings    = errors.New("at least one setting must be provided")
	ErrEmptyContent     = errors.New("content is required")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
