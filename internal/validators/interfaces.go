// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach storage.
//
// The auth validator covers registration, login and profile updates. The
// sync validator covers the collection uploads and announcement payloads.
// Both return errors wrapping the sentinels in errors.go, so callers can map
// them with errors.Is.
package validators

import "context"

// Validator checks one payload. Fields optionally narrows the check to the
// named parts of the payload; an empty list checks everything.
type Validator interface {
	Validate(ctx context.Context, payload any, fields ...string) error
}
