// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrNotAuthenticated is returned without contacting the server when a
	// call needs a token and none is set.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrTransport wraps network failures: timeouts, refused connections,
	// DNS errors.
	ErrTransport = errors.New("transport failure")

	ErrDecodingResponse = errors.New("failed to decode response")
)
