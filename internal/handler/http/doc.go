// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the sync server.
//
// It wires chi routes for authentication, sync, administration and
// announcements, and the middleware chain that runs before them: trace id
// injection, access logging, gzip and bearer authentication.
package http
