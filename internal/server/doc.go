// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP API and the gRPC health service of the sync
// server and shuts both down on SIGINT, SIGTERM or SIGQUIT.
package server
