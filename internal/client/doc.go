// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It holds the Local Store lock, restores or starts a session, runs the sync
// engine in the background and hands the terminal to the UI.
package client
