// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs background loops of the client: the periodic upload
// pass, the mutation upload flusher and the login state watcher.
//
// A [Worker] blocks until its context is cancelled. [Runner] owns one
// running worker and stops it on demand, [Workers] runs several side by side.
package workers

import "context"

// Worker is a background loop. Run returns once ctx is cancelled.
//
// Example implementation:
//
//	type heartbeat struct{}
//
//	func (heartbeat) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context)

func (f WorkerFunc) Run(ctx context.Context) {
	f(ctx)
}
