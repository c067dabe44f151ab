// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"
)

// Workers runs a fixed set of workers concurrently.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and waits for all of them to
// return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}

// Ticker calls fn every interval until its context is cancelled. Ticks are
// evenly spaced; a slow fn makes the ticker drop ticks, not queue them.
type Ticker struct {
	interval time.Duration
	fn       func(ctx context.Context)
}

// NewTicker returns a ticker worker. A non-positive interval defaults to
// five minutes.
func NewTicker(interval time.Duration, fn func(ctx context.Context)) *Ticker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Ticker{interval: interval, fn: fn}
}

func (t *Ticker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.fn(ctx)
		}
	}
}

// Runner owns at most one running worker. Its methods are safe for
// concurrent use.
type Runner struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Start stops the worker started before, if any, then runs w in a background
// goroutine with a context derived from ctx.
func (r *Runner) Start(ctx context.Context, w Worker) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopLocked()
	r.startLocked(ctx, w)
}

// StartIfIdle runs w unless a worker is already running. It reports whether
// w was started.
func (r *Runner) StartIfIdle(ctx context.Context, w Worker) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		return false
	}
	r.startLocked(ctx, w)
	return true
}

// Stop cancels the running worker and blocks until it has returned. Safe to
// call when nothing is running.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopLocked()
}

// Running reports whether a worker was started and not stopped.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancel != nil
}

func (r *Runner) startLocked(ctx context.Context, w Worker) {
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	r.cancel = cancel
	r.done = done

	go func() {
		defer close(done)
		w.Run(runCtx)
	}()
}

func (r *Runner) stopLocked() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	r.cancel = nil
	r.done = nil
}
