// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-quote-keeper/internal/config"
)

// DefaultSyncInterval is used when Start receives a non-positive interval.
const DefaultSyncInterval = config.DefaultSyncInterval

type clientSyncJob struct {
	engine QuoteService

	// triggers holds at most one pending mutation-driven pass.
	triggers chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a job that runs engine.Reconcile on a ticker and on
// every Trigger, and attaches itself to engine as its trigger. The job is idle
// until Start is called.
func NewClientSyncJob(engine QuoteService) ClientSyncJob {
	job := &clientSyncJob{
		engine:   engine,
		triggers: make(chan struct{}, 1),
	}
	engine.SetTrigger(job)
	return job
}

// Trigger implements Trigger. It never blocks: if a pass is already queued
// the request is merged into it.
func (j *clientSyncJob) Trigger() {
	select {
	case j.triggers <- struct{}{}:
	default:
	}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches one goroutine serving both the ticker and triggers, so passes
// never overlap. If interval is zero or negative it defaults to
// DefaultSyncInterval. The goroutine exits when ctx is cancelled or Stop is
// called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_, _ = j.engine.Reconcile(jobCtx)
			case <-j.triggers:
				_, _ = j.engine.Reconcile(jobCtx)
			}
		}
	}()
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
