// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(log *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: log}
}

// NewClientWorkers builds the client's worker set from its services.
func NewClientWorkers(services *service.ClientServices, cfg config.ClientWorkers, log *logger.Logger) *Workers {
	return NewWorkers(log, NewSyncWorker(services.SyncJob, cfg.SyncInterval))
}

// Run starts every worker in order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
	if w.logger != nil {
		w.logger.Debug().Int("count", len(w.workers)).Msg("workers started")
	}
}

// Stop stops every worker in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// SyncWorker drives a [service.ClientSyncJob] at a fixed interval.
type SyncWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
}

func NewSyncWorker(job service.ClientSyncJob, interval time.Duration) *SyncWorker {
	return &SyncWorker{job: job, interval: interval}
}

func (s *SyncWorker) Run(ctx context.Context) {
	s.job.Start(ctx, s.interval)
}

func (s *SyncWorker) Stop() {
	s.job.Stop()
}
