// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
)

// mockWorker tracks Run and Stop calls into a shared event log.
type mockWorker struct {
	id     string
	events *[]string
}

func (m *mockWorker) Run(context.Context) { *m.events = append(*m.events, "run:"+m.id) }
func (m *mockWorker) Stop()               { *m.events = append(*m.events, "stop:"+m.id) }

func TestWorkers_RunInOrder_StopInReverse(t *testing.T) {
	var events []string
	ws := NewWorkers(logger.Nop(),
		&mockWorker{id: "1", events: &events},
		&mockWorker{id: "2", events: &events},
		&mockWorker{id: "3", events: &events},
	)

	ws.Run(context.Background())
	ws.Stop()

	assert.Equal(t, []string{"run:1", "run:2", "run:3", "stop:3", "stop:2", "stop:1"}, events)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers(nil)

	assert.NotPanics(t, func() {
		ws.Run(context.Background())
		ws.Stop()
	})
}

type spyJob struct {
	started  time.Duration
	ctx      context.Context
	stopped  bool
	triggers int
}

func (s *spyJob) Start(ctx context.Context, interval time.Duration) {
	s.ctx = ctx
	s.started = interval
}
func (s *spyJob) Stop()    { s.stopped = true }
func (s *spyJob) Trigger() { s.triggers++ }

func TestSyncWorker_DrivesJob(t *testing.T) {
	job := &spyJob{}
	w := NewSyncWorker(job, 42*time.Second)

	ctx := context.Background()
	w.Run(ctx)
	w.Stop()

	assert.Equal(t, 42*time.Second, job.started)
	assert.Equal(t, ctx, job.ctx)
	assert.True(t, job.stopped)
	assert.Zero(t, job.triggers)
}
