// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/store"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// simulatedRemoteStore keeps the "remote" collection in the session store.
// On first access it is initialised from the durable store (or the seed when
// the durable store is empty), so a fresh process starts consistent.
type simulatedRemoteStore struct {
	session store.SessionStorage
	local   store.LocalStorage
	latency time.Duration
	logger  *logger.Logger
}

// NewSimulatedRemoteStore returns an in-process [RemoteStore]. Each call
// waits latency before touching the session store.
func NewSimulatedRemoteStore(session store.SessionStorage, local store.LocalStorage, latency time.Duration, log *logger.Logger) RemoteStore {
	return &simulatedRemoteStore{
		session: session,
		local:   local,
		latency: latency,
		logger:  log,
	}
}

func (s *simulatedRemoteStore) Fetch(ctx context.Context) (models.Snapshot, error) {
	if err := s.wait(ctx); err != nil {
		return models.Snapshot{}, fmt.Errorf("fetch: %w", err)
	}

	quotes, err := s.session.LoadRemoteQuotes(ctx)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrKeyNotFound), errors.Is(err, store.ErrCorruptData):
		quotes, err = s.initialise(ctx)
		if err != nil {
			return models.Snapshot{}, fmt.Errorf("fetch: %w", err)
		}
	default:
		return models.Snapshot{}, fmt.Errorf("fetch: %w", err)
	}

	return models.Snapshot{Quotes: quotes, Length: len(quotes)}, nil
}

func (s *simulatedRemoteStore) Push(ctx context.Context, quotes []models.Quote) error {
	if err := s.wait(ctx); err != nil {
		return fmt.Errorf("push: %w", err)
	}
	if err := s.session.SaveRemoteQuotes(ctx, quotes); err != nil {
		return fmt.Errorf("push: %w", err)
	}
	return nil
}

func (s *simulatedRemoteStore) initialise(ctx context.Context) ([]models.Quote, error) {
	quotes, err := s.local.LoadQuotes(ctx)
	if err != nil {
		s.logger.Debug().Err(err).
			Str("func", "simulatedRemoteStore.initialise").
			Msg("durable store has no usable quotes, seeding remote")
		quotes = models.SeedQuotes()
	}

	if err = s.session.SaveRemoteQuotes(ctx, quotes); err != nil {
		return nil, err
	}
	return models.CloneQuotes(quotes), nil
}

func (s *simulatedRemoteStore) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())
		}
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
