// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/store"
	"github.com/MKhiriev/go-quote-keeper/internal/utils"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// PushObserver is told about every stored push. The server wires its
// prometheus counters here.
type PushObserver interface {
	SnapshotPushed(namespace string, length int)
}

// snapshotService stores whatever the client pushes. It does not compare
// lengths: conflict resolution happens on the client.
type snapshotService struct {
	repository store.SnapshotRepository
	observer   PushObserver
	now        func() time.Time

	logger *logger.Logger
}

// NewSnapshotService builds a SnapshotService over repository. observer may
// be nil.
func NewSnapshotService(repository store.SnapshotRepository, observer PushObserver, logger *logger.Logger) SnapshotService {
	return &snapshotService{
		repository: repository,
		observer:   observer,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *snapshotService) Fetch(ctx context.Context, namespace string) (models.Snapshot, error) {
	log := logger.FromContext(ctx)

	snapshot, err := s.repository.GetSnapshot(ctx, namespace)
	if errors.Is(err, store.ErrSnapshotNotFound) {
		return models.Snapshot{Namespace: namespace, Quotes: []models.Quote{}}, nil
	}
	if err != nil {
		log.Err(err).Str("func", "snapshotService.Fetch").Str("namespace", namespace).Msg("error getting snapshot")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrSnapshotStorage, err)
	}

	snapshot.Quotes = models.CloneQuotes(snapshot.Quotes)
	snapshot.Length = len(snapshot.Quotes)
	return snapshot, nil
}

func (s *snapshotService) Push(ctx context.Context, namespace string, req models.PushRequest) (models.Snapshot, error) {
	log := logger.FromContext(ctx)

	quotes := models.CloneQuotes(req.Quotes)
	digest, err := utils.SnapshotDigest(quotes)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := s.now().UTC()
	snapshot := models.Snapshot{
		Namespace: namespace,
		Quotes:    quotes,
		Length:    len(quotes),
		Digest:    digest,
		UpdatedAt: &now,
	}

	if err = s.repository.SaveSnapshot(ctx, snapshot); err != nil {
		log.Err(err).Str("func", "snapshotService.Push").Str("namespace", namespace).Msg("error saving snapshot")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrSnapshotStorage, err)
	}

	if s.observer != nil {
		s.observer.SnapshotPushed(namespace, snapshot.Length)
	}

	log.Info().
		Str("func", "snapshotService.Push").
		Str("namespace", namespace).
		Int("length", snapshot.Length).
		Msg("snapshot stored")

	return snapshot, nil
}
