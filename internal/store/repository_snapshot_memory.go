// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-quote-keeper/models"
)

// memorySnapshotRepository keeps snapshots in a map. Used when the server
// runs without a database.
type memorySnapshotRepository struct {
	mu        sync.RWMutex
	snapshots map[string]models.Snapshot
	now       func() time.Time
}

// NewMemorySnapshotRepository returns an empty in-memory [SnapshotRepository].
func NewMemorySnapshotRepository() SnapshotRepository {
	return &memorySnapshotRepository{
		snapshots: make(map[string]models.Snapshot),
		now:       time.Now,
	}
}

func (r *memorySnapshotRepository) GetSnapshot(_ context.Context, namespace string) (models.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot, ok := r.snapshots[namespace]
	if !ok {
		return models.Snapshot{}, ErrSnapshotNotFound
	}
	return copySnapshot(snapshot), nil
}

func (r *memorySnapshotRepository) SaveSnapshot(_ context.Context, snapshot models.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := copySnapshot(snapshot)
	saved.Length = len(saved.Quotes)
	updatedAt := r.now().UTC()
	saved.UpdatedAt = &updatedAt

	r.snapshots[snapshot.Namespace] = saved
	return nil
}

func copySnapshot(s models.Snapshot) models.Snapshot {
	s.Quotes = models.CloneQuotes(s.Quotes)
	if s.UpdatedAt != nil {
		t := *s.UpdatedAt
		s.UpdatedAt = &t
	}
	return s
}
