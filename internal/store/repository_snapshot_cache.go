// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/MKhiriev/go-quote-keeper/models"
)

// CacheObserver is notified of cache hits and misses. The server wires its
// prometheus counters here.
type CacheObserver interface {
	CacheHit()
	CacheMiss()
}

// cachedSnapshotRepository fronts another repository with an LRU of the most
// recently read snapshots.
//
// A read miss only fills the cache when no save of the same namespace started
// or finished while the backing read was in flight; gens counts both edges.
type cachedSnapshotRepository struct {
	next     SnapshotRepository
	cache    *lru.Cache[string, models.Snapshot]
	observer CacheObserver

	mu   sync.Mutex
	gens map[string]uint64
}

// NewCachedSnapshotRepository wraps next with an LRU cache of size entries.
// observer may be nil.
func NewCachedSnapshotRepository(next SnapshotRepository, size int, observer CacheObserver) (SnapshotRepository, error) {
	cache, err := lru.New[string, models.Snapshot](size)
	if err != nil {
		return nil, fmt.Errorf("create snapshot cache: %w", err)
	}

	return &cachedSnapshotRepository{
		next:     next,
		cache:    cache,
		observer: observer,
		gens:     make(map[string]uint64),
	}, nil
}

func (r *cachedSnapshotRepository) GetSnapshot(ctx context.Context, namespace string) (models.Snapshot, error) {
	if snapshot, ok := r.cache.Get(namespace); ok {
		if r.observer != nil {
			r.observer.CacheHit()
		}
		return copySnapshot(snapshot), nil
	}
	if r.observer != nil {
		r.observer.CacheMiss()
	}

	gen := r.generation(namespace)
	snapshot, err := r.next.GetSnapshot(ctx, namespace)
	if err != nil {
		return models.Snapshot{}, err
	}

	r.mu.Lock()
	if r.gens[namespace] == gen {
		r.cache.Add(namespace, copySnapshot(snapshot))
	}
	r.mu.Unlock()
	return snapshot, nil
}

// SaveSnapshot writes through and drops the cached entry; the next read
// picks up the timestamp assigned by the backing repository. The entry is
// dropped on both sides of the write, whatever its outcome.
func (r *cachedSnapshotRepository) SaveSnapshot(ctx context.Context, snapshot models.Snapshot) error {
	r.invalidate(snapshot.Namespace)
	defer r.invalidate(snapshot.Namespace)

	return r.next.SaveSnapshot(ctx, snapshot)
}

func (r *cachedSnapshotRepository) generation(namespace string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gens[namespace]
}

func (r *cachedSnapshotRepository) invalidate(namespace string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gens[namespace]++
	r.cache.Remove(namespace)
}
