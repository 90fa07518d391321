// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/models"
)

type countingObserver struct {
	hits, misses int
}

func (o *countingObserver) CacheHit()  { o.hits++ }
func (o *countingObserver) CacheMiss() { o.misses++ }

type countingRepository struct {
	SnapshotRepository
	gets int
}

func (r *countingRepository) GetSnapshot(ctx context.Context, namespace string) (models.Snapshot, error) {
	r.gets++
	return r.SnapshotRepository.GetSnapshot(ctx, namespace)
}

// slowSaveRepository parks SaveSnapshot until release is closed, after the
// write has reached the backing repository or before it, per saveFirst.
type slowSaveRepository struct {
	SnapshotRepository
	saveFirst bool
	entered   chan struct{}
	release   chan struct{}
}

func (r *slowSaveRepository) SaveSnapshot(ctx context.Context, snapshot models.Snapshot) error {
	if r.saveFirst {
		if err := r.SnapshotRepository.SaveSnapshot(ctx, snapshot); err != nil {
			return err
		}
	}
	close(r.entered)
	<-r.release
	if r.saveFirst {
		return nil
	}
	return r.SnapshotRepository.SaveSnapshot(ctx, snapshot)
}

// ── memory ───────────────────────────────────────────────────────────────────

func TestMemorySnapshotRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySnapshotRepository()

	_, err := repo.GetSnapshot(ctx, "alice")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	quotes := []models.Quote{{Text: "a", Category: "x"}}
	require.NoError(t, repo.SaveSnapshot(ctx, models.Snapshot{Namespace: "alice", Quotes: quotes, Digest: "d"}))

	got, err := repo.GetSnapshot(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, quotes, got.Quotes)
	assert.Equal(t, 1, got.Length)
	assert.NotNil(t, got.UpdatedAt)

	got.Quotes[0].Text = "mutated"
	again, err := repo.GetSnapshot(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "a", again.Quotes[0].Text)

	_, err = repo.GetSnapshot(ctx, "bob")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

// ── cache ────────────────────────────────────────────────────────────────────

func TestCachedSnapshotRepository(t *testing.T) {
	ctx := context.Background()
	backing := &countingRepository{SnapshotRepository: NewMemorySnapshotRepository()}
	observer := &countingObserver{}

	repo, err := NewCachedSnapshotRepository(backing, 8, observer)
	require.NoError(t, err)

	require.NoError(t, repo.SaveSnapshot(ctx, models.Snapshot{Namespace: "alice", Quotes: []models.Quote{{Text: "a", Category: "x"}}}))

	_, err = repo.GetSnapshot(ctx, "alice")
	require.NoError(t, err)
	_, err = repo.GetSnapshot(ctx, "alice")
	require.NoError(t, err)

	assert.Equal(t, 1, backing.gets)
	assert.Equal(t, 1, observer.hits)
	assert.Equal(t, 1, observer.misses)

	require.NoError(t, repo.SaveSnapshot(ctx, models.Snapshot{Namespace: "alice", Quotes: []models.Quote{}}))
	got, err := repo.GetSnapshot(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, got.Quotes)
	assert.Equal(t, 2, backing.gets)
}

func TestCachedSnapshotRepository_ReadDuringSaveIsNotKept(t *testing.T) {
	for name, saveFirst := range map[string]bool{"read before write": false, "read after write": true} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			backing := &slowSaveRepository{
				SnapshotRepository: NewMemorySnapshotRepository(),
				saveFirst:          saveFirst,
				entered:            make(chan struct{}),
				release:            make(chan struct{}),
			}
			repo, err := NewCachedSnapshotRepository(backing, 8, nil)
			require.NoError(t, err)

			one := []models.Quote{{Text: "a", Category: "b"}}
			two := []models.Quote{{Text: "a", Category: "b"}, {Text: "c", Category: "d"}}
			require.NoError(t, backing.SnapshotRepository.SaveSnapshot(ctx, models.Snapshot{Namespace: "ns", Quotes: one}))

			saved := make(chan error, 1)
			go func() {
				saved <- repo.SaveSnapshot(ctx, models.Snapshot{Namespace: "ns", Quotes: two})
			}()
			<-backing.entered

			_, err = repo.GetSnapshot(ctx, "ns")
			require.NoError(t, err)

			close(backing.release)
			require.NoError(t, <-saved)

			got, err := repo.GetSnapshot(ctx, "ns")
			require.NoError(t, err)
			assert.Equal(t, two, got.Quotes)
		})
	}
}

func TestCachedSnapshotRepository_MissesAreNotCached(t *testing.T) {
	ctx := context.Background()
	backing := &countingRepository{SnapshotRepository: NewMemorySnapshotRepository()}

	repo, err := NewCachedSnapshotRepository(backing, 8, nil)
	require.NoError(t, err)

	for range 2 {
		_, err = repo.GetSnapshot(ctx, "ghost")
		assert.ErrorIs(t, err, ErrSnapshotNotFound)
	}
	assert.Equal(t, 2, backing.gets)
}

func TestNewCachedSnapshotRepository_InvalidSize(t *testing.T) {
	_, err := NewCachedSnapshotRepository(NewMemorySnapshotRepository(), 0, nil)
	assert.Error(t, err)
}

// ── NewStorages ──────────────────────────────────────────────────────────────

func TestNewStorages_MemoryWithCache(t *testing.T) {
	storages, err := NewStorages(context.Background(), config.ServerStorage{CacheSize: 4}, nil, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	assert.IsType(t, &cachedSnapshotRepository{}, storages.SnapshotRepository)
}

func TestNewStorages_MemoryWithoutCache(t *testing.T) {
	storages, err := NewStorages(context.Background(), config.ServerStorage{CacheSize: -1}, nil, logger.Nop())
	require.NoError(t, err)

	assert.IsType(t, &memorySnapshotRepository{}, storages.SnapshotRepository)
	assert.NoError(t, storages.Close())
}
