// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	SnapshotRepository SnapshotRepository

	db *DB
}

// NewStorages opens PostgreSQL and runs migrations when cfg.DSN is set,
// otherwise keeps snapshots in memory. A positive cfg.CacheSize fronts the
// repository with an LRU cache reporting to observer.
func NewStorages(ctx context.Context, cfg config.ServerStorage, observer CacheObserver, log *logger.Logger) (*Storages, error) {
	log.Info().Str("func", "NewStorages").Msg("creating new storages...")

	storages := &Storages{}

	if cfg.DSN == "" {
		log.Warn().Str("func", "NewStorages").Msg("no database DSN configured, snapshots are kept in memory")
		storages.SnapshotRepository = NewMemorySnapshotRepository()
	} else {
		db, err := NewConnectPostgres(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		storages.db = db
		storages.SnapshotRepository = NewSnapshotRepository(db)
	}

	if cfg.CacheSize > 0 {
		cached, err := NewCachedSnapshotRepository(storages.SnapshotRepository, cfg.CacheSize, observer)
		if err != nil {
			storages.Close()
			return nil, err
		}
		storages.SnapshotRepository = cached
	}

	return storages, nil
}

// Close closes the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
