// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
)

const (
	boltDSNPrefix = "bolt://"
	memoryDSN     = "memory"
)

// ClientStorages groups the client-side stores into a single value that is
// passed to the service layer.
type ClientStorages struct {
	// Local is the durable store (SQLite, bbolt or memory).
	Local LocalStorage
	// Session is the process-lifetime store.
	Session SessionStorage
	// Artifacts receives exported snapshots.
	Artifacts ArtifactStore

	closers []KeyValueStore
}

// NewClientStorages initialises the client storage layer:
//  1. Opens the durable key-value store selected by cfg.LocalDSN
//     ("bolt://<path>", "memory", or a SQLite file path, which is migrated).
//  2. Creates a fresh in-memory session store.
//  3. Picks the S3 artifact store when an endpoint is configured, otherwise
//     the directory store.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Debug().Str("func", "NewClientStorages").Str("dsn", cfg.LocalDSN).Msg("creating client storages...")

	durable, err := openDurableKeyValueStore(ctx, cfg.LocalDSN, log)
	if err != nil {
		return nil, err
	}

	session := NewMemoryKeyValueStore()

	var artifacts ArtifactStore
	if cfg.Artifacts.S3.Endpoint != "" {
		artifacts, err = NewS3ArtifactStore(cfg.Artifacts.S3)
		if err != nil {
			durable.Close()
			return nil, fmt.Errorf("s3 artifact store: %w", err)
		}
	} else {
		artifacts = NewDirArtifactStore(cfg.Artifacts.Dir)
	}

	return &ClientStorages{
		Local:     NewLocalStorage(durable),
		Session:   NewSessionStorage(session),
		Artifacts: artifacts,
		closers:   []KeyValueStore{durable, session},
	}, nil
}

// Close releases every underlying store.
func (s *ClientStorages) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

func openDurableKeyValueStore(ctx context.Context, dsn string, log *logger.Logger) (KeyValueStore, error) {
	switch {
	case dsn == "":
		return nil, ErrUnsupportedDSN
	case dsn == memoryDSN:
		return NewMemoryKeyValueStore(), nil
	case strings.HasPrefix(dsn, boltDSNPrefix):
		kv, err := NewBoltKeyValueStore(strings.TrimPrefix(dsn, boltDSNPrefix))
		if err != nil {
			return nil, fmt.Errorf("bolt store: %w", err)
		}
		return kv, nil
	}

	db, err := NewConnectSQLite(ctx, dsn, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}
	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLiteKeyValueStore(db), nil
}
