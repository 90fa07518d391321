// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
)

// sqliteKeyValueStore keeps client values in the kv table of a SQLite file.
type sqliteKeyValueStore struct {
	*DB
}

// NewSQLiteKeyValueStore returns a [KeyValueStore] over an already migrated
// SQLite connection.
func NewSQLiteKeyValueStore(db *DB) KeyValueStore {
	return &sqliteKeyValueStore{DB: db}
}

func (s *sqliteKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	err := s.DB.QueryRowContext(ctx, getKeyValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqliteKeyValueStore.Get").
			Str("key", key).
			Msg("failed to read value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteKeyValueStore) Put(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	if _, err := s.DB.ExecContext(ctx, putKeyValue, key, value); err != nil {
		log.Err(err).
			Str("func", "sqliteKeyValueStore.Put").
			Str("key", key).
			Msg("failed to write value")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *sqliteKeyValueStore) Delete(ctx context.Context, key string) error {
	if _, err := s.DB.ExecContext(ctx, deleteKeyValue, key); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqliteKeyValueStore.Delete").
			Str("key", key).
			Msg("failed to delete value")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *sqliteKeyValueStore) Close() error {
	return s.DB.Close()
}
