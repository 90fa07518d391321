// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// snapshotRepository is the PostgreSQL-backed [SnapshotRepository]. Every
// save upserts the snapshots row and appends a push_log entry in one
// transaction; transient failures are retried per the DB's classifier.
type snapshotRepository struct {
	*DB
	now      func() time.Time
	attempts int
	backoff  time.Duration
}

// NewSnapshotRepository constructs a [SnapshotRepository] over db.
func NewSnapshotRepository(db *DB) SnapshotRepository {
	return &snapshotRepository{
		DB:       db,
		now:      time.Now,
		attempts: defaultRetryAttempts,
		backoff:  defaultRetryBackoff,
	}
}

func (r *snapshotRepository) GetSnapshot(ctx context.Context, namespace string) (models.Snapshot, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSnapshotQuery(namespace)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var (
		snapshot   models.Snapshot
		quotesJSON []byte
		updatedAt  time.Time
	)
	err = withRetry(ctx, r.errorClassificator, r.attempts, r.backoff, func() error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(
			&snapshot.Namespace,
			&quotesJSON,
			&snapshot.Length,
			&snapshot.Digest,
			&updatedAt,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Snapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.GetSnapshot").
			Str("namespace", namespace).
			Msg("failed to read snapshot")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = json.Unmarshal(quotesJSON, &snapshot.Quotes); err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.GetSnapshot").
			Str("namespace", namespace).
			Msg("stored quotes are not a JSON array")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	snapshot.Quotes = models.CloneQuotes(snapshot.Quotes)
	snapshot.UpdatedAt = &updatedAt

	return snapshot, nil
}

func (r *snapshotRepository) SaveSnapshot(ctx context.Context, snapshot models.Snapshot) error {
	log := logger.FromContext(ctx)

	now := r.now().UTC()
	upsertQuery, upsertArgs, err := buildUpsertSnapshotQuery(snapshot, now)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}
	logQuery, logArgs, err := buildInsertPushLogQuery(snapshot, now)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	err = withRetry(ctx, r.errorClassificator, r.attempts, r.backoff, func() error {
		return r.saveInTx(ctx, upsertQuery, upsertArgs, logQuery, logArgs)
	})
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.SaveSnapshot").
			Str("namespace", snapshot.Namespace).
			Int("length", len(snapshot.Quotes)).
			Msg("failed to save snapshot")
		return err
	}

	log.Debug().
		Str("func", "snapshotRepository.SaveSnapshot").
		Str("namespace", snapshot.Namespace).
		Int("length", len(snapshot.Quotes)).
		Msg("snapshot saved")
	return nil
}

func (r *snapshotRepository) saveInTx(ctx context.Context, upsertQuery string, upsertArgs []any, logQuery string, logArgs []any) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	result, err := tx.ExecContext(ctx, upsertQuery, upsertArgs...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrSnapshotNotSaved
	}

	if _, err = tx.ExecContext(ctx, logQuery, logArgs...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}
	return nil
}
