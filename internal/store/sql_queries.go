// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-quote-keeper/models"
)

const (
	snapshotsTable = "snapshots"
	pushLogTable   = "push_log"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var snapshotColumns = []string{"namespace", "quotes", "length", "digest", "updated_at"}

func buildGetSnapshotQuery(namespace string) (string, []any, error) {
	return psql.
		Select(snapshotColumns...).
		From(snapshotsTable).
		Where(sq.Eq{"namespace": namespace}).
		ToSql()
}

func buildUpsertSnapshotQuery(snapshot models.Snapshot, updatedAt time.Time) (string, []any, error) {
	quotesJSON, err := json.Marshal(models.CloneQuotes(snapshot.Quotes))
	if err != nil {
		return "", nil, fmt.Errorf("encode quotes: %w", err)
	}

	return psql.
		Insert(snapshotsTable).
		Columns(snapshotColumns...).
		Values(snapshot.Namespace, string(quotesJSON), len(snapshot.Quotes), snapshot.Digest, updatedAt).
		Suffix(`ON CONFLICT (namespace) DO UPDATE SET
			quotes     = EXCLUDED.quotes,
			length     = EXCLUDED.length,
			digest     = EXCLUDED.digest,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
}

func buildInsertPushLogQuery(snapshot models.Snapshot, pushedAt time.Time) (string, []any, error) {
	return psql.
		Insert(pushLogTable).
		Columns("namespace", "length", "digest", "pushed_at").
		Values(snapshot.Namespace, len(snapshot.Quotes), snapshot.Digest, pushedAt).
		ToSql()
}
