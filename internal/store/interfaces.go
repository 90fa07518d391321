// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-quote-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SnapshotRepository persists one quote snapshot per namespace on the server.
type SnapshotRepository interface {
	// GetSnapshot returns the stored snapshot or [ErrSnapshotNotFound].
	GetSnapshot(ctx context.Context, namespace string) (models.Snapshot, error)
	// SaveSnapshot replaces the namespace's snapshot.
	SaveSnapshot(ctx context.Context, snapshot models.Snapshot) error
}
