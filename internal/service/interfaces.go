// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-quote-keeper/models"
)

// SnapshotService serves the per-namespace quote snapshot.
type SnapshotService interface {
	// Fetch returns the namespace's snapshot, or an empty one when nothing
	// was pushed yet.
	Fetch(ctx context.Context, namespace string) (models.Snapshot, error)
	// Push replaces the namespace's snapshot with req.Quotes and returns
	// what was stored.
	Push(ctx context.Context, namespace string, req models.PushRequest) (models.Snapshot, error)
}

type AuthService interface {
	// IssueToken checks the namespace's access key and returns a signed token.
	IssueToken(ctx context.Context, req models.AuthRequest) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SnapshotServiceWrapper defines middleware composition for SnapshotService.
// Implementations wrap an existing SnapshotService to add behavior such as
// logging or validating.
type SnapshotServiceWrapper interface {
	Wrap(SnapshotService) SnapshotService // returns a decorated SnapshotService applying additional behavior
}
