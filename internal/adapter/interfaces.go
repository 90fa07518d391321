// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the remote quote store.
//
// The primary abstraction is [RemoteStore], which decouples the sync engine
// from the transport. Three implementations ship: HTTP/REST
// ([NewHTTPRemoteStore]), gRPC ([NewGRPCRemoteStore]) and an in-process
// simulated remote ([NewSimulatedRemoteStore]) that keeps its collection in
// the session store.
//
// Error values defined in errors.go are mapped from HTTP status codes and
// gRPC status codes so that callers can use [errors.Is] regardless of the
// transport (e.g. [ErrUnauthorized] for 401 / Unauthenticated).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-quote-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore is the remote copy of the quote collection.
type RemoteStore interface {
	// Fetch returns the current remote snapshot. A remote that has never been
	// written returns an empty snapshot, not an error.
	Fetch(ctx context.Context) (models.Snapshot, error)

	// Push overwrites the remote collection with quotes.
	Push(ctx context.Context, quotes []models.Quote) error
}
