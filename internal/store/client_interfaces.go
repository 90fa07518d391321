// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-quote-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Keys used by the client stores.
const (
	// KeyQuotes holds the JSON array of the local quote collection.
	KeyQuotes = "inspirationalQuotes"
	// KeyFilter holds the last selected category filter as a plain string.
	KeyFilter = "lastSelectedFilter"
	// KeyLastViewed holds the JSON object of the last viewed quote.
	KeyLastViewed = "lastViewedQuote"
	// KeyRemoteQuotes holds the simulated remote collection.
	KeyRemoteQuotes = "remoteQuotes"
	// KeyPending mirrors the pending local change flag.
	KeyPending = "pendingLocalChange"
)

// KeyValueStore is a minimal string key-value store. Durable and session
// storages are built on top of it.
type KeyValueStore interface {
	// Get returns the value stored under key or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the underlying resources.
	Close() error
}

// LocalStorage is the durable client store. It survives restarts.
type LocalStorage interface {
	// LoadQuotes returns the persisted collection, [ErrKeyNotFound] when
	// nothing was saved yet, or [ErrCorruptData] when the stored value does
	// not decode as a quote array.
	LoadQuotes(ctx context.Context) ([]models.Quote, error)
	SaveQuotes(ctx context.Context, quotes []models.Quote) error
	// LoadFilter returns the last selected filter or [ErrKeyNotFound].
	LoadFilter(ctx context.Context) (string, error)
	SaveFilter(ctx context.Context, filter string) error
}

// SessionStorage holds process-lifetime state. Nothing in it is durable.
type SessionStorage interface {
	LoadLastViewed(ctx context.Context) (models.Quote, error)
	SaveLastViewed(ctx context.Context, quote models.Quote) error
	LoadRemoteQuotes(ctx context.Context) ([]models.Quote, error)
	SaveRemoteQuotes(ctx context.Context, quotes []models.Quote) error
	LoadPending(ctx context.Context) (bool, error)
	SavePending(ctx context.Context, pending bool) error
}

// ArtifactStore receives exported snapshots.
type ArtifactStore interface {
	// Save stores data under name and returns where it ended up
	// (a file path or an object URL).
	Save(ctx context.Context, name string, data []byte) (string, error)
}
