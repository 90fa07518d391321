// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Snapshot is the remote store's copy of a quote collection.
type Snapshot struct {
	// Namespace identifies whose collection this is on the server.
	// Empty for the simulated in-process remote.
	Namespace string `json:"namespace,omitempty"`

	// Quotes is the full remote collection in insertion order.
	Quotes []Quote `json:"quotes"`

	// Length is len(Quotes). Kept on the wire so clients can compare
	// lengths without counting.
	Length int `json:"length"`

	// Digest is the hex blake2b-256 digest of the canonical JSON encoding
	// of Quotes. Empty when the snapshot has never been written.
	Digest string `json:"digest,omitempty"`

	// UpdatedAt is the time of the last successful push.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// FetchRequest asks the remote for the snapshot of the authenticated
// namespace. It carries no fields today; it exists so the gRPC method has a
// request message.
type FetchRequest struct{}

// PushRequest overwrites the remote snapshot with Quotes.
type PushRequest struct {
	// Quotes is the full local collection.
	Quotes []Quote `json:"quotes"`

	// Length is len(Quotes).
	Length int `json:"length"`

	// Hash is the hex HMAC-SHA256 of the JSON encoding of Quotes, keyed with
	// the shared transport hash key. Empty when no key is configured.
	Hash string `json:"hash,omitempty"`
}

// AuthRequest exchanges a namespace and its access key for a bearer token.
type AuthRequest struct {
	Namespace string `json:"namespace"`
	AccessKey string `json:"access_key"`
}

// AuthResponse carries the issued bearer token.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
