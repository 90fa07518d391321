// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hash"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/MKhiriev/go-quote-keeper/models"
)

// Hasher computes keyed HMAC-SHA256 signatures. Hash instances are pooled
// per Hasher so concurrent callers do not allocate a new HMAC each time.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with hashKey.
func NewHasher(hashKey string) *Hasher {
	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Hash returns the raw HMAC-SHA256 of data.
func (h *Hasher) Hash(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// HashHex returns the hex-encoded HMAC-SHA256 of data.
func (h *Hasher) HashHex(data []byte) string {
	return hex.EncodeToString(h.Hash(data))
}

// HashQuotes returns the hex HMAC-SHA256 of the JSON encoding of quotes. The
// client sends it with every push and the server recomputes it.
func (h *Hasher) HashQuotes(quotes []models.Quote) (string, error) {
	data, err := json.Marshal(models.CloneQuotes(quotes))
	if err != nil {
		return "", fmt.Errorf("encode quotes for hashing: %w", err)
	}
	return h.HashHex(data), nil
}

// HashString computes an HMAC-SHA256 over data with hashKey and returns it
// hex-encoded. It does not use a pool; suitable for one-off hashing.
func HashString(data string, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

// SnapshotDigest returns the hex blake2b-256 digest of the JSON encoding of
// quotes. Equal collections (same quotes, same order) have equal digests.
func SnapshotDigest(quotes []models.Quote) (string, error) {
	data, err := json.Marshal(models.CloneQuotes(quotes))
	if err != nil {
		return "", fmt.Errorf("encode quotes for digest: %w", err)
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
