// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/MKhiriev/go-quote-keeper/models"
)

const testHashKey = "test-secret-key"

func TestHasher_Hash_MatchesHMAC(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("test-data")

	sum1 := h.Hash(data)
	sum2 := h.Hash(data)

	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(data)
	if expected := mac.Sum(nil); !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

func TestHasher_DifferentKeys(t *testing.T) {
	a := NewHasher("key-a").HashHex([]byte("x"))
	b := NewHasher("key-b").HashHex([]byte("x"))
	if a == b {
		t.Fatal("different keys must produce different hashes")
	}
}

func TestHasher_Concurrent(t *testing.T) {
	h := NewHasher(testHashKey)
	want := h.HashHex([]byte("payload"))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := h.HashHex([]byte("payload")); got != want {
				t.Errorf("concurrent hash mismatch: %s != %s", got, want)
			}
		}()
	}
	wg.Wait()
}

func TestHasher_HashQuotes(t *testing.T) {
	h := NewHasher(testHashKey)
	quotes := []models.Quote{{Text: "a", Category: "b"}}

	got, err := h.HashQuotes(quotes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := HashString(`[{"text":"a","category":"b"}]`, testHashKey); got != want {
		t.Fatalf("want %s, got %s", want, got)
	}

	empty, err := h.HashQuotes(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := HashString(`[]`, testHashKey); empty != want {
		t.Fatalf("nil quotes must hash like an empty array")
	}
}

func TestHashString(t *testing.T) {
	got := HashString("data", "key")
	if _, err := hex.DecodeString(got); err != nil {
		t.Fatalf("expected hex output, got %q", got)
	}
	if len(got) != sha256.Size*2 {
		t.Fatalf("expected %d hex chars, got %d", sha256.Size*2, len(got))
	}
}

func TestSnapshotDigest(t *testing.T) {
	q1 := []models.Quote{{Text: "a", Category: "x"}, {Text: "b", Category: "y"}}
	q2 := []models.Quote{{Text: "b", Category: "y"}, {Text: "a", Category: "x"}}

	d1, err := SnapshotDigest(q1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, _ := SnapshotDigest(models.CloneQuotes(q1))
	reordered, _ := SnapshotDigest(q2)

	if d1 != again {
		t.Fatal("digest must be deterministic")
	}
	if d1 == reordered {
		t.Fatal("digest must depend on order")
	}
	if len(d1) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(d1))
	}
}
