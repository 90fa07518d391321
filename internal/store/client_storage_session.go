// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-quote-keeper/models"
)

type sessionStorage struct {
	kv KeyValueStore
}

// NewSessionStorage returns a [SessionStorage] on top of kv. Callers pass a
// memory store so that session values die with the process.
func NewSessionStorage(kv KeyValueStore) SessionStorage {
	return &sessionStorage{kv: kv}
}

func (s *sessionStorage) LoadLastViewed(ctx context.Context) (models.Quote, error) {
	raw, err := s.kv.Get(ctx, KeyLastViewed)
	if err != nil {
		return models.Quote{}, err
	}

	var q models.Quote
	if err = json.Unmarshal([]byte(raw), &q); err != nil {
		return models.Quote{}, fmt.Errorf("%w: %s: %w", ErrCorruptData, KeyLastViewed, err)
	}
	return q, nil
}

func (s *sessionStorage) SaveLastViewed(ctx context.Context, quote models.Quote) error {
	return saveJSON(ctx, s.kv, KeyLastViewed, quote)
}

func (s *sessionStorage) LoadRemoteQuotes(ctx context.Context) ([]models.Quote, error) {
	return loadQuotes(ctx, s.kv, KeyRemoteQuotes)
}

func (s *sessionStorage) SaveRemoteQuotes(ctx context.Context, quotes []models.Quote) error {
	return saveJSON(ctx, s.kv, KeyRemoteQuotes, models.CloneQuotes(quotes))
}

// LoadPending returns false when the flag was never written.
func (s *sessionStorage) LoadPending(ctx context.Context) (bool, error) {
	raw, err := s.kv.Get(ctx, KeyPending)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}

	pending, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrCorruptData, KeyPending, err)
	}
	return pending, nil
}

func (s *sessionStorage) SavePending(ctx context.Context, pending bool) error {
	return s.kv.Put(ctx, KeyPending, strconv.FormatBool(pending))
}
