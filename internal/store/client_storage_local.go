// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-quote-keeper/models"
)

type localStorage struct {
	kv KeyValueStore
}

// NewLocalStorage returns the durable [LocalStorage] on top of kv.
func NewLocalStorage(kv KeyValueStore) LocalStorage {
	return &localStorage{kv: kv}
}

func (s *localStorage) LoadQuotes(ctx context.Context) ([]models.Quote, error) {
	return loadQuotes(ctx, s.kv, KeyQuotes)
}

func (s *localStorage) SaveQuotes(ctx context.Context, quotes []models.Quote) error {
	return saveJSON(ctx, s.kv, KeyQuotes, models.CloneQuotes(quotes))
}

func (s *localStorage) LoadFilter(ctx context.Context) (string, error) {
	return s.kv.Get(ctx, KeyFilter)
}

func (s *localStorage) SaveFilter(ctx context.Context, filter string) error {
	return s.kv.Put(ctx, KeyFilter, filter)
}

func loadQuotes(ctx context.Context, kv KeyValueStore, key string) ([]models.Quote, error) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var quotes []models.Quote
	if err = json.Unmarshal([]byte(raw), &quotes); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorruptData, key, err)
	}
	if quotes == nil {
		// "null" is not a collection
		return nil, fmt.Errorf("%w: %s holds null", ErrCorruptData, key)
	}

	return quotes, nil
}

func saveJSON(ctx context.Context, kv KeyValueStore, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return kv.Put(ctx, key, string(data))
}
