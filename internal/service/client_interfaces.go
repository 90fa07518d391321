// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-quote-keeper/models"
)

// Sink receives everything the engine wants to show. The TUI and the
// non-interactive CLI each provide one. Implementations must not call back
// into the engine synchronously.
type Sink interface {
	// ShowQuote displays a single quote. restored is true when the quote
	// comes from the previous session rather than a fresh random pick.
	ShowQuote(quote models.Quote, restored bool)

	// ShowList displays every quote matching filter.
	ShowList(filter string, quotes []models.Quote)

	// ShowEmpty reports that filter matches nothing.
	ShowEmpty(filter string)

	// SetCategories replaces the category options; selected is the active one.
	SetCategories(categories []string, selected string)

	// Notify shows a transient sync-status message.
	Notify(notification models.Notification)
}

// Trigger requests a reconcile pass without waiting for it.
type Trigger interface {
	Trigger()
}

// QuoteService is the client's quote engine: it owns the collection, keeps it
// in the durable store and reconciles it with the remote store.
type QuoteService interface {
	// Load restores the collection from the durable store, falling back to
	// the seed when nothing usable is stored, and publishes the categories.
	Load(ctx context.Context) error

	// AddQuote trims and validates text and category, appends the quote,
	// persists, marks a pending local change and requests a reconcile pass.
	AddQuote(ctx context.Context, text, category string) (models.Quote, error)

	// ImportQuotes validates raw as a whole (all-or-nothing), then appends
	// every candidate whose key is not yet present.
	ImportQuotes(ctx context.Context, raw []byte) (models.ImportResult, error)

	// ImportJSON reads an import payload from r and calls ImportQuotes.
	ImportJSON(ctx context.Context, r io.Reader) (models.ImportResult, error)

	// ExportSnapshot returns the collection as indented JSON.
	ExportSnapshot(ctx context.Context) ([]byte, error)

	// Export writes ExportSnapshot under [ExportFileName] of now to the
	// artifact store and returns its location.
	Export(ctx context.Context, now time.Time) (string, error)

	// SelectRandom picks a uniformly random quote matching filter and
	// records it as the last viewed one.
	SelectRandom(ctx context.Context, filter string) (models.Quote, error)

	// ListCategories returns the distinct categories in first-seen order.
	ListCategories() []string

	// Filter shows and returns every quote matching category and remembers
	// category as the last selected filter.
	Filter(ctx context.Context, category string) ([]models.Quote, error)

	// LastFilter returns the remembered filter if it still selects something
	// meaningful, otherwise [models.AllCategories].
	LastFilter(ctx context.Context) string

	// LastViewed returns the quote last shown in this session.
	LastViewed(ctx context.Context) (models.Quote, bool)

	// Quotes returns a copy of the collection.
	Quotes() []models.Quote

	// State returns the current sync state.
	State() models.SyncState

	// Reconcile runs one reconcile pass against the remote store.
	Reconcile(ctx context.Context) (models.SyncReport, error)

	// SetTrigger routes mutation-triggered passes through t.
	SetTrigger(t Trigger)
}

// ClientSyncJob runs reconcile passes in the background: on a ticker and on
// demand. Passes never overlap.
type ClientSyncJob interface {
	Trigger

	// Start launches the background goroutine. It reconciles every interval,
	// defaulting to [DefaultSyncInterval] if interval is zero or negative.
	// Any previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
