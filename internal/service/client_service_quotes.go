// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/MKhiriev/go-quote-keeper/internal/adapter"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/store"
	"github.com/MKhiriev/go-quote-keeper/internal/validators"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// exportTimeLayout renders export file names as quotes_YYYY-MM-DD-HH-MM-SS.json.
const exportTimeLayout = "2006-01-02-15-04-05"

// ExportFileName returns the artifact name for an export taken at t (UTC).
func ExportFileName(t time.Time) string {
	return "quotes_" + t.UTC().Format(exportTimeLayout) + ".json"
}

// QuoteServiceDeps are the collaborators of the quote engine.
type QuoteServiceDeps struct {
	Local     store.LocalStorage
	Session   store.SessionStorage
	Artifacts store.ArtifactStore
	Remote    adapter.RemoteStore
	Sink      Sink
}

// QuoteServiceOptions tune timing.
type QuoteServiceOptions struct {
	// RequestTimeout bounds every fetch and push. Zero means no extra bound.
	RequestTimeout time.Duration
	// NotifyResetDelay is how long a sync notification stays before the
	// sink is reset to the idle message.
	NotifyResetDelay time.Duration
}

// quoteEngine is the concrete [QuoteService].
//
// mu guards quotes, state and filter and is held for a whole reconcile pass,
// remote I/O included, so adds, imports and passes never interleave.
type quoteEngine struct {
	local     store.LocalStorage
	session   store.SessionStorage
	artifacts store.ArtifactStore
	remote    adapter.RemoteStore
	sink      Sink
	validator validators.Validator

	requestTimeout time.Duration
	notifyDelay    time.Duration
	randIntN       func(n int) int

	mu     sync.Mutex
	quotes []models.Quote
	state  models.SyncState
	filter string

	triggerMu sync.RWMutex
	trigger   Trigger

	// notifyGen counts notifications; an idle reset only applies to the
	// generation it was scheduled for.
	notifyMu  sync.Mutex
	notifyGen uint64
	idleTimer *time.Timer

	logger *logger.Logger
}

// NewQuoteService constructs the quote engine. The collection starts empty
// until Load is called.
func NewQuoteService(deps QuoteServiceDeps, opts QuoteServiceOptions, log *logger.Logger) QuoteService {
	return &quoteEngine{
		local:          deps.Local,
		session:        deps.Session,
		artifacts:      deps.Artifacts,
		remote:         deps.Remote,
		sink:           deps.Sink,
		validator:      validators.NewQuoteValidator(),
		requestTimeout: opts.RequestTimeout,
		notifyDelay:    opts.NotifyResetDelay,
		randIntN:       rand.IntN,
		quotes:         []models.Quote{},
		filter:         models.AllCategories,
		logger:         log,
	}
}

func (e *quoteEngine) SetTrigger(t Trigger) {
	e.triggerMu.Lock()
	defer e.triggerMu.Unlock()
	e.trigger = t
}

func (e *quoteEngine) Load(ctx context.Context) error {
	quotes, err := e.local.LoadQuotes(ctx)
	switch {
	case err == nil:
		if verr := e.validator.Validate(ctx, quotes); verr != nil {
			e.logger.Warn().Err(verr).
				Str("func", "quoteEngine.Load").
				Msg("stored quotes are invalid, falling back to seed collection")
			quotes = models.SeedQuotes()
		}
	case errors.Is(err, store.ErrKeyNotFound):
		e.logger.Info().Str("func", "quoteEngine.Load").Msg("no stored quotes, using seed collection")
		quotes = models.SeedQuotes()
	case errors.Is(err, store.ErrCorruptData):
		e.logger.Warn().Err(err).
			Str("func", "quoteEngine.Load").
			Msg("stored quotes are corrupt, falling back to seed collection")
		quotes = models.SeedQuotes()
	default:
		e.logger.Err(err).Str("func", "quoteEngine.Load").Msg("failed to read durable store")
		return fmt.Errorf("load quotes: %w", err)
	}

	pending, err := e.session.LoadPending(ctx)
	if err != nil {
		e.logger.Warn().Err(err).Str("func", "quoteEngine.Load").Msg("could not read pending flag, assuming none")
		pending = false
	}

	e.mu.Lock()
	e.quotes = quotes
	e.state.PendingLocalChange = pending
	e.filter = e.restoreFilter(ctx)
	categories, filter := models.Categories(e.quotes), e.filter
	e.mu.Unlock()

	e.sink.SetCategories(categories, filter)
	return nil
}

func (e *quoteEngine) AddQuote(ctx context.Context, text, category string) (models.Quote, error) {
	quote := models.NewQuote(text, category)
	if err := e.validator.Validate(ctx, quote); err != nil {
		return models.Quote{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	e.mu.Lock()
	next := append(models.CloneQuotes(e.quotes), quote)
	if err := e.commit(ctx, next); err != nil {
		e.mu.Unlock()
		return models.Quote{}, err
	}
	categories, filter := models.Categories(e.quotes), e.filter
	e.mu.Unlock()

	e.logger.Debug().
		Str("func", "quoteEngine.AddQuote").
		Str("category", quote.Category).
		Msg("quote added")

	e.sink.SetCategories(categories, filter)
	e.requestReconcile()
	return quote, nil
}

func (e *quoteEngine) ImportQuotes(ctx context.Context, raw []byte) (models.ImportResult, error) {
	candidates, err := validators.ParseImport(raw)
	if err != nil {
		return models.ImportResult{}, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	e.mu.Lock()
	next := models.CloneQuotes(e.quotes)
	keys := make(map[string]struct{}, len(next)+len(candidates))
	for _, q := range next {
		keys[q.Key()] = struct{}{}
	}

	result := models.ImportResult{Total: len(candidates)}
	for _, c := range candidates {
		key := c.Key()
		if _, ok := keys[key]; ok {
			continue
		}
		keys[key] = struct{}{}
		next = append(next, c)
		result.Added++
	}

	if err = e.commit(ctx, next); err != nil {
		e.mu.Unlock()
		return models.ImportResult{}, err
	}
	categories, filter := models.Categories(e.quotes), e.filter
	e.mu.Unlock()

	e.logger.Info().
		Str("func", "quoteEngine.ImportQuotes").
		Int("total", result.Total).
		Int("added", result.Added).
		Msg("import finished")

	e.sink.SetCategories(categories, filter)
	e.requestReconcile()
	return result, nil
}

func (e *quoteEngine) ImportJSON(ctx context.Context, r io.Reader) (models.ImportResult, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return models.ImportResult{}, fmt.Errorf("read import payload: %w", err)
	}
	return e.ImportQuotes(ctx, raw)
}

func (e *quoteEngine) ExportSnapshot(_ context.Context) ([]byte, error) {
	quotes := e.Quotes()

	data, err := json.MarshalIndent(quotes, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return data, nil
}

func (e *quoteEngine) Export(ctx context.Context, now time.Time) (string, error) {
	data, err := e.ExportSnapshot(ctx)
	if err != nil {
		return "", err
	}

	location, err := e.artifacts.Save(ctx, ExportFileName(now), data)
	if err != nil {
		e.logger.Err(err).Str("func", "quoteEngine.Export").Msg("failed to save export")
		return "", fmt.Errorf("save export: %w", err)
	}
	return location, nil
}

func (e *quoteEngine) SelectRandom(ctx context.Context, filter string) (models.Quote, error) {
	e.mu.Lock()
	matching := filterQuotes(e.quotes, filter)
	if len(matching) == 0 {
		e.mu.Unlock()
		e.sink.ShowEmpty(filter)
		return models.Quote{}, ErrEmptySelection
	}
	quote := matching[e.randIntN(len(matching))]
	e.mu.Unlock()

	if err := e.session.SaveLastViewed(ctx, quote); err != nil {
		e.logger.Warn().Err(err).Str("func", "quoteEngine.SelectRandom").Msg("could not remember last viewed quote")
	}

	e.sink.ShowQuote(quote, false)
	return quote, nil
}

func (e *quoteEngine) ListCategories() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return models.Categories(e.quotes)
}

func (e *quoteEngine) Filter(ctx context.Context, category string) ([]models.Quote, error) {
	if category == "" {
		category = models.AllCategories
	}

	e.mu.Lock()
	matching := filterQuotes(e.quotes, category)
	e.filter = category
	e.mu.Unlock()

	if err := e.local.SaveFilter(ctx, category); err != nil {
		e.logger.Warn().Err(err).Str("func", "quoteEngine.Filter").Msg("could not persist filter")
	}

	if len(matching) == 0 {
		e.sink.ShowEmpty(category)
	} else {
		e.sink.ShowList(category, matching)
	}
	return matching, nil
}

func (e *quoteEngine) LastFilter(ctx context.Context) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.restoreFilter(ctx)
}

// restoreFilter reads the persisted filter; callers hold e.mu.
func (e *quoteEngine) restoreFilter(ctx context.Context) string {
	saved, err := e.local.LoadFilter(ctx)
	if err != nil || saved == models.AllCategories {
		return models.AllCategories
	}
	for _, c := range models.Categories(e.quotes) {
		if c == saved {
			return saved
		}
	}
	return models.AllCategories
}

func (e *quoteEngine) LastViewed(ctx context.Context) (models.Quote, bool) {
	quote, err := e.session.LoadLastViewed(ctx)
	if err != nil {
		return models.Quote{}, false
	}
	if err = e.validator.Validate(ctx, quote); err != nil {
		return models.Quote{}, false
	}
	return quote, true
}

func (e *quoteEngine) Quotes() []models.Quote {
	e.mu.Lock()
	defer e.mu.Unlock()
	return models.CloneQuotes(e.quotes)
}

func (e *quoteEngine) State() models.SyncState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Reconcile runs one pass:
//  1. capture the pending flag and the local length;
//  2. fetch the remote snapshot;
//  3. remote longer: replace the collection, persist, clear pending;
//     otherwise pending: push the collection, clear pending;
//     otherwise nothing to do.
//
// Fetch, push and persist failures leave the collection and the flag as they
// were and return [ErrSyncFailure].
func (e *quoteEngine) Reconcile(ctx context.Context) (models.SyncReport, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.scheduleIdle()

	report := models.SyncReport{StartedAt: time.Now()}
	pending := e.state.PendingLocalChange
	localLength := len(e.quotes)
	e.notify(models.Notification{Message: "Syncing with server...", Level: models.LevelInfo})

	snapshot, err := e.fetch(ctx)
	if err != nil {
		return e.failPass(ctx, report, "fetch", err)
	}

	remoteLength := len(snapshot.Quotes)
	switch {
	case remoteLength > localLength:
		remote := models.CloneQuotes(snapshot.Quotes)
		if err = e.local.SaveQuotes(ctx, remote); err != nil {
			return e.failPass(ctx, report, "persist", err)
		}
		e.quotes = remote
		e.setPending(ctx, false)

		report.Outcome = models.OutcomeApplied
		report.Added = remoteLength - localLength
		e.notify(models.Notification{
			Message: fmt.Sprintf("Synced with server: %d new quote(s)", report.Added),
			Level:   models.LevelSuccess,
		})
		e.sink.SetCategories(models.Categories(e.quotes), e.filter)

	case pending:
		if err = e.push(ctx, models.CloneQuotes(e.quotes)); err != nil {
			return e.failPass(ctx, report, "push", err)
		}
		e.setPending(ctx, false)

		report.Outcome = models.OutcomePushed
		report.Pushed = localLength
		e.notify(models.Notification{
			Message: fmt.Sprintf("Local changes pushed to server (%d quotes)", localLength),
			Level:   models.LevelSuccess,
		})

	default:
		report.Outcome = models.OutcomeAlreadyConsistent
		e.notify(models.Notification{Message: "Already in sync with server", Level: models.LevelInfo})
	}

	report.Duration = time.Since(report.StartedAt)
	e.logger.Info().
		Str("func", "quoteEngine.Reconcile").
		Stringer("outcome", report.Outcome).
		Int("local", localLength).
		Int("remote", remoteLength).
		Dur("duration", report.Duration).
		Msg("reconcile pass finished")

	return report, nil
}

func (e *quoteEngine) fetch(ctx context.Context) (models.Snapshot, error) {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()
	return e.remote.Fetch(ctx)
}

func (e *quoteEngine) push(ctx context.Context, quotes []models.Quote) error {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()
	return e.remote.Push(ctx, quotes)
}

func (e *quoteEngine) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.requestTimeout)
}

func (e *quoteEngine) failPass(_ context.Context, report models.SyncReport, step string, err error) (models.SyncReport, error) {
	report.Outcome = models.OutcomeFailed
	report.Duration = time.Since(report.StartedAt)

	e.logger.Err(err).
		Str("func", "quoteEngine.Reconcile").
		Str("step", step).
		Msg("reconcile pass failed")

	e.notify(models.Notification{Message: syncFailureMessage(err), Level: models.LevelError})
	return report, fmt.Errorf("%w: %s: %w", ErrSyncFailure, step, err)
}

// commit persists next and makes it the collection; callers hold e.mu.
// On a persistence error nothing changes.
func (e *quoteEngine) commit(ctx context.Context, next []models.Quote) error {
	if err := e.local.SaveQuotes(ctx, next); err != nil {
		e.logger.Err(err).Str("func", "quoteEngine.commit").Msg("failed to persist quotes")
		return fmt.Errorf("persist quotes: %w", err)
	}
	e.quotes = next
	e.setPending(ctx, true)
	return nil
}

// setPending updates the flag and mirrors it to the session store; callers
// hold e.mu.
func (e *quoteEngine) setPending(ctx context.Context, pending bool) {
	e.state.PendingLocalChange = pending
	if err := e.session.SavePending(ctx, pending); err != nil {
		e.logger.Warn().Err(err).Str("func", "quoteEngine.setPending").Msg("could not mirror pending flag")
	}
}

func (e *quoteEngine) requestReconcile() {
	e.triggerMu.RLock()
	t := e.trigger
	e.triggerMu.RUnlock()

	if t != nil {
		t.Trigger()
		return
	}
	go func() {
		_, _ = e.Reconcile(context.Background())
	}()
}

func (e *quoteEngine) notify(n models.Notification) {
	e.notifyMu.Lock()
	defer e.notifyMu.Unlock()

	e.notifyGen++
	if e.idleTimer != nil {
		e.idleTimer.Stop()
		e.idleTimer = nil
	}
	e.sink.Notify(n)
}

// scheduleIdle resets the sink to the idle message after notifyDelay unless
// another notification comes first.
func (e *quoteEngine) scheduleIdle() {
	e.notifyMu.Lock()
	defer e.notifyMu.Unlock()

	if e.idleTimer != nil {
		e.idleTimer.Stop()
	}
	gen := e.notifyGen
	e.idleTimer = time.AfterFunc(e.notifyDelay, func() {
		e.resetIdle(gen)
	})
}

func (e *quoteEngine) resetIdle(gen uint64) {
	e.notifyMu.Lock()
	defer e.notifyMu.Unlock()

	if gen != e.notifyGen {
		return
	}
	e.sink.Notify(models.IdleNotification())
}

func filterQuotes(quotes []models.Quote, filter string) []models.Quote {
	matching := make([]models.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.InCategory(filter) {
			matching = append(matching, q)
		}
	}
	return matching
}
