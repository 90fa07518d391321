// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-quote-keeper/internal/adapter"
	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/store"
)

// ClientServices groups the client-side services.
type ClientServices struct {
	Quotes  QuoteService
	SyncJob ClientSyncJob
}

// NewClientServices wires the quote engine to its stores, remote and sink,
// and attaches a sync job as the engine's trigger.
func NewClientServices(storages *store.ClientStorages, remote adapter.RemoteStore, sink Sink, cfg *config.ClientConfig, log *logger.Logger) *ClientServices {
	quotes := NewQuoteService(QuoteServiceDeps{
		Local:     storages.Local,
		Session:   storages.Session,
		Artifacts: storages.Artifacts,
		Remote:    remote,
		Sink:      sink,
	}, QuoteServiceOptions{
		RequestTimeout:   cfg.Adapter.RequestTimeout,
		NotifyResetDelay: cfg.Workers.NotifyResetDelay,
	}, log)

	return &ClientServices{
		Quotes:  quotes,
		SyncJob: NewClientSyncJob(quotes),
	}
}
