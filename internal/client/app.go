// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-quote-keeper/internal/adapter"
	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/internal/store"
	"github.com/MKhiriev/go-quote-keeper/internal/workers"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// Env is shared by every command: the parsed configuration, build metadata
// and the output stream of non-interactive commands.
type Env struct {
	Config *config.ClientConfig
	Build  models.AppBuildInfo
	Out    io.Writer
	Logger *logger.Logger

	// Now stamps export file names; nil means time.Now.
	Now func() time.Time
}

func (e *Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// App is one wired client instance.
type App struct {
	Services *service.ClientServices
	Workers  *workers.Workers

	sink     service.Sink
	storages *store.ClientStorages
	remote   io.Closer
	logger   *logger.Logger
}

// NewApp opens the stores, connects the remote adapter, builds the quote
// engine reporting to sink and loads the collection.
func NewApp(ctx context.Context, env *Env, sink service.Sink) (*App, error) {
	log := env.Logger

	storages, err := store.NewClientStorages(ctx, env.Config.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	remote, closer, err := adapter.NewRemoteStore(env.Config, storages, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create remote store: %w", err)
	}

	services := service.NewClientServices(storages, remote, sink, env.Config, log)
	if err = services.Quotes.Load(ctx); err != nil {
		closer.Close()
		storages.Close()
		return nil, fmt.Errorf("load quotes: %w", err)
	}

	return &App{
		Services: services,
		Workers:  workers.NewClientWorkers(services, env.Config.Workers, log),
		sink:     sink,
		storages: storages,
		remote:   closer,
		logger:   log,
	}, nil
}

// Close stops the sync job and releases the remote and the stores.
func (a *App) Close() error {
	a.Services.SyncJob.Stop()
	return errors.Join(a.remote.Close(), a.storages.Close())
}

// ShowStartup shows the last viewed quote of this session when there is one,
// otherwise the list for the remembered filter.
func (a *App) ShowStartup(ctx context.Context) error {
	quotes := a.Services.Quotes
	if q, ok := quotes.LastViewed(ctx); ok {
		a.logger.Debug().Str("func", "App.ShowStartup").Str("category", q.Category).Msg("restoring last viewed quote")
		a.sink.ShowQuote(q, true)
		return nil
	}

	_, err := quotes.Filter(ctx, quotes.LastFilter(ctx))
	return err
}
