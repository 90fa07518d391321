// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"io"

	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/store"
)

// NewRemoteStore builds the [RemoteStore] selected by cfg.Adapter.Kind. The
// returned closer releases transport resources and is never nil.
func NewRemoteStore(cfg *config.ClientConfig, storages *store.ClientStorages, log *logger.Logger) (RemoteStore, io.Closer, error) {
	log.Debug().Str("func", "adapter.NewRemoteStore").Str("kind", cfg.Adapter.Kind).Msg("creating remote store")

	switch cfg.Adapter.Kind {
	case config.RemoteSimulated:
		return NewSimulatedRemoteStore(storages.Session, storages.Local, cfg.Adapter.SimulatedLatency, log), nopCloser{}, nil
	case config.RemoteHTTP:
		remote, err := NewHTTPRemoteStore(cfg.Adapter, cfg.App, log)
		if err != nil {
			return nil, nil, err
		}
		return remote, nopCloser{}, nil
	case config.RemoteGRPC:
		remote, err := NewGRPCRemoteStore(cfg.Adapter, cfg.App, log)
		if err != nil {
			return nil, nil, err
		}
		return remote, remote, nil
	default:
		return nil, nil, fmt.Errorf("unknown remote kind %q", cfg.Adapter.Kind)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
