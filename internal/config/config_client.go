// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// Remote store kinds accepted by [Adapter.Kind].
const (
	RemoteSimulated = "simulated"
	RemoteHTTP      = "http"
	RemoteGRPC      = "grpc"
)

// Client defaults applied to zero values before validation.
const (
	DefaultLocalDSN         = "quotes.db"
	DefaultExportDir        = "."
	DefaultRequestTimeout   = 10 * time.Second
	DefaultSyncInterval     = 60 * time.Second
	DefaultNotifyResetDelay = 3 * time.Second
	DefaultSimulatedLatency = 300 * time.Millisecond
)

// ClientApp holds client-side identity and integrity settings.
type ClientApp struct {
	// HashKey is the HMAC key used for push payload integrity checks.
	HashKey string
	// Namespace is the client's namespace on the snapshot server.
	Namespace string
	// AccessKey authenticates Namespace.
	AccessKey string
	// Version is reported by the version subcommand.
	Version string
}

// ClientAdapter holds the remote store selection and its network settings.
type ClientAdapter struct {
	// Kind is one of [RemoteSimulated], [RemoteHTTP] or [RemoteGRPC].
	Kind string
	// HTTPAddress is the HTTP base URL of the snapshot server.
	HTTPAddress string
	// GRPCAddress is the gRPC address of the snapshot server.
	GRPCAddress string
	// RequestTimeout bounds each fetch and push.
	RequestTimeout time.Duration
	// SimulatedLatency delays every simulated remote call.
	SimulatedLatency time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// LocalDSN locates the durable key-value store.
	LocalDSN string
	// Artifacts is where exports are written.
	Artifacts Artifacts
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often timer-driven reconcile passes run.
	SyncInterval time.Duration
	// NotifyResetDelay is how long a sync notification stays visible.
	NotifyResetDelay time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Log     Log
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. Flags are registered on fs and parsed
// from args.
func GetClientConfig(fs *flag.FlagSet, args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs, args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the client-relevant fields of cfg and fills defaults.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey:   cfg.App.HashKey,
			Namespace: cfg.App.Namespace,
			AccessKey: cfg.App.AccessKey,
			Version:   cfg.App.Version,
		},
		Adapter: ClientAdapter{
			Kind:             cfg.Adapter.Kind,
			HTTPAddress:      cfg.Adapter.HTTPAddress,
			GRPCAddress:      cfg.Adapter.GRPCAddress,
			RequestTimeout:   cfg.Adapter.RequestTimeout,
			SimulatedLatency: cfg.Adapter.SimulatedLatency,
		},
		Storage: ClientStorage{
			LocalDSN:  cfg.Storage.Local.DSN,
			Artifacts: cfg.Storage.Artifacts,
		},
		Workers: ClientWorkers{
			SyncInterval:     cfg.Workers.SyncInterval,
			NotifyResetDelay: cfg.Workers.NotifyResetDelay,
		},
		Log: cfg.Log,
	}
	clientCfg.applyDefaults()

	return clientCfg
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.Kind == "" {
		cfg.Adapter.Kind = RemoteSimulated
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.SimulatedLatency < 0 {
		cfg.Adapter.SimulatedLatency = DefaultSimulatedLatency
	}
	if cfg.Storage.LocalDSN == "" {
		cfg.Storage.LocalDSN = DefaultLocalDSN
	}
	if cfg.Storage.Artifacts.Dir == "" {
		cfg.Storage.Artifacts.Dir = DefaultExportDir
	}
	if cfg.Workers.SyncInterval <= 0 {
		cfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if cfg.Workers.NotifyResetDelay <= 0 {
		cfg.Workers.NotifyResetDelay = DefaultNotifyResetDelay
	}
}
