// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// Server defaults applied to zero values before validation.
const (
	DefaultTokenIssuer   = "quote-keeper"
	DefaultTokenDuration = time.Hour
	DefaultServerTimeout = 30 * time.Second
	DefaultCacheSize     = 1024
	DefaultServerVersion = "dev"
)

// ServerApp holds token, integrity and tenant settings of the server.
type ServerApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	HashKey       string
	Version       string
	// AccessKeys maps namespace to its access key.
	AccessKeys map[string]string
}

// ServerStorage holds the snapshot repository settings.
type ServerStorage struct {
	// DSN is the PostgreSQL DSN; empty selects the in-memory repository.
	DSN string
	// CacheSize is the LRU snapshot cache size; negative disables it.
	CacheSize int
}

// ServerConfig is the snapshot server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Server  Server
	Storage ServerStorage
	Log     Log
}

// GetServerConfig builds and validates the server view of the merged
// configuration.
func GetServerConfig(fs *flag.FlagSet, args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(fs, args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps the server-relevant fields of cfg and fills defaults.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			HashKey:       cfg.App.HashKey,
			Version:       cfg.App.Version,
			AccessKeys:    cfg.App.AccessKeys,
		},
		Server: cfg.Server,
		Storage: ServerStorage{
			DSN:       cfg.Storage.DB.DSN,
			CacheSize: cfg.Storage.Cache.Size,
		},
		Log: cfg.Log,
	}

	if serverCfg.App.TokenIssuer == "" {
		serverCfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if serverCfg.App.TokenDuration <= 0 {
		serverCfg.App.TokenDuration = DefaultTokenDuration
	}
	if serverCfg.App.Version == "" {
		serverCfg.App.Version = DefaultServerVersion
	}
	if serverCfg.Server.RequestTimeout <= 0 {
		serverCfg.Server.RequestTimeout = DefaultServerTimeout
	}
	if serverCfg.Storage.CacheSize == 0 {
		serverCfg.Storage.CacheSize = DefaultCacheSize
	}

	return serverCfg
}
