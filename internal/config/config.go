// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// quote client and the snapshot server. It is populated by merging values
// from environment variables, command-line flags and an optional JSON file;
// [GetClientConfig] and [GetServerConfig] project it into the views each
// binary actually needs.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identity, token and integrity settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for every persistence backend: the
	// server database, the client key-value file and export artifacts.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts for the snapshot server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter selects and configures the client's remote store.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds settings for the client's background sync job.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds identity, token and integrity settings.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the HMAC key used for push payload integrity checking
	// (the HashSHA256 header). Shared by client and server.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// AccessKeys maps namespaces to the access keys the server accepts
	// for them, e.g. "alice:s3cret,bob:hunter2".
	// Env: APP_ACCESS_KEYS
	AccessKeys map[string]string `env:"ACCESS_KEYS"`

	// Namespace is the client's namespace on the server.
	// Env: APP_NAMESPACE
	Namespace string `env:"NAMESPACE"`

	// AccessKey is the client's secret for Namespace.
	// Env: APP_ACCESS_KEY
	AccessKey string `env:"ACCESS_KEY"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the server's PostgreSQL connection settings.
	DB DB `envPrefix:"DB_"`

	// Local holds the client's durable key-value store settings.
	Local Local `envPrefix:"LOCAL_"`

	// Artifacts holds the export destination settings.
	Artifacts Artifacts `envPrefix:"ARTIFACTS_"`

	// Cache holds the server snapshot cache settings.
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string. When empty the server keeps
	// snapshots in memory.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Local holds the client's durable store location.
type Local struct {
	// DSN is either a SQLite file path, "bolt://<path>" for a bbolt file,
	// or "memory" for a non-durable store.
	// Env: STORAGE_LOCAL_DSN
	DSN string `env:"DSN"`
}

// Artifacts holds the destination of exported snapshots.
type Artifacts struct {
	// Dir is the directory export files are written to.
	// Env: STORAGE_ARTIFACTS_DIR
	Dir string `env:"DIR"`

	// S3 configures an S3-compatible bucket. When Endpoint is set, exports
	// go to the bucket instead of Dir.
	S3 S3 `envPrefix:"S3_"`
}

// S3 holds S3-compatible object storage settings.
type S3 struct {
	Endpoint        string `env:"ENDPOINT"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	Bucket          string `env:"BUCKET"`
	UseSSL          bool   `env:"USE_SSL"`
}

// Cache holds settings for the server's snapshot LRU cache.
type Cache struct {
	// Size is the number of namespaces kept in memory. Negative disables
	// the cache; zero selects the default.
	// Env: STORAGE_CACHE_SIZE
	Size int `env:"SIZE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC server ("host:port").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter selects and configures the client's remote store.
type Adapter struct {
	// Kind is one of "simulated", "http" or "grpc".
	// Env: ADAPTER_KIND
	Kind string `env:"KIND"`

	// HTTPAddress is the base address of the snapshot server's HTTP API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the address of the snapshot server's gRPC API.
	// Env: ADAPTER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds every fetch and push.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SimulatedLatency is the artificial delay of the simulated remote.
	// Env: ADAPTER_SIMULATED_LATENCY
	SimulatedLatency time.Duration `env:"SIMULATED_LATENCY"`
}

// Workers holds configuration for the client's background sync job.
type Workers struct {
	// SyncInterval is the period of timer-driven reconcile passes.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// NotifyResetDelay is how long a sync notification stays visible before
	// the idle message replaces it.
	// Env: WORKERS_NOTIFY_RESET_DELAY
	NotifyResetDelay time.Duration `env:"NOTIFY_RESET_DELAY"`
}

// Log holds logger settings.
type Log struct {
	// Level is the minimum zerolog level ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the client log file path. Empty means next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. .env file in the working directory (preloaded into the environment)
//  2. Environment variables
//  3. Command-line flags registered on fs and parsed from args
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(fs, args).
		withJSON().
		build()
}
