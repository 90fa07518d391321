// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags registers all configuration flags on fs and parses args.
// Arguments left after the flags (fs.Args()) are untouched so that a
// subcommand dispatcher can consume them.
//
// Flags:
//
//	-a server HTTP address in format [host]:[port]
//	-grpc-address server gRPC address in format [host]:[port]
//	-d server database DSN
//	-local-dsn client durable store (sqlite path, bolt://path or memory)
//	-export-dir client export directory
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-hash-key push integrity hash key
//	-namespace client namespace
//	-access-key client access key
//	-remote remote kind: simulated, http or grpc
//	-remote-address snapshot server HTTP base URL
//	-remote-grpc-address snapshot server gRPC address
//	-remote-timeout fetch/push timeout
//	-sync-interval reconcile period
//	-cache-size server snapshot cache size
//	-log-level minimum log level
//	-log-file client log file
func ParseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN, localDSN, exportDir string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var hashKey, namespace, accessKey string
	var remoteKind, remoteAddress, remoteGRPCAddress string
	var remoteTimeout, syncInterval time.Duration
	var cacheSize int
	var logLevel, logFile string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&localDSN, "local-dsn", "", "Local store: sqlite path, bolt://path or memory")
	fs.StringVar(&exportDir, "export-dir", "", "Export directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&hashKey, "hash-key", "", "Security hash key")
	fs.StringVar(&namespace, "namespace", "", "Client namespace")
	fs.StringVar(&accessKey, "access-key", "", "Client access key")
	fs.StringVar(&remoteKind, "remote", "", "Remote store: simulated, http or grpc")
	fs.StringVar(&remoteAddress, "remote-address", "", "Snapshot server HTTP base URL")
	fs.StringVar(&remoteGRPCAddress, "remote-grpc-address", "", "Snapshot server gRPC address")
	fs.DurationVar(&remoteTimeout, "remote-timeout", 0, "Fetch/push timeout (e.g., 5s)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Reconcile period (e.g., 60s)")
	fs.IntVar(&cacheSize, "cache-size", 0, "Snapshot cache size")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")
	fs.StringVar(&logFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			HashKey:       hashKey,
			Namespace:     namespace,
			AccessKey:     accessKey,
		},
		Storage: Storage{
			DB:        DB{DSN: databaseDSN},
			Local:     Local{DSN: localDSN},
			Artifacts: Artifacts{Dir: exportDir},
			Cache:     Cache{Size: cacheSize},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			Kind:           remoteKind,
			HTTPAddress:    remoteAddress,
			GRPCAddress:    remoteGRPCAddress,
			RequestTimeout: remoteTimeout,
		},
		Workers: Workers{SyncInterval: syncInterval},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
