// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.LocalDSN == "" {
		return ErrInvalidStorageConfigs
	}

	s3 := cfg.Storage.Artifacts.S3
	if s3.Endpoint != "" && (s3.Bucket == "" || s3.AccessKeyID == "" || s3.SecretAccessKey == "") {
		return fmt.Errorf("%w: s3 endpoint requires bucket and credentials", ErrInvalidStorageConfigs)
	}

	switch cfg.Adapter.Kind {
	case RemoteSimulated:
	case RemoteHTTP:
		if cfg.Adapter.HTTPAddress == "" {
			return fmt.Errorf("%w: http remote requires an address", ErrInvalidAdapterConfigs)
		}
	case RemoteGRPC:
		if cfg.Adapter.GRPCAddress == "" {
			return fmt.Errorf("%w: grpc remote requires an address", ErrInvalidAdapterConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown remote kind %q", ErrInvalidAdapterConfigs, cfg.Adapter.Kind)
	}

	if cfg.Adapter.Kind != RemoteSimulated && (cfg.App.Namespace == "" || cfg.App.AccessKey == "") {
		return fmt.Errorf("%w: namespace and access key are required for a network remote", ErrInvalidAppConfigs)
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.NotifyResetDelay <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: at least one listen address is required", ErrInvalidServerConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if len(cfg.App.AccessKeys) == 0 {
		return fmt.Errorf("%w: at least one namespace access key is required", ErrInvalidAppConfigs)
	}

	return nil
}
