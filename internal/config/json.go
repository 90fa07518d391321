// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON configuration file.
type StructuredJSONConfig struct {
	Auth struct {
		TokenSignKey  string            `json:"token_sign_key"`
		TokenIssuer   string            `json:"token_issuer"`
		TokenDuration Duration          `json:"token_duration"`
		AccessKeys    map[string]string `json:"access_keys"`
		Namespace     string            `json:"namespace"`
		AccessKey     string            `json:"access_key"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Local struct {
			DSN string `json:"dsn"`
		} `json:"local,omitempty"`

		Artifacts struct {
			Dir string `json:"dir"`
			S3  struct {
				Endpoint        string `json:"endpoint"`
				AccessKeyID     string `json:"access_key_id"`
				SecretAccessKey string `json:"secret_access_key"`
				Bucket          string `json:"bucket"`
				UseSSL          bool   `json:"use_ssl"`
			} `json:"s3,omitempty"`
		} `json:"artifacts,omitempty"`

		Cache struct {
			Size int `json:"size"`
		} `json:"cache,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Security struct {
		HashKey string `json:"hash_key"`
	} `json:"security,omitempty"`

	Adapter struct {
		Kind             string   `json:"kind"`
		HTTPAddress      string   `json:"http_address"`
		GRPCAddress      string   `json:"grpc_address"`
		RequestTimeout   Duration `json:"request_timeout"`
		SimulatedLatency Duration `json:"simulated_latency"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval     Duration `json:"sync_interval"`
		NotifyResetDelay Duration `json:"notify_reset_delay"`
	} `json:"workers,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	s3 := jsonCfg.Storage.Artifacts.S3
	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
			HashKey:       jsonCfg.Security.HashKey,
			AccessKeys:    jsonCfg.Auth.AccessKeys,
			Namespace:     jsonCfg.Auth.Namespace,
			AccessKey:     jsonCfg.Auth.AccessKey,
		},
		Storage: Storage{
			DB:    DB{DSN: jsonCfg.Storage.DB.DSN},
			Local: Local{DSN: jsonCfg.Storage.Local.DSN},
			Artifacts: Artifacts{
				Dir: jsonCfg.Storage.Artifacts.Dir,
				S3: S3{
					Endpoint:        s3.Endpoint,
					AccessKeyID:     s3.AccessKeyID,
					SecretAccessKey: s3.SecretAccessKey,
					Bucket:          s3.Bucket,
					UseSSL:          s3.UseSSL,
				},
			},
			Cache: Cache{Size: jsonCfg.Storage.Cache.Size},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			Kind:             jsonCfg.Adapter.Kind,
			HTTPAddress:      jsonCfg.Adapter.HTTPAddress,
			GRPCAddress:      jsonCfg.Adapter.GRPCAddress,
			RequestTimeout:   time.Duration(jsonCfg.Adapter.RequestTimeout),
			SimulatedLatency: time.Duration(jsonCfg.Adapter.SimulatedLatency),
		},
		Workers: Workers{
			SyncInterval:     time.Duration(jsonCfg.Workers.SyncInterval),
			NotifyResetDelay: time.Duration(jsonCfg.Workers.NotifyResetDelay),
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
