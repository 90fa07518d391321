// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/store"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// Services groups the server-side services.
type Services struct {
	AuthService     AuthService
	SnapshotService SnapshotService
	AppInfoService  AppInfoService
}

// NewServices builds the server services. Snapshot pushes are validated
// before they reach the repository.
func NewServices(storages *store.Storages, cfg *config.ServerConfig, build models.AppBuildInfo, observer PushObserver, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App.Version, build, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	snapshots := NewSnapshotValidationService().Wrap(
		NewSnapshotService(storages.SnapshotRepository, observer, logger),
	)

	return &Services{
		AuthService:     NewAuthService(cfg.App, logger),
		SnapshotService: snapshots,
		AppInfoService:  appInfo,
	}, nil
}
