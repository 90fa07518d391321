// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/models"
)

type appInfoService struct {
	appVersion string
	build      models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService reports version as the server version. build carries the
// linker-injected metadata and is only logged.
func NewAppInfoService(version string, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().
		Str("func", "NewAppInfoService").
		Str("version", version).
		Str("build_commit", build.BuildCommit()).
		Str("build_date", build.BuildDate()).
		Msg("app info")

	return &appInfoService{
		appVersion: version,
		build:      build,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
