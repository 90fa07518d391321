// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/internal/utils"
)

// RequestObserver records finished requests.
type RequestObserver interface {
	ObserveHTTP(method, route string, status int, duration time.Duration)
}

type Handler struct {
	services *service.Services

	// hasher verifies the HMAC carried by pushes; nil disables the check.
	hasher   *utils.Hasher
	observer RequestObserver
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. An empty hashKey disables push
// integrity checks; observer may be nil.
func NewHandler(services *service.Services, hashKey string, observer RequestObserver, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		services: services,
		observer: observer,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
	if hashKey != "" {
		h.hasher = utils.NewHasher(hashKey)
	}

	return h
}
