// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/rpc"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/internal/utils"
)

// RequestObserver records finished unary calls.
type RequestObserver interface {
	ObserveRPC(method, code string)
}

// Handler is the root gRPC transport handler. It implements
// [rpc.RemoteStoreServer].
type Handler struct {
	services *service.Services

	// hasher verifies the HMAC carried by pushes; nil disables the check.
	hasher   *utils.Hasher
	observer RequestObserver
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

var _ rpc.RemoteStoreServer = (*Handler)(nil)

// NewHandler constructs a [Handler]. An empty hashKey disables push
// integrity checks; observer may be nil.
func NewHandler(services *service.Services, hashKey string, observer RequestObserver, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

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
