// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/rpc"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/internal/utils"
)

const traceIDMetadataKey = "x-trace-id"

// Interceptors returns the unary interceptor chain in execution order.
func (h *Handler) Interceptors() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		h.auth,
	}
}

func (h *Handler) withTraceID(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDMetadataKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = h.traceIDs.Generate()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	ctx = context.WithValue(ctx, utils.TraceIDCtxKey, traceID)
	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDMetadataKey, traceID))

	return handler(l.WithContext(ctx), req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	log := logger.FromContext(ctx)
	event := log.Info()
	if err != nil {
		event = log.Err(err)
	}
	event.
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

func (h *Handler) withMetrics(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)
	if h.observer != nil {
		h.observer.ObserveRPC(info.FullMethod, status.Code(err).String())
	}
	return resp, err
}

// auth validates the bearer token in the "authorization" metadata and stores
// its namespace in the context. Authenticate is the only unauthenticated
// method.
func (h *Handler) auth(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if info.FullMethod == rpc.AuthenticateMethod {
		return handler(ctx, req)
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, ErrMissingMetadata.Error())
	}

	values := md.Get("authorization")
	if len(values) == 0 || values[0] == "" {
		return nil, status.Error(codes.Unauthenticated, ErrMissingAuthorization.Error())
	}

	tokenString, err := utils.ParseBearerToken(values[0])
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		if errors.Is(err, service.ErrTokenIsExpired) {
			return nil, status.Error(codes.Unauthenticated, service.ErrTokenIsExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, service.ErrTokenIsInvalid.Error())
	}

	return handler(utils.WithNamespace(ctx, token.Namespace), req)
}
