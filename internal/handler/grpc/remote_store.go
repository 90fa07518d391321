// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"crypto/subtle"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/internal/utils"
	"github.com/MKhiriev/go-quote-keeper/models"
)

func (h *Handler) Authenticate(ctx context.Context, req *models.AuthRequest) (*models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	token, err := h.services.AuthService.IssueToken(ctx, *req)
	if err != nil {
		log.Err(err).Str("namespace", req.Namespace).Msg("token was not issued")
		return nil, toStatus(err)
	}

	resp := &models.AuthResponse{Token: token.SignedString}
	if token.ExpiresAt != nil {
		resp.ExpiresAt = token.ExpiresAt.Time
	}
	return resp, nil
}

func (h *Handler) Fetch(ctx context.Context, _ *models.FetchRequest) (*models.Snapshot, error) {
	namespace, ok := utils.GetNamespaceFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, ErrNoNamespaceInContext.Error())
	}

	snapshot, err := h.services.SnapshotService.Fetch(ctx, namespace)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("namespace", namespace).Msg("fetch failed")
		return nil, toStatus(err)
	}

	return &snapshot, nil
}

func (h *Handler) Push(ctx context.Context, req *models.PushRequest) (*models.Snapshot, error) {
	log := logger.FromContext(ctx)

	namespace, ok := utils.GetNamespaceFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, ErrNoNamespaceInContext.Error())
	}

	if h.hasher != nil {
		hashed, err := h.hasher.HashQuotes(req.Quotes)
		if err != nil {
			log.Err(err).Str("func", "*Handler.Push").Msg("failed to hash quotes")
			return nil, status.Error(codes.Internal, "failed to hash quotes")
		}
		if subtle.ConstantTimeCompare([]byte(hashed), []byte(req.Hash)) != 1 {
			log.Error().Str("func", "*Handler.Push").Msg("hashes are not equal")
			return nil, toStatus(service.ErrIntegrityCheckFailed)
		}
	}

	snapshot, err := h.services.SnapshotService.Push(ctx, namespace, *req)
	if err != nil {
		log.Err(err).Str("namespace", namespace).Int("length", req.Length).Msg("push failed")
		return nil, toStatus(err)
	}

	return &snapshot, nil
}
