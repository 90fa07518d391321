// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/utils"
	"github.com/MKhiriev/go-quote-keeper/models"
)

func (h *Handler) fetchSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	namespace, ok := utils.GetNamespaceFromContext(ctx)
	if !ok {
		log.Err(ErrNoNamespaceInContext).Send()
		utils.WriteError(w, ErrNoNamespaceInContext.Error(), http.StatusUnauthorized)
		return
	}

	snapshot, err := h.services.SnapshotService.Fetch(ctx, namespace)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("namespace", namespace).Msg("fetch failed")
		utils.WriteError(w, messageFromStatus(err, status), status)
		return
	}

	if _, err = utils.WriteJSON(w, snapshot, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write snapshot")
	}
}

func (h *Handler) pushSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	namespace, ok := utils.GetNamespaceFromContext(ctx)
	if !ok {
		log.Err(ErrNoNamespaceInContext).Send()
		utils.WriteError(w, ErrNoNamespaceInContext.Error(), http.StatusUnauthorized)
		return
	}

	var req models.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	snapshot, err := h.services.SnapshotService.Push(ctx, namespace, req)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("namespace", namespace).Int("length", req.Length).Msg("push failed")
		utils.WriteError(w, messageFromStatus(err, status), status)
		return
	}

	log.Debug().Str("namespace", namespace).Int("length", snapshot.Length).Msg("push stored")

	if _, err = utils.WriteJSON(w, snapshot, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write snapshot")
	}
}
