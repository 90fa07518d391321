// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/internal/utils"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// pushHashing recomputes the HMAC of a push's quotes and rejects the request
// when it differs from the hash the client sent. It is a no-op when the
// server has no hash key.
func (h *Handler) pushHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hasher == nil {
			next.ServeHTTP(w, r)
			return
		}

		var req models.PushRequest

		h.logger.Debug().Str("func", "*Handler.pushHashing").Msg("checking hash begins")

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.pushHashing").Msg("failed to read request body")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if err = json.Unmarshal(body, &req); err != nil {
			h.logger.Err(err).Str("func", "*Handler.pushHashing").Msg("failed to decode JSON")
			utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}

		hashed, err := h.hasher.HashQuotes(req.Quotes)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.pushHashing").Msg("failed to hash quotes")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if subtle.ConstantTimeCompare([]byte(hashed), []byte(req.Hash)) != 1 {
			h.logger.Error().Str("func", "*Handler.pushHashing").
				Str("hash from request", req.Hash).
				Str("hashed body", hashed).
				Msg("hashes are not equal")
			utils.WriteError(w, service.ErrIntegrityCheckFailed.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
