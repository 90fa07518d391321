// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Route patterns served by [Handler.Init].
const (
	AuthTokenRoute = "/api/auth/token"
	QuotesRoute    = "/api/quotes"
	VersionRoute   = "/api/version/"
	MetricsRoute   = "/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	// promhttp compresses on its own
	router.Method("GET", MetricsRoute, promhttp.Handler())

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		// routes without authorization
		r.Get(VersionRoute, h.getServerVersion)
		r.Post(AuthTokenRoute, h.issueToken)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get(QuotesRoute, h.fetchSnapshot)
			r.With(h.pushHashing).Put(QuotesRoute, h.pushSnapshot)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
