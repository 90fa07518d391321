// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the snapshot server's prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// HTTP & RPC Metrics
// =============================================================================

var (
	// HTTPRequestsTotal counts handled HTTP requests
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quotekeeper_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDurationSeconds measures HTTP handler latency
	HTTPRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quotekeeper_http_request_duration_seconds",
			Help:    "Latency of HTTP requests",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "route"},
	)

	// RPCRequestsTotal counts handled gRPC calls
	RPCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quotekeeper_rpc_requests_total",
			Help: "Total number of gRPC calls",
		},
		[]string{"method", "code"},
	)
)

// =============================================================================
// Snapshot Metrics
// =============================================================================

var (
	// SnapshotPushesTotal counts stored pushes per namespace
	SnapshotPushesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quotekeeper_snapshot_pushes_total",
			Help: "Total number of stored snapshot pushes",
		},
		[]string{"namespace"},
	)

	// SnapshotLength is the quote count of the last push per namespace
	SnapshotLength = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "quotekeeper_snapshot_length",
			Help: "Number of quotes in the latest snapshot",
		},
		[]string{"namespace"},
	)

	// SnapshotCacheHitsTotal counts snapshot cache hits
	SnapshotCacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quotekeeper_snapshot_cache_hits_total",
			Help: "Total number of snapshot cache hits",
		},
	)

	// SnapshotCacheMissesTotal counts snapshot cache misses
	SnapshotCacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quotekeeper_snapshot_cache_misses_total",
			Help: "Total number of snapshot cache misses",
		},
	)
)
