// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the snapshot server's REST transport.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as authentication, request tracing, access logging,
// response compression, push integrity checks and request metrics are
// handled in this package before requests are delegated to the service layer.
package http
