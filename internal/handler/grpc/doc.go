// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc serves quotesync.RemoteStore: token issuing, snapshot fetch
// and snapshot push, behind trace, logging, metrics and bearer-auth
// interceptors.
package grpc
