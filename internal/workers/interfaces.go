// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background workers as one unit.
package workers

import "context"

// Worker is a background task with an explicit lifecycle.
//
// Run must not block: it starts the work (usually a goroutine) bound to ctx.
// Stop blocks until the work has fully terminated.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
