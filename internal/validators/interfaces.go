// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for quotes and for the
// payloads that carry them (import files, push requests).
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ParseImport: all-or-nothing decoding of an import file into quotes.
//
// Validators are shared by the client SyncEngine and the server
// SnapshotService, so both sides reject the same malformed records.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
