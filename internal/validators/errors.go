// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyText      = errors.New("quote text is required")
	ErrEmptyCategory  = errors.New("quote category is required")
	ErrNotAnArray     = errors.New("import payload must be a JSON array")
	ErrInvalidEntry   = errors.New("import entry must be an object with string text and category")
	ErrLengthMismatch = errors.New("declared length does not match quotes")
	ErrEmptyNamespace = errors.New("namespace is required")
	ErrEmptyAccessKey = errors.New("access key is required")
)
