// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-quote-keeper/internal/adapter"
)

// syncFailureMessage translates a remote or persistence error into the text
// shown to the user after a failed pass.
func syncFailureMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return "Sync failed: server did not respond in time"
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrMissingCredentials):
		return "Sync failed: server rejected credentials"
	case errors.Is(err, adapter.ErrForbidden):
		return "Sync failed: access to namespace denied"
	case errors.Is(err, adapter.ErrUnavailable), errors.Is(err, adapter.ErrBadGateway):
		return "Sync failed: server unavailable"
	case errors.Is(err, adapter.ErrBadRequest):
		return "Sync failed: server refused the collection"
	case errors.Is(err, adapter.ErrConflict):
		return "Sync failed: server reported a conflict"
	case errors.Is(err, adapter.ErrInternalServerError):
		return "Sync failed: server error"
	}
	return "Sync failed: " + err.Error()
}
