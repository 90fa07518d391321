// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrIntegrityCheckFailed:  http.StatusBadRequest,
	service.ErrWrongAccessKey:        http.StatusUnauthorized,
	service.ErrTokenIsExpired:        http.StatusUnauthorized,
	service.ErrTokenIsInvalid:        http.StatusUnauthorized,
	service.ErrTokenCreationFailed:   http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,
	service.ErrSnapshotStorage:       http.StatusInternalServerError,

	ErrNoNamespaceInContext: http.StatusUnauthorized,

	store.ErrSnapshotNotSaved:      http.StatusInternalServerError,
	store.ErrBuildingQuery:         http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrBeginningTransaction:  http.StatusInternalServerError,
	store.ErrCommittingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromStatus hides internal error text from clients.
func messageFromStatus(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
