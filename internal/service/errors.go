// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Client-side errors returned by the quote engine.
var (
	// ErrValidation is returned when a quote has an empty text or category.
	ErrValidation = errors.New("quote validation failed")

	// ErrFormat is returned when an import payload is not a JSON array of
	// {text, category} objects.
	ErrFormat = errors.New("invalid import format")

	// ErrEmptySelection is returned when no quote matches a filter.
	ErrEmptySelection = errors.New("no quotes available for this category")

	// ErrSyncFailure is returned when a reconcile pass could not reach the
	// remote or persist its result. Local state is left unchanged.
	ErrSyncFailure = errors.New("sync failed")

	// ErrSerialization is returned when the collection cannot be encoded.
	ErrSerialization = errors.New("could not serialize quotes")
)

// Server-side errors.
var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrIntegrityCheckFailed  = errors.New("integrity check failed")
	ErrWrongAccessKey        = errors.New("wrong namespace or access key")
	ErrTokenIsExpired        = errors.New("token is expired")
	ErrTokenIsInvalid        = errors.New("token is invalid")
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrSnapshotStorage       = errors.New("snapshot storage failure")
)
