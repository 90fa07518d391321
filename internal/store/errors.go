// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by stores and repositories to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrKeyNotFound is returned by key-value stores when a key holds no value.
	ErrKeyNotFound = errors.New("key not found")

	// ErrCorruptData is returned when a stored value exists but cannot be
	// decoded into the expected shape.
	ErrCorruptData = errors.New("stored data is corrupt")

	// ErrSnapshotNotFound is returned when a namespace has no snapshot yet.
	ErrSnapshotNotFound = errors.New("snapshot was not found")

	// ErrSnapshotNotSaved is returned when an upsert completes without
	// affecting any row.
	ErrSnapshotNotSaved = errors.New("snapshot was not saved")

	// ErrBuildingQuery is returned when the squirrel builder rejects a query.
	ErrBuildingQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a result row cannot be scanned.
	ErrScanningRow = errors.New("error scanning row")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("error beginning transaction")

	// ErrCommittingTransaction is returned when a transaction commit fails.
	ErrCommittingTransaction = errors.New("error committing transaction")

	// ErrUnsupportedDSN is returned when a DSN scheme is not recognised.
	ErrUnsupportedDSN = errors.New("unsupported storage DSN")
)
