// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ImportResult is reported by a successful import.
type ImportResult struct {
	// Total is the number of candidate records in the payload.
	Total int `json:"total"`

	// Added is the number of candidates that were not already present
	// (by [Quote.Key]) and were appended. Always <= Total.
	Added int `json:"added"`
}
