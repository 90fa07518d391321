// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncState tracks whether local edits are waiting to be pushed to the
// remote store.
type SyncState struct {
	// PendingLocalChange is set by every local mutation and cleared either
	// by a successful push or by a pull that supersedes local data.
	PendingLocalChange bool `json:"pending_local_change"`
}

// SyncOutcome enumerates the results of a single reconcile pass.
type SyncOutcome int

const (
	// OutcomeAlreadyConsistent means neither side needed changes.
	OutcomeAlreadyConsistent SyncOutcome = iota

	// OutcomeApplied means the remote snapshot was longer than the local
	// collection and replaced it.
	OutcomeApplied

	// OutcomePushed means pending local edits were written to the remote.
	OutcomePushed

	// OutcomeFailed means fetch or push failed; local state is unchanged.
	OutcomeFailed
)

// String implements fmt.Stringer.
func (o SyncOutcome) String() string {
	switch o {
	case OutcomeAlreadyConsistent:
		return "already_consistent"
	case OutcomeApplied:
		return "applied"
	case OutcomePushed:
		return "pushed"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SyncReport describes a finished reconcile pass.
type SyncReport struct {
	// Outcome is the branch the pass took.
	Outcome SyncOutcome `json:"outcome"`

	// Added is the number of quotes gained from the remote
	// (remote length minus local length). Set only for OutcomeApplied.
	Added int `json:"added,omitempty"`

	// Pushed is the number of quotes written to the remote.
	// Set only for OutcomePushed.
	Pushed int `json:"pushed,omitempty"`

	// StartedAt is when the pass began.
	StartedAt time.Time `json:"started_at"`

	// Duration is how long the pass took, remote I/O included.
	Duration time.Duration `json:"duration"`
}
