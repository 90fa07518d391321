// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuote_Trims(t *testing.T) {
	q := NewQuote("  Stay hungry.  ", "\tLife\n")
	assert.Equal(t, "Stay hungry.", q.Text)
	assert.Equal(t, "Life", q.Category)
}

func TestQuote_Key(t *testing.T) {
	q := Quote{Text: "A", Category: "X"}
	assert.Equal(t, "A|||X", q.Key())

	// same text in another category is a different identity
	assert.NotEqual(t, q.Key(), Quote{Text: "A", Category: "Y"}.Key())
}

func TestQuote_InCategory(t *testing.T) {
	q := Quote{Text: "A", Category: "Motivation"}

	tests := []struct {
		filter string
		want   bool
	}{
		{AllCategories, true},
		{"Motivation", true},
		{"motivation", true},
		{"MOTIVATION", true},
		{"Success", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			assert.Equal(t, tt.want, q.InCategory(tt.filter))
		})
	}
}

func TestCategories_FirstSeenOrderUnique(t *testing.T) {
	quotes := []Quote{
		{Text: "1", Category: "B"},
		{Text: "2", Category: "A"},
		{Text: "3", Category: "B"},
		{Text: "4", Category: "C"},
		{Text: "5", Category: "A"},
	}
	assert.Equal(t, []string{"B", "A", "C"}, Categories(quotes))
	assert.Empty(t, Categories(nil))
}

func TestCloneQuotes(t *testing.T) {
	src := SeedQuotes()
	dst := CloneQuotes(src)
	require.Equal(t, src, dst)

	dst[0].Text = "changed"
	assert.NotEqual(t, src[0].Text, dst[0].Text)

	data, err := json.Marshal(CloneQuotes(nil))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestSeedQuotes_Valid(t *testing.T) {
	seed := SeedQuotes()
	require.Len(t, seed, 3)
	for _, q := range seed {
		assert.Equal(t, NewQuote(q.Text, q.Category), q)
		assert.NotEmpty(t, q.Text)
		assert.NotEmpty(t, q.Category)
	}
}

func TestSyncOutcome_String(t *testing.T) {
	assert.Equal(t, "already_consistent", OutcomeAlreadyConsistent.String())
	assert.Equal(t, "applied", OutcomeApplied.String())
	assert.Equal(t, "pushed", OutcomePushed.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
	assert.Equal(t, "unknown", SyncOutcome(42).String())
}

func TestNotificationLevel_Color(t *testing.T) {
	assert.Equal(t, "#757575", IdleNotification().Level.Color())
	assert.Equal(t, IdleSyncMessage, IdleNotification().Message)
	assert.NotEqual(t, LevelError.Color(), LevelSuccess.Color())
}

func TestNewAppBuildInfo_DefaultsToNA(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")
	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build date: 2026-01-01")
}
