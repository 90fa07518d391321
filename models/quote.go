// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AllCategories is the sentinel filter value that selects every quote
// regardless of its category. It is never stored as a category itself.
const AllCategories = "All"

// keySeparator joins text and category into a quote identity key.
const keySeparator = "|||"

// Quote is a single quotation record.
//
// Both fields are non-empty after trimming. Quotes are immutable once stored;
// the collection they belong to is only ever appended to or replaced as a
// whole.
type Quote struct {
	// Text is the quotation itself.
	Text string `json:"text"`

	// Category is the free-form group the quote belongs to
	// (e.g. "Motivation"). Category matching for filters is case-insensitive.
	Category string `json:"category"`
}

// NewQuote returns a Quote with surrounding whitespace removed from both fields.
// It does not validate; see the validators package for that.
func NewQuote(text, category string) Quote {
	return Quote{
		Text:     strings.TrimSpace(text),
		Category: strings.TrimSpace(category),
	}
}

// Key returns the identity used for import deduplication:
// text and category joined by "|||".
func (q Quote) Key() string {
	return q.Text + keySeparator + q.Category
}

// InCategory reports whether q matches filter. The [AllCategories] sentinel
// matches every quote; any other value is compared case-insensitively.
func (q Quote) InCategory(filter string) bool {
	if filter == AllCategories {
		return true
	}
	return strings.EqualFold(q.Category, filter)
}

// SeedQuotes returns the default collection used when the durable store holds
// no quotes (or holds data that cannot be decoded).
func SeedQuotes() []Quote {
	return []Quote{
		{Text: "The only limit to our realization of tomorrow is our doubts of today.", Category: "Motivation"},
		{Text: "In the middle of difficulty lies opportunity.", Category: "Inspiration"},
		{Text: "Success is not final; failure is not fatal: It is the courage to continue that counts.", Category: "Success"},
	}
}

// CloneQuotes returns a copy of quotes that shares no backing array with the
// input. A nil input yields an empty, non-nil slice so that JSON encoding
// produces "[]" rather than "null".
func CloneQuotes(quotes []Quote) []Quote {
	out := make([]Quote, len(quotes))
	copy(out, quotes)
	return out
}

// Categories extracts the distinct categories of quotes in first-seen order.
func Categories(quotes []Quote) []string {
	seen := make(map[string]struct{}, len(quotes))
	categories := make([]string, 0, len(quotes))
	for _, q := range quotes {
		if _, ok := seen[q.Category]; ok {
			continue
		}
		seen[q.Category] = struct{}{}
		categories = append(categories, q.Category)
	}
	return categories
}
