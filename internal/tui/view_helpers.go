// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

// cycle returns the index i moved by delta within n entries, wrapping around.
func cycle(i, delta, n int) int {
	if n == 0 {
		return 0
	}
	return ((i+delta)%n + n) % n
}

// fitText shortens v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// renderCategories draws the category bar with selected highlighted.
func renderCategories(options []string, selected string) string {
	parts := make([]string, 0, len(options))
	for _, option := range options {
		if option == selected {
			parts = append(parts, selectedStyle.Render(option))
			continue
		}
		parts = append(parts, option)
	}
	return strings.Join(parts, "  ")
}
