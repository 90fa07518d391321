// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-quote-keeper/models"
)

var (
	appStyle       = lipgloss.NewStyle().Padding(1, 2)
	titleStyle     = lipgloss.NewStyle().Bold(true)
	quoteStyle     = lipgloss.NewStyle().Italic(true).Border(lipgloss.RoundedBorder()).Padding(1, 2)
	categoryStyle  = lipgloss.NewStyle().Faint(true)
	selectedStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	statusStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(models.LevelError.Color()))
	formLabelStyle = lipgloss.NewStyle().Width(10)
)

// notificationStyle colors a notification by its level.
func notificationStyle(level models.NotificationLevel) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(level.Color()))
}
