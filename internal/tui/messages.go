// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-quote-keeper/models"
)

// Messages produced by [Sink].
type (
	showQuoteMsg struct {
		quote    models.Quote
		restored bool
	}

	showListMsg struct {
		filter string
		quotes []models.Quote
	}

	showEmptyMsg struct {
		filter string
	}

	categoriesMsg struct {
		categories []string
		selected   string
	}

	notifyMsg struct {
		notification models.Notification
	}
)

// actionDoneMsg reports the end of a user-initiated engine call.
type actionDoneMsg struct {
	status string
	err    error
}

type clearStatusMsg struct{}
