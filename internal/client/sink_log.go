// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// logSink renders engine output as plain text for one-shot commands.
type logSink struct {
	mu     sync.Mutex
	out    io.Writer
	logger *logger.Logger
}

var _ service.Sink = (*logSink)(nil)

func newLogSink(out io.Writer, log *logger.Logger) *logSink {
	return &logSink{out: out, logger: log}
}

func (s *logSink) ShowQuote(quote models.Quote, restored bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintf(s.out, "%q\n  - %s\n", quote.Text, quote.Category)
	if restored {
		fmt.Fprintln(s.out, "  (last viewed)")
	}
}

func (s *logSink) ShowList(filter string, quotes []models.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintf(s.out, "%s (%d):\n", filter, len(quotes))
	for _, q := range quotes {
		fmt.Fprintf(s.out, "  %q - %s\n", q.Text, q.Category)
	}
}

func (s *logSink) ShowEmpty(filter string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintf(s.out, "No quotes available for category %q.\n", filter)
}

func (s *logSink) SetCategories(categories []string, selected string) {
	s.logger.Debug().Strs("categories", categories).Str("selected", selected).Msg("categories updated")
}

// Notify prints sync status; the idle reset is only logged.
func (s *logSink) Notify(notification models.Notification) {
	if notification.Level == models.LevelIdle {
		s.logger.Debug().Msg(notification.Message)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintln(s.out, notification.Message)
}
