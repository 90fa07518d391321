// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
)

type TUI struct {
	engine service.QuoteService
	sink   *Sink
	logger *logger.Logger
}

// New returns a TUI over engine. sink must be the sink engine reports to.
func New(engine service.QuoteService, sink *Sink, logger *logger.Logger) *TUI {
	return &TUI{engine: engine, sink: sink, logger: logger}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	p := tea.NewProgram(newModel(ctx, t.engine), tea.WithAltScreen(), tea.WithContext(ctx))

	t.sink.attach(p)
	defer t.sink.detach()

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		t.logger.Err(err).Str("func", "TUI.Run").Msg("program stopped")
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
