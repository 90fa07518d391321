// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/models"
)

const (
	statusTTL    = 3 * time.Second
	maxListLines = 12
	listWidth    = 70
)

type viewMode int

const (
	modeBrowse viewMode = iota
	modeAdd
	modeImport
)

type model struct {
	ctx      context.Context
	engine   service.QuoteService
	copyText func(string) error
	now      func() time.Time

	categories []string
	selected   string

	quote    models.Quote
	hasQuote bool
	restored bool

	list     []models.Quote
	showList bool

	empty       bool
	emptyFilter string

	notification models.Notification
	status       string
	errMsg       string

	mode        viewMode
	form        addForm
	importInput textinput.Model
	help        help.Model
}

func newModel(ctx context.Context, engine service.QuoteService) model {
	importInput := textinput.New()
	importInput.Placeholder = "path/to/quotes.json"
	importInput.Width = 50

	return model{
		ctx:          ctx,
		engine:       engine,
		copyText:     clipboard.WriteAll,
		now:          time.Now,
		selected:     models.AllCategories,
		notification: models.IdleNotification(),
		importInput:  importInput,
		help:         help.New(),
	}
}

// options returns the category choices, "All" first.
func (m model) options() []string {
	return append([]string{models.AllCategories}, m.categories...)
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case showQuoteMsg:
		m.quote, m.hasQuote, m.restored = msg.quote, true, msg.restored
		m.showList, m.empty = false, false
		return m, nil
	case showListMsg:
		m.list, m.showList, m.empty = msg.quotes, true, false
		m.selected = msg.filter
		return m, nil
	case showEmptyMsg:
		m.empty, m.emptyFilter = true, msg.filter
		return m, nil
	case categoriesMsg:
		m.categories = msg.categories
		if msg.selected != "" {
			m.selected = msg.selected
		}
		if !m.hasOption(m.selected) {
			m.selected = models.AllCategories
		}
		return m, nil
	case notifyMsg:
		m.notification = msg.notification
		return m, nil
	case actionDoneMsg:
		if msg.err != nil {
			m.errMsg, m.status = msg.err.Error(), ""
			return m, nil
		}
		m.errMsg, m.status = "", msg.status
		if m.status == "" {
			return m, nil
		}
		return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeAdd:
		return m.updateAdd(keyMsg)
	case modeImport:
		return m.updateImport(keyMsg)
	}

	return m.updateBrowse(keyMsg)
}

func (m model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case modeAdd:
		m.form, cmd = m.form.update(msg)
	case modeImport:
		m.importInput, cmd = m.importInput.Update(msg)
	}
	return m, cmd
}

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.random):
		return m, m.cmdRandom()
	case key.Matches(msg, keys.prevCat), key.Matches(msg, keys.nextCat):
		delta := 1
		if key.Matches(msg, keys.prevCat) {
			delta = -1
		}
		options := m.options()
		m.selected = options[cycle(m.indexOf(m.selected), delta, len(options))]
		return m, m.cmdFilter(m.selected)
	case key.Matches(msg, keys.add):
		category := ""
		if m.selected != models.AllCategories {
			category = m.selected
		}
		m.mode, m.form, m.errMsg = modeAdd, newAddForm(category), ""
		return m, textinput.Blink
	case key.Matches(msg, keys.imprt):
		m.mode, m.errMsg = modeImport, ""
		m.importInput.SetValue("")
		m.importInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.export):
		return m, m.cmdExport()
	case key.Matches(msg, keys.sync):
		return m, m.cmdSync()
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy()
	case key.Matches(msg, keys.help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

func (m model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeBrowse
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form = m.form.next()
		return m, nil
	case key.Matches(msg, keys.enter):
		text, category := m.form.values()
		m.mode = modeBrowse
		return m, m.cmdAdd(text, category)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m model) updateImport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeBrowse
		m.importInput.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		path := strings.TrimSpace(m.importInput.Value())
		m.mode = modeBrowse
		m.importInput.Blur()
		return m, m.cmdImport(path)
	}

	var cmd tea.Cmd
	m.importInput, cmd = m.importInput.Update(msg)
	return m, cmd
}

func (m model) hasOption(category string) bool {
	return m.indexOf(category) >= 0
}

func (m model) indexOf(category string) int {
	for i, option := range m.options() {
		if option == category {
			return i
		}
	}
	return -1
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m model) cmdRandom() tea.Cmd {
	engine, ctx, filter := m.engine, m.ctx, m.selected
	return func() tea.Msg {
		_, err := engine.SelectRandom(ctx, filter)
		if errors.Is(err, service.ErrEmptySelection) {
			return actionDoneMsg{}
		}
		return actionDoneMsg{err: err}
	}
}

func (m model) cmdFilter(category string) tea.Cmd {
	engine, ctx := m.engine, m.ctx
	return func() tea.Msg {
		_, err := engine.Filter(ctx, category)
		return actionDoneMsg{err: err}
	}
}

func (m model) cmdAdd(text, category string) tea.Cmd {
	engine, ctx := m.engine, m.ctx
	return func() tea.Msg {
		quote, err := engine.AddQuote(ctx, text, category)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: fmt.Sprintf("Quote added to %s", quote.Category)}
	}
}

func (m model) cmdImport(path string) tea.Cmd {
	engine, ctx := m.engine, m.ctx
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return actionDoneMsg{err: fmt.Errorf("open import file: %w", err)}
		}
		defer f.Close()

		result, err := engine.ImportJSON(ctx, f)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: fmt.Sprintf("Imported %d new quote(s) of %d", result.Added, result.Total)}
	}
}

func (m model) cmdExport() tea.Cmd {
	engine, ctx, now := m.engine, m.ctx, m.now()
	return func() tea.Msg {
		location, err := engine.Export(ctx, now)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: "Exported to " + location}
	}
}

// cmdSync runs a pass; its outcome reaches the user through Notify.
func (m model) cmdSync() tea.Cmd {
	engine, ctx := m.engine, m.ctx
	return func() tea.Msg {
		_, _ = engine.Reconcile(ctx)
		return actionDoneMsg{}
	}
}

func (m model) cmdCopy() tea.Cmd {
	if !m.hasQuote || m.showList || m.empty {
		return nil
	}
	copyText, text := m.copyText, formatQuote(m.quote)
	return func() tea.Msg {
		if err := copyText(text); err != nil {
			return actionDoneMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return actionDoneMsg{status: "Copied to clipboard"}
	}
}

func formatQuote(q models.Quote) string {
	return fmt.Sprintf("%q (%s)", q.Text, q.Category)
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Quote Keeper"))
	b.WriteString("\n")
	b.WriteString(renderCategories(m.options(), m.selected))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	switch m.mode {
	case modeAdd:
		b.WriteString(m.form.View())
	case modeImport:
		b.WriteString(titleStyle.Render("Import quotes from JSON file"))
		b.WriteString("\n\n")
		b.WriteString(m.importInput.View())
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render("enter import  esc cancel"))
	default:
		b.WriteString(m.contentView())
	}

	b.WriteString("\n\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(notificationStyle(m.notification.Level).Render(m.notification.Message))
	b.WriteString("\n")

	switch {
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))

	return appStyle.Render(b.String())
}

func (m model) contentView() string {
	switch {
	case m.empty:
		return fmt.Sprintf("No quotes available for category %q.", m.emptyFilter)
	case m.showList:
		var b strings.Builder
		for i, q := range m.list {
			if i == maxListLines {
				fmt.Fprintf(&b, "... and %d more", len(m.list)-maxListLines)
				break
			}
			b.WriteString(fitText(formatQuote(q), listWidth))
			b.WriteString("\n")
		}
		return strings.TrimRight(b.String(), "\n")
	case m.hasQuote:
		out := quoteStyle.Render(m.quote.Text) + "\n" + categoryStyle.Render("Category: "+m.quote.Category)
		if m.restored {
			out += "\n" + statusStyle.Render("(last viewed quote from this session)")
		}
		return out
	}
	return "Press r to show a quote."
}
