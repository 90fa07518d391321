// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	random  key.Binding
	prevCat key.Binding
	nextCat key.Binding
	add     key.Binding
	imprt   key.Binding
	export  key.Binding
	sync    key.Binding
	copy    key.Binding
	help    key.Binding
	quit    key.Binding

	enter key.Binding
	esc   key.Binding
	tab   key.Binding
}

var keys = keyMap{
	random:  key.NewBinding(key.WithKeys("r", " "), key.WithHelp("r/space", "new quote")),
	prevCat: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev category")),
	nextCat: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next category")),
	add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add quote")),
	imprt:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import")),
	export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
	sync:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sync now")),
	copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
	help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

	enter: key.NewBinding(key.WithKeys("enter")),
	esc:   key.NewBinding(key.WithKeys("esc")),
	tab:   key.NewBinding(key.WithKeys("tab", "shift+tab")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.random, k.prevCat, k.nextCat, k.add, k.sync, k.help, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.random, k.prevCat, k.nextCat, k.copy},
		{k.add, k.imprt, k.export, k.sync},
		{k.help, k.quit},
	}
}
