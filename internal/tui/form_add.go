// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type addForm struct {
	inputs []textinput.Model
	focus  int
}

func newAddForm(category string) addForm {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[0].Placeholder = "Enter a new quote"
	inputs[1].Placeholder = "Enter quote category"
	inputs[1].SetValue(category)
	inputs[0].Focus()

	return addForm{inputs: inputs}
}

func (f addForm) values() (text, category string) {
	return f.inputs[0].Value(), f.inputs[1].Value()
}

func (f addForm) next() addForm {
	f.inputs[f.focus].Blur()
	f.focus = cycle(f.focus, 1, len(f.inputs))
	f.inputs[f.focus].Focus()
	return f
}

func (f addForm) update(msg tea.Msg) (addForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f addForm) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Add quote"))
	b.WriteString("\n\n")
	b.WriteString(formLabelStyle.Render("Text:"))
	b.WriteString(f.inputs[0].View())
	b.WriteString("\n")
	b.WriteString(formLabelStyle.Render("Category:"))
	b.WriteString(f.inputs[1].View())
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render("tab next field  enter save  esc cancel"))
	return b.String()
}
