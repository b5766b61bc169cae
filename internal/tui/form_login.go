// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/macro-marketplace/models"
)

const (
	loginName = iota
	loginPassword
)

type loginForm struct {
	inputs   []textinput.Model
	focus    int
	register bool
}

func newLoginForm() loginForm {
	name := textinput.New()
	name.Placeholder = "name"
	name.CharLimit = 64
	name.Width = 32

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128
	password.Width = 32

	return loginForm{inputs: []textinput.Model{name, password}}
}

func (f *loginForm) focusCurrent() tea.Cmd {
	return focusInput(f.inputs, f.focus)
}

func (f loginForm) credentials() models.Credentials {
	return models.Credentials{
		Name:     strings.TrimSpace(f.inputs[loginName].Value()),
		Password: f.inputs[loginPassword].Value(),
	}
}

func (m model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.login = newLoginForm()
		m.screen = screenList
		return m, nil
	case key.Matches(msg, keys.register):
		m.login.register = !m.login.register
		return m, nil
	case key.Matches(msg, keys.tab):
		m.login.focus = (m.login.focus + 1) % len(m.login.inputs)
		return m, m.login.focusCurrent()
	case key.Matches(msg, keys.backtab):
		m.login.focus = (m.login.focus + len(m.login.inputs) - 1) % len(m.login.inputs)
		return m, m.login.focusCurrent()
	case key.Matches(msg, keys.enter):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdLogin(m.login.credentials(), m.login.register)
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m model) viewLogin() string {
	title := "Log in"
	if m.login.register {
		title = "Create account"
	}

	var b strings.Builder
	b.WriteString(title + "\n\n")
	b.WriteString("Name:     [" + m.login.inputs[loginName].View() + "]\n")
	b.WriteString("Password: [" + m.login.inputs[loginPassword].View() + "]\n")

	return renderPage(m.header(), b.String()+m.footer(), "enter: submit  tab: next field  ctrl+r: log in/register  esc: back")
}
